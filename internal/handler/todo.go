package handler

import (
	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/service"
	"github.com/labstack/echo/v4"
)

// TodoHandler serves the todo list API. Every method expects the session
// middleware to have run.
type TodoHandler struct {
	Handler
	todos *service.TodoService
}

func NewTodoHandler(s *server.Server, todos *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler: NewHandler(s),
		todos:   todos,
	}
}

func (h *TodoHandler) ListTodoLists(c echo.Context, _ *model.EmptyRequest) ([]service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.ListTodoLists(c.Request().Context(), sess)
}

func (h *TodoHandler) GetTodoList(c echo.Context, req *model.TodoListRequest) (*service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.GetTodoList(c.Request().Context(), sess, req.ListID)
}

func (h *TodoHandler) CreateTodoList(c echo.Context, req *model.CreateTodoListRequest) (*service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.CreateTodoList(c.Request().Context(), sess, req.Title)
}

func (h *TodoHandler) RenameTodoList(c echo.Context, req *model.UpdateTodoListRequest) (*service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.RenameTodoList(c.Request().Context(), sess, req.ListID, req.Title)
}

func (h *TodoHandler) DeleteTodoList(c echo.Context, req *model.TodoListRequest) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.todos.DeleteTodoList(c.Request().Context(), sess, req.ListID)
}

func (h *TodoHandler) CreateTodo(c echo.Context, req *model.CreateTodoRequest) (*service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.CreateTodo(c.Request().Context(), sess, req.ListID, req.Title)
}

func (h *TodoHandler) CompleteAllTodos(c echo.Context, req *model.TodoListRequest) (*service.TodoListView, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.CompleteAllTodos(c.Request().Context(), sess, req.ListID)
}

func (h *TodoHandler) ToggleTodo(c echo.Context, req *model.TodoRequest) (*model.Todo, error) {
	sess, err := h.session(c)
	if err != nil {
		return nil, err
	}
	return h.todos.ToggleTodo(c.Request().Context(), sess, req.ListID, req.TodoID)
}

func (h *TodoHandler) DeleteTodo(c echo.Context, req *model.TodoRequest) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.todos.DeleteTodo(c.Request().Context(), sess, req.ListID, req.TodoID)
}

// ShareTodoList queues the email and answers 202 without waiting for it.
func (h *TodoHandler) ShareTodoList(c echo.Context, req *model.ShareTodoListRequest) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.todos.ShareTodoList(c.Request().Context(), sess, req.ListID, req.Email)
}
