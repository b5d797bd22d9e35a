package router

import (
	"net/http"

	"github.com/deppfellow/todos/internal/handler"
	"github.com/deppfellow/todos/internal/model"
	"github.com/labstack/echo/v4"
)

func registerTodoRoutes(g *echo.Group, h *handler.Handlers) {
	todos := h.Todos
	base := todos.Handler

	lists := g.Group("/lists")
	lists.GET("", handler.Handle(base, todos.ListTodoLists, http.StatusOK, &model.EmptyRequest{}))
	lists.POST("", handler.Handle(base, todos.CreateTodoList, http.StatusCreated, &model.CreateTodoListRequest{}))
	lists.GET("/:listId", handler.Handle(base, todos.GetTodoList, http.StatusOK, &model.TodoListRequest{}))
	lists.PATCH("/:listId", handler.Handle(base, todos.RenameTodoList, http.StatusOK, &model.UpdateTodoListRequest{}))
	lists.DELETE("/:listId", handler.HandleNoContent(base, todos.DeleteTodoList, http.StatusNoContent, &model.TodoListRequest{}))

	lists.POST("/:listId/todos", handler.Handle(base, todos.CreateTodo, http.StatusCreated, &model.CreateTodoRequest{}))
	lists.POST("/:listId/complete_all", handler.Handle(base, todos.CompleteAllTodos, http.StatusOK, &model.TodoListRequest{}))
	lists.POST("/:listId/todos/:todoId/toggle", handler.Handle(base, todos.ToggleTodo, http.StatusOK, &model.TodoRequest{}))
	lists.DELETE("/:listId/todos/:todoId", handler.HandleNoContent(base, todos.DeleteTodo, http.StatusNoContent, &model.TodoRequest{}))
	lists.POST("/:listId/share", handler.HandleNoContent(base, todos.ShareTodoList, http.StatusAccepted, &model.ShareTodoListRequest{}))

	g.DELETE("/session", handler.HandleNoContent(h.Session.Handler, h.Session.DestroySession, http.StatusNoContent, &model.EmptyRequest{}))
}
