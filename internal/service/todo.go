package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/todos/internal/errs"
	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/repository"
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/session"
	"github.com/deppfellow/todos/internal/sqlerr"
	"github.com/rs/zerolog"
)

// TodoListView is a list as the API returns it: todos in display order plus
// the derived flags and counts.
type TodoListView struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Todos      []model.Todo `json:"todos"`
	Done       bool         `json:"done"`
	HasUndone  bool         `json:"has_undone"`
	TodosDone  int          `json:"todos_done"`
	TodosTotal int          `json:"todos_total"`
}

// ShareQueuer enqueues list snapshots for emailing. *job.JobService
// implements it.
type ShareQueuer interface {
	EnqueueShareTodoList(ctx context.Context, to string, list email.TodoListData) error
}

type TodoService struct {
	server *server.Server
	repos  *repository.Repositories
	share  ShareQueuer
}

func NewTodoService(s *server.Server, repos *repository.Repositories) *TodoService {
	svc := &TodoService{
		server: s,
		repos:  repos,
	}
	if s.Job != nil {
		svc.share = s.Job
	}
	return svc
}

func (t *TodoService) view(store repository.TodoStore, list *model.TodoList) *TodoListView {
	return &TodoListView{
		ID:         list.ID,
		Title:      list.Title,
		Todos:      store.SortedTodos(list),
		Done:       store.IsDoneTodoList(list),
		HasUndone:  store.HasUndoneTodos(list),
		TodosDone:  list.CountDone(),
		TodosTotal: len(list.Todos),
	}
}

// storeError turns a durable backend failure into an HTTP error.
func storeError(err error) error {
	return sqlerr.HandleError(err)
}

func (t *TodoService) loadList(ctx context.Context, store repository.TodoStore, listID int64) (*model.TodoList, error) {
	list, err := store.LoadTodoList(ctx, listID)
	if err != nil {
		return nil, storeError(err)
	}
	if list == nil {
		return nil, errs.TodoListNotFound()
	}
	return list, nil
}

// ListTodoLists returns every list, pending lists first.
func (t *TodoService) ListTodoLists(ctx context.Context, sess *session.Session) ([]TodoListView, error) {
	store := t.repos.Todos(sess)
	lists, err := store.SortedTodoLists(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	views := make([]TodoListView, 0, len(lists))
	for i := range lists {
		views = append(views, *t.view(store, &lists[i]))
	}
	return views, nil
}

func (t *TodoService) GetTodoList(ctx context.Context, sess *session.Session, listID int64) (*TodoListView, error) {
	store := t.repos.Todos(sess)
	list, err := t.loadList(ctx, store, listID)
	if err != nil {
		return nil, err
	}
	return t.view(store, list), nil
}

// CreateTodoList adds a list. title must already be trimmed and validated.
func (t *TodoService) CreateTodoList(ctx context.Context, sess *session.Session, title string) (*TodoListView, error) {
	store := t.repos.Todos(sess)

	exists, err := store.ExistsTodoListTitle(ctx, title)
	if err != nil {
		return nil, storeError(err)
	}
	if exists {
		return nil, errs.TodoListTitleTaken()
	}

	if _, err := store.CreateTodoList(ctx, title); err != nil {
		if store.IsUniqueConstraintViolation(err) {
			return nil, errs.TodoListTitleTaken()
		}
		return nil, storeError(err)
	}

	list, err := store.LoadTodoListByTitle(ctx, title)
	if err != nil {
		return nil, storeError(err)
	}
	if list == nil {
		// deleted by another visitor of a shared backend in between
		return nil, errs.TodoListNotFound()
	}
	return t.view(store, list), nil
}

// RenameTodoList changes a list's title. Keeping the current title succeeds.
func (t *TodoService) RenameTodoList(ctx context.Context, sess *session.Session, listID int64, title string) (*TodoListView, error) {
	store := t.repos.Todos(sess)
	list, err := t.loadList(ctx, store, listID)
	if err != nil {
		return nil, err
	}
	if list.Title == title {
		return t.view(store, list), nil
	}

	exists, err := store.ExistsTodoListTitle(ctx, title)
	if err != nil {
		return nil, storeError(err)
	}
	if exists {
		return nil, errs.TodoListTitleTaken()
	}

	ok, err := store.SetTodoListTitle(ctx, listID, title)
	if err != nil {
		if store.IsUniqueConstraintViolation(err) {
			return nil, errs.TodoListTitleTaken()
		}
		return nil, storeError(err)
	}
	if !ok {
		return nil, errs.TodoListNotFound()
	}
	return t.GetTodoList(ctx, sess, listID)
}

func (t *TodoService) DeleteTodoList(ctx context.Context, sess *session.Session, listID int64) error {
	ok, err := t.repos.Todos(sess).DeleteTodoList(ctx, listID)
	if err != nil {
		return storeError(err)
	}
	if !ok {
		return errs.TodoListNotFound()
	}
	return nil
}

// CreateTodo appends a todo and returns the updated list.
func (t *TodoService) CreateTodo(ctx context.Context, sess *session.Session, listID int64, title string) (*TodoListView, error) {
	ok, err := t.repos.Todos(sess).CreateTodo(ctx, listID, title)
	if err != nil {
		return nil, storeError(err)
	}
	if !ok {
		return nil, errs.TodoListNotFound()
	}
	return t.GetTodoList(ctx, sess, listID)
}

func (t *TodoService) CompleteAllTodos(ctx context.Context, sess *session.Session, listID int64) (*TodoListView, error) {
	ok, err := t.repos.Todos(sess).CompleteAllTodos(ctx, listID)
	if err != nil {
		return nil, storeError(err)
	}
	if !ok {
		return nil, errs.TodoListNotFound()
	}
	return t.GetTodoList(ctx, sess, listID)
}

// ToggleTodo flips a todo's done flag and returns the todo.
func (t *TodoService) ToggleTodo(ctx context.Context, sess *session.Session, listID, todoID int64) (*model.Todo, error) {
	store := t.repos.Todos(sess)
	if _, err := t.loadList(ctx, store, listID); err != nil {
		return nil, err
	}

	ok, err := store.ToggleDoneTodo(ctx, listID, todoID)
	if err != nil {
		return nil, storeError(err)
	}
	if !ok {
		return nil, errs.TodoNotFound()
	}

	todo, err := store.LoadTodo(ctx, listID, todoID)
	if err != nil {
		return nil, storeError(err)
	}
	if todo == nil {
		return nil, errs.TodoNotFound()
	}
	return todo, nil
}

func (t *TodoService) DeleteTodo(ctx context.Context, sess *session.Session, listID, todoID int64) error {
	store := t.repos.Todos(sess)
	if _, err := t.loadList(ctx, store, listID); err != nil {
		return err
	}

	ok, err := store.DeleteTodo(ctx, listID, todoID)
	if err != nil {
		return storeError(err)
	}
	if !ok {
		return errs.TodoNotFound()
	}
	return nil
}

// ShareTodoList queues an email with the list's current state.
func (t *TodoService) ShareTodoList(ctx context.Context, sess *session.Session, listID int64, to string) error {
	if t.share == nil {
		code := errs.CodeJobsDisabled
		return errs.NewServiceUnavailableError("Sharing by email is not available right now.", &code)
	}

	view, err := t.GetTodoList(ctx, sess, listID)
	if err != nil {
		return err
	}

	data := email.TodoListData{
		Title:      view.Title,
		Todos:      make([]email.TodoItem, 0, len(view.Todos)),
		TodosDone:  view.TodosDone,
		TodosTotal: view.TodosTotal,
	}
	for _, todo := range view.Todos {
		data.Todos = append(data.Todos, email.TodoItem{Title: todo.Title, Done: todo.Done})
	}

	if err := t.share.EnqueueShareTodoList(ctx, to, data); err != nil {
		return fmt.Errorf("share todo list %d: %w", listID, err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("list_id", listID).
		Int("todos", data.TodosTotal).
		Msg("todo list share queued")
	return nil
}
