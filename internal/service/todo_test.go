package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/todos/internal/config"
	"github.com/deppfellow/todos/internal/errs"
	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/deppfellow/todos/internal/repository"
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/session"
)

type fakeQueuer struct {
	to   string
	list email.TodoListData
}

func (f *fakeQueuer) EnqueueShareTodoList(_ context.Context, to string, list email.TodoListData) error {
	f.to = to
	f.list = list
	return nil
}

func newTestService(t *testing.T) (*TodoService, *session.Session) {
	t.Helper()
	s := &server.Server{Config: &config.Config{
		Persistence: config.PersistenceConfig{Backend: config.PersistenceBackendSession},
	}}
	return NewTodoService(s, repository.NewRepositories(s)), session.New(time.Now())
}

func requireCode(t *testing.T, err error, status int, code string) {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != status || httpErr.Code != code {
		t.Fatalf("got %d %s, want %d %s", httpErr.Status, httpErr.Code, status, code)
	}
}

func TestListTodoListsSeedsSession(t *testing.T) {
	svc, sess := newTestService(t)

	views, err := svc.ListTodoLists(context.Background(), sess)
	if err != nil {
		t.Fatalf("ListTodoLists: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("got %d lists, want 4 seeded", len(views))
	}
	last := views[len(views)-1]
	if last.Title != "Home Todos" || !last.Done || last.TodosDone != 4 || last.TodosTotal != 4 {
		t.Fatalf("last view = %+v", last)
	}
	if views[0].Title != "Additional Todos" || views[0].Done || views[0].HasUndone {
		t.Fatalf("empty list view = %+v", views[0])
	}
}

func TestCreateTodoListRejectsDuplicates(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	view, err := svc.CreateTodoList(ctx, sess, "Groceries")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Title != "Groceries" || len(view.Todos) != 0 || view.Done {
		t.Fatalf("view = %+v", view)
	}

	_, err = svc.CreateTodoList(ctx, sess, "Groceries")
	requireCode(t, err, http.StatusBadRequest, errs.CodeTodoListTitleTaken)
}

func TestRenameTodoList(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()
	work, _ := svc.CreateTodoList(ctx, sess, "Work")
	_, _ = svc.CreateTodoList(ctx, sess, "Play")

	if _, err := svc.RenameTodoList(ctx, sess, work.ID, "Work"); err != nil {
		t.Fatalf("renaming to the same title: %v", err)
	}
	_, err := svc.RenameTodoList(ctx, sess, work.ID, "Play")
	requireCode(t, err, http.StatusBadRequest, errs.CodeTodoListTitleTaken)

	renamed, err := svc.RenameTodoList(ctx, sess, work.ID, "Office")
	if err != nil || renamed.Title != "Office" {
		t.Fatalf("rename = %+v, %v", renamed, err)
	}

	_, err = svc.RenameTodoList(ctx, sess, 999, "Nope")
	requireCode(t, err, http.StatusNotFound, errs.CodeTodoListNotFound)
}

func TestTodoLifecycle(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()
	list, _ := svc.CreateTodoList(ctx, sess, "Chores")

	list, err := svc.CreateTodo(ctx, sess, list.ID, "Dishes")
	if err != nil || len(list.Todos) != 1 || !list.HasUndone {
		t.Fatalf("CreateTodo = %+v, %v", list, err)
	}
	todoID := list.Todos[0].ID

	todo, err := svc.ToggleTodo(ctx, sess, list.ID, todoID)
	if err != nil || !todo.Done {
		t.Fatalf("ToggleTodo = %+v, %v", todo, err)
	}
	list, _ = svc.GetTodoList(ctx, sess, list.ID)
	if !list.Done || list.TodosDone != 1 {
		t.Fatalf("list after toggle = %+v", list)
	}

	_, err = svc.ToggleTodo(ctx, sess, list.ID, 999)
	requireCode(t, err, http.StatusNotFound, errs.CodeTodoNotFound)
	_, err = svc.ToggleTodo(ctx, sess, 999, todoID)
	requireCode(t, err, http.StatusNotFound, errs.CodeTodoListNotFound)

	if err := svc.DeleteTodo(ctx, sess, list.ID, todoID); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	requireCode(t, svc.DeleteTodo(ctx, sess, list.ID, todoID), http.StatusNotFound, errs.CodeTodoNotFound)

	if err := svc.DeleteTodoList(ctx, sess, list.ID); err != nil {
		t.Fatalf("DeleteTodoList: %v", err)
	}
	_, err = svc.GetTodoList(ctx, sess, list.ID)
	requireCode(t, err, http.StatusNotFound, errs.CodeTodoListNotFound)
}

func TestCompleteAllTodos(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	// seeded "Work Todos" has one pending todo
	list, err := svc.CompleteAllTodos(ctx, sess, 1)
	if err != nil || !list.Done || list.HasUndone {
		t.Fatalf("CompleteAllTodos = %+v, %v", list, err)
	}
	_, err = svc.CompleteAllTodos(ctx, sess, 999)
	requireCode(t, err, http.StatusNotFound, errs.CodeTodoListNotFound)
}

func TestShareTodoList(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	err := svc.ShareTodoList(ctx, sess, 1, "a@example.com")
	requireCode(t, err, http.StatusServiceUnavailable, errs.CodeJobsDisabled)

	queuer := &fakeQueuer{}
	svc.share = queuer
	if err := svc.ShareTodoList(ctx, sess, 1, "a@example.com"); err != nil {
		t.Fatalf("ShareTodoList: %v", err)
	}
	if queuer.to != "a@example.com" || queuer.list.Title != "Work Todos" || queuer.list.TodosTotal != 3 {
		t.Fatalf("queued %q %+v", queuer.to, queuer.list)
	}
	if queuer.list.Todos[0].Title != "Duck out of meeting" || queuer.list.Todos[0].Done {
		t.Fatalf("snapshot not in display order: %+v", queuer.list.Todos)
	}

	requireCode(t, svc.ShareTodoList(ctx, sess, 999, "a@example.com"), http.StatusNotFound, errs.CodeTodoListNotFound)
}
