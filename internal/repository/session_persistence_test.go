package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/session"
)

func TestNewSessionPersistenceSeeds(t *testing.T) {
	ctx := context.Background()
	sess := session.New(time.Now())
	store := NewSessionPersistence(sess)

	lists, err := store.SortedTodoLists(ctx)
	if err != nil {
		t.Fatalf("SortedTodoLists: %v", err)
	}
	want := []string{"Additional Todos", "social todos", "Work Todos", "Home Todos"}
	got := titles(lists)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if ok, _ := store.CreateTodoList(ctx, "Fresh"); !ok {
		t.Fatal("CreateTodoList failed")
	}
	fresh, _ := store.LoadTodoListByTitle(ctx, "Fresh")
	if fresh.ID != 13 {
		t.Fatalf("first id after seed = %d, want 13", fresh.ID)
	}
}

func TestNewSessionPersistenceDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	sess := session.New(time.Now())
	store := NewSessionPersistence(sess)

	lists, _ := store.SortedTodoLists(ctx)
	for _, list := range lists {
		_, _ = store.DeleteTodoList(ctx, list.ID)
	}

	again := NewSessionPersistence(sess)
	lists, _ = again.SortedTodoLists(ctx)
	if len(lists) != 0 {
		t.Fatalf("emptied session was reseeded: %v", titles(lists))
	}
}

func TestSessionPersistenceWritesThroughToSession(t *testing.T) {
	ctx := context.Background()
	sess := session.New(time.Now())
	sess.TodoLists = []model.TodoList{}
	store := NewSessionPersistence(sess)

	_, _ = store.CreateTodoList(ctx, "Visible")
	if len(sess.TodoLists) != 1 || sess.TodoLists[0].Title != "Visible" {
		t.Fatalf("session lists = %+v", sess.TodoLists)
	}
	if sess.Sequence.Last != 1 {
		t.Fatalf("sequence = %d, want 1", sess.Sequence.Last)
	}
}

func TestSessionPersistenceIgnoresErrors(t *testing.T) {
	store := NewSessionPersistence(session.New(time.Now()))
	if store.IsUniqueConstraintViolation(errors.New("duplicate key value")) {
		t.Fatal("session backend must never report unique violations")
	}
}

func TestListViewsHandleNil(t *testing.T) {
	var views listViews
	if views.SortedTodos(nil) != nil || views.HasUndoneTodos(nil) || views.IsDoneTodoList(nil) {
		t.Fatal("nil list should yield empty answers")
	}
}
