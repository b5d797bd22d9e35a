// Package repository holds the todo list stores.
//
// TodoStore is implemented three times: over the visitor's session (the
// default, lists live and die with the session), over PostgreSQL and over
// SQLite. The durable backends share one dataset between all visitors.
package repository

import (
	"context"

	"github.com/deppfellow/todos/internal/model"
)

// TodoStore is the data access surface the service layer works against.
//
// Not-found and no-op conditions are reported with false or a nil pointer.
// A non-nil error only ever comes from a durable backend; pass it to
// IsUniqueConstraintViolation to tell duplicate titles from real failures.
// Every returned list or todo is a copy the caller may mutate freely.
type TodoStore interface {
	// SortedTodoLists returns every list, pending lists first, each group
	// ordered by title ignoring case.
	SortedTodoLists(ctx context.Context) ([]model.TodoList, error)
	LoadTodoList(ctx context.Context, listID int64) (*model.TodoList, error)
	LoadTodoListByTitle(ctx context.Context, title string) (*model.TodoList, error)
	LoadTodo(ctx context.Context, listID, todoID int64) (*model.Todo, error)
	ExistsTodoListTitle(ctx context.Context, title string) (bool, error)

	CreateTodoList(ctx context.Context, title string) (bool, error)
	SetTodoListTitle(ctx context.Context, listID int64, title string) (bool, error)
	DeleteTodoList(ctx context.Context, listID int64) (bool, error)

	CreateTodo(ctx context.Context, listID int64, title string) (bool, error)
	CompleteAllTodos(ctx context.Context, listID int64) (bool, error)
	DeleteTodo(ctx context.Context, listID, todoID int64) (bool, error)
	ToggleDoneTodo(ctx context.Context, listID, todoID int64) (bool, error)

	SortedTodos(list *model.TodoList) []model.Todo
	HasUndoneTodos(list *model.TodoList) bool
	IsDoneTodoList(list *model.TodoList) bool
	IsUniqueConstraintViolation(err error) bool
}

// listViews implements the derived views every backend shares. They only
// look at the list they are given.
type listViews struct{}

func (listViews) SortedTodos(list *model.TodoList) []model.Todo {
	if list == nil {
		return nil
	}
	undone, done := model.PartitionTodos(list.Todos)
	return model.SortTodos(undone, done)
}

func (listViews) HasUndoneTodos(list *model.TodoList) bool {
	return list != nil && list.HasUndoneTodos()
}

func (listViews) IsDoneTodoList(list *model.TodoList) bool {
	return list != nil && list.IsDone()
}

// sortLists orders lists the way SortedTodoLists promises. lists is consumed.
func sortLists(lists []model.TodoList) []model.TodoList {
	undone, done := model.PartitionTodoLists(lists)
	return model.SortTodoLists(undone, done)
}
