package model

import "testing"

func TestCloneNilInputs(t *testing.T) {
	if CloneTodo(nil) != nil {
		t.Fatal("CloneTodo(nil) should be nil")
	}
	if CloneTodoList(nil) != nil {
		t.Fatal("CloneTodoList(nil) should be nil")
	}
	if CloneTodoLists(nil) != nil {
		t.Fatal("CloneTodoLists(nil) should be nil")
	}
	if CloneTodos(nil) != nil {
		t.Fatal("CloneTodos(nil) should be nil")
	}
}

func TestCloneKeepsEmptySlicesNonNil(t *testing.T) {
	lists := CloneTodoLists([]TodoList{})
	if lists == nil || len(lists) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lists)
	}
	list := CloneTodoList(&TodoList{ID: 1, Todos: []Todo{}})
	if list.Todos == nil {
		t.Fatal("expected empty non-nil todos")
	}
}

func TestCloneTodoListIsIndependent(t *testing.T) {
	src := &TodoList{ID: 1, Title: "src", Todos: []Todo{{ID: 2, Title: "t"}}}
	cp := CloneTodoList(src)

	cp.Title = "copy"
	cp.Todos[0].Done = true
	cp.Todos = append(cp.Todos, Todo{ID: 3})

	if src.Title != "src" || src.Todos[0].Done || len(src.Todos) != 1 {
		t.Fatalf("source changed through copy: %+v", src)
	}

	src.Todos[0].Title = "renamed"
	if cp.Todos[0].Title != "t" {
		t.Fatalf("copy changed through source: %+v", cp)
	}
}

func TestCloneTodoListsIsIndependent(t *testing.T) {
	src := []TodoList{{ID: 1, Todos: []Todo{{ID: 2}}}}
	cp := CloneTodoLists(src)
	cp[0].Todos[0].Done = true
	if src[0].Todos[0].Done {
		t.Fatal("nested todo shared between copies")
	}
}
