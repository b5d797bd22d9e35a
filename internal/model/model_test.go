package model

import "testing"

func TestTodoListDoneness(t *testing.T) {
	cases := []struct {
		name       string
		todos      []Todo
		wantDone   bool
		wantUndone bool
		wantCount  int
	}{
		{name: "empty", todos: []Todo{}, wantDone: false, wantUndone: false},
		{name: "nil todos", todos: nil, wantDone: false, wantUndone: false},
		{name: "all done", todos: []Todo{{Done: true}, {Done: true}}, wantDone: true, wantUndone: false, wantCount: 2},
		{name: "mixed", todos: []Todo{{Done: true}, {Done: false}}, wantDone: false, wantUndone: true, wantCount: 1},
		{name: "none done", todos: []Todo{{}}, wantDone: false, wantUndone: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list := TodoList{Todos: tc.todos}
			if got := list.IsDone(); got != tc.wantDone {
				t.Fatalf("IsDone = %v, want %v", got, tc.wantDone)
			}
			if got := list.HasUndoneTodos(); got != tc.wantUndone {
				t.Fatalf("HasUndoneTodos = %v, want %v", got, tc.wantUndone)
			}
			if got := list.CountDone(); got != tc.wantCount {
				t.Fatalf("CountDone = %d, want %d", got, tc.wantCount)
			}
		})
	}
}

func TestFindTodoReturnsPointerIntoList(t *testing.T) {
	list := TodoList{Todos: []Todo{{ID: 7, Title: "a"}}}
	todo := list.FindTodo(7)
	if todo == nil {
		t.Fatal("expected todo 7")
	}
	todo.Done = true
	if !list.Todos[0].Done {
		t.Fatal("FindTodo should alias the stored todo")
	}
	if list.FindTodo(8) != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestSequence(t *testing.T) {
	var seq Sequence
	if got := seq.Next(); got != 1 {
		t.Fatalf("first id = %d", got)
	}
	seq.Observe(10)
	if got := seq.Next(); got != 11 {
		t.Fatalf("after observe = %d", got)
	}
	seq.Observe(3)
	if got := seq.Next(); got != 12 {
		t.Fatalf("observe must not move backwards, got %d", got)
	}
}

func TestSeedDataIsFreshEachCall(t *testing.T) {
	first, last := SeedData()
	if len(first) != 4 {
		t.Fatalf("expected 4 seed lists, got %d", len(first))
	}
	if last != 12 {
		t.Fatalf("expected last seed id 12, got %d", last)
	}
	first[0].Title = "changed"
	first[0].Todos[0].Done = false

	second, _ := SeedData()
	if second[0].Title != "Work Todos" || !second[0].Todos[0].Done {
		t.Fatalf("seed data was mutated through a previous copy: %+v", second[0])
	}
	if second[2].Todos == nil {
		t.Fatal("empty seed list should keep a non-nil todo slice")
	}
}
