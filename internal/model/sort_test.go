package model

import (
	"strings"
	"testing"
)

func titles[T any](items []T, title func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = title(item)
	}
	return out
}

func listTitle(l TodoList) string { return l.Title }
func todoTitle(t Todo) string     { return t.Title }

func TestSortTodosGroupsPendingFirst(t *testing.T) {
	undone := []Todo{{ID: 1, Title: "walk dog"}, {ID: 2, Title: "Buy milk"}}
	done := []Todo{{ID: 3, Title: "zebra", Done: true}, {ID: 4, Title: "Apples", Done: true}}

	got := titles(SortTodos(undone, done), todoTitle)
	want := []string{"Buy milk", "walk dog", "Apples", "zebra"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected order: got %v want %v", got, want)
	}
}

func TestSortIsCaseInsensitiveAndStable(t *testing.T) {
	undone := []TodoList{
		{ID: 1, Title: "b"},
		{ID: 2, Title: "A"},
		{ID: 3, Title: "a"},
		{ID: 4, Title: "B"},
	}
	got := SortTodoLists(undone, nil)
	wantIDs := []int64{2, 3, 1, 4}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: got id %d want %d (%v)", i, got[i].ID, id, titles(got, listTitle))
		}
	}
}

func TestSortDoesNotReorderInputs(t *testing.T) {
	undone := []Todo{{ID: 1, Title: "z"}, {ID: 2, Title: "a"}}
	_ = SortTodos(undone, nil)
	if undone[0].ID != 1 || undone[1].ID != 2 {
		t.Fatalf("input slice was reordered: %+v", undone)
	}
}

func TestSortTodoListsSeedExample(t *testing.T) {
	lists := []TodoList{
		{ID: 1, Title: "B", Todos: []Todo{{ID: 2, Title: "x"}}},
		{ID: 3, Title: "A", Todos: []Todo{{ID: 4, Title: "y", Done: true}}},
	}
	undone, done := PartitionTodoLists(lists)
	got := titles(SortTodoLists(undone, done), listTitle)
	if strings.Join(got, ",") != "B,A" {
		t.Fatalf("expected [B A], got %v", got)
	}
}

func TestPartitionTreatsEmptyListAsUndone(t *testing.T) {
	undone, done := PartitionTodoLists([]TodoList{{ID: 1, Title: "empty", Todos: []Todo{}}})
	if len(undone) != 1 || len(done) != 0 {
		t.Fatalf("empty list should be undone: undone=%d done=%d", len(undone), len(done))
	}
}

func TestPartitionTodos(t *testing.T) {
	undone, done := PartitionTodos([]Todo{{ID: 1, Done: true}, {ID: 2}, {ID: 3, Done: true}})
	if len(undone) != 1 || undone[0].ID != 2 {
		t.Fatalf("unexpected undone group %+v", undone)
	}
	if len(done) != 2 || done[0].ID != 1 || done[1].ID != 3 {
		t.Fatalf("unexpected done group %+v", done)
	}
}
