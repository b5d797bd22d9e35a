package model

import (
	"slices"
	"strings"
)

// SortTodoLists orders lists for display: every list in undone comes before
// every list in done, and each group is sorted by title ignoring case.
// Lists with equal titles keep their relative order.
func SortTodoLists(undone, done []TodoList) []TodoList {
	return sortGroups(undone, done, func(l TodoList) string { return l.Title })
}

// SortTodos applies the same ordering to todos.
func SortTodos(undone, done []Todo) []Todo {
	return sortGroups(undone, done, func(t Todo) string { return t.Title })
}

// PartitionTodoLists splits lists into the not-done and done groups.
func PartitionTodoLists(lists []TodoList) (undone, done []TodoList) {
	for _, list := range lists {
		if list.IsDone() {
			done = append(done, list)
		} else {
			undone = append(undone, list)
		}
	}
	return undone, done
}

// PartitionTodos splits todos into pending and done.
func PartitionTodos(todos []Todo) (undone, done []Todo) {
	for _, todo := range todos {
		if todo.Done {
			done = append(done, todo)
		} else {
			undone = append(undone, todo)
		}
	}
	return undone, done
}

func sortGroups[T any](undone, done []T, title func(T) string) []T {
	byTitle := func(a, b T) int {
		return strings.Compare(strings.ToLower(title(a)), strings.ToLower(title(b)))
	}

	out := make([]T, 0, len(undone)+len(done))
	out = append(out, undone...)
	slices.SortStableFunc(out, byTitle)

	tail := len(out)
	out = append(out, done...)
	slices.SortStableFunc(out[tail:], byTitle)

	return out
}
