// Package model holds the todo domain types shared by every layer.
//
// It owns the value helpers that do not depend on where lists are stored:
//   - deep copies of lists and todos (clone.go)
//   - the pending-first, alphabetical display order (sort.go)
//   - the id sequence (sequence.go)
//   - the default dataset a new session starts with (seed.go)
package model

// Todo is a single checkable task inside a TodoList.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TodoList is a named, ordered collection of todos.
//
// Titles are unique among the lists of one store. Todos keep insertion order;
// display order is derived with SortTodos.
type TodoList struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Todos []Todo `json:"todos"`
}

// HasUndoneTodos reports whether at least one todo is still pending.
func (l *TodoList) HasUndoneTodos() bool {
	for _, todo := range l.Todos {
		if !todo.Done {
			return true
		}
	}
	return false
}

// IsDone reports whether the list has todos and all of them are done.
// An empty list is never done.
func (l *TodoList) IsDone() bool {
	return len(l.Todos) > 0 && !l.HasUndoneTodos()
}

// CountDone returns how many todos are done.
func (l *TodoList) CountDone() int {
	n := 0
	for _, todo := range l.Todos {
		if todo.Done {
			n++
		}
	}
	return n
}

// FindTodo returns a pointer into l.Todos, or nil.
func (l *TodoList) FindTodo(todoID int64) *Todo {
	for i := range l.Todos {
		if l.Todos[i].ID == todoID {
			return &l.Todos[i]
		}
	}
	return nil
}
