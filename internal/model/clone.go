package model

// CloneTodo returns an independent copy of todo. A nil todo yields nil.
func CloneTodo(todo *Todo) *Todo {
	if todo == nil {
		return nil
	}
	cp := *todo
	return &cp
}

// CloneTodos copies a todo slice. nil stays nil and an empty slice stays
// empty, so callers can still tell "absent" from "no todos".
func CloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	out := make([]Todo, len(todos))
	copy(out, todos)
	return out
}

// CloneTodoList returns a deep copy of list including its todos.
func CloneTodoList(list *TodoList) *TodoList {
	if list == nil {
		return nil
	}
	cp := cloneTodoListValue(*list)
	return &cp
}

// CloneTodoLists deep-copies every list in lists.
func CloneTodoLists(lists []TodoList) []TodoList {
	if lists == nil {
		return nil
	}
	out := make([]TodoList, len(lists))
	for i, list := range lists {
		out[i] = cloneTodoListValue(list)
	}
	return out
}

func cloneTodoListValue(list TodoList) TodoList {
	list.Todos = CloneTodos(list.Todos)
	return list
}
