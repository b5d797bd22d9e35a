package repository

import (
	"context"
	"slices"

	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/session"
)

// SessionPersistence stores todo lists inside a visitor's session. It is
// built per request over that request's session and never returns errors.
type SessionPersistence struct {
	listViews
	sess *session.Session
}

// NewSessionPersistence wraps sess. A session that has never held lists is
// seeded with the default dataset and its id sequence moved past the seed.
func NewSessionPersistence(sess *session.Session) *SessionPersistence {
	if sess.TodoLists == nil {
		lists, lastID := model.SeedData()
		sess.TodoLists = lists
		sess.Sequence.Observe(lastID)
	}
	return &SessionPersistence{sess: sess}
}

func (p *SessionPersistence) findList(listID int64) *model.TodoList {
	for i := range p.sess.TodoLists {
		if p.sess.TodoLists[i].ID == listID {
			return &p.sess.TodoLists[i]
		}
	}
	return nil
}

func (p *SessionPersistence) SortedTodoLists(_ context.Context) ([]model.TodoList, error) {
	return sortLists(model.CloneTodoLists(p.sess.TodoLists)), nil
}

func (p *SessionPersistence) LoadTodoList(_ context.Context, listID int64) (*model.TodoList, error) {
	return model.CloneTodoList(p.findList(listID)), nil
}

func (p *SessionPersistence) LoadTodoListByTitle(_ context.Context, title string) (*model.TodoList, error) {
	for i := range p.sess.TodoLists {
		if p.sess.TodoLists[i].Title == title {
			return model.CloneTodoList(&p.sess.TodoLists[i]), nil
		}
	}
	return nil, nil
}

func (p *SessionPersistence) LoadTodo(_ context.Context, listID, todoID int64) (*model.Todo, error) {
	list := p.findList(listID)
	if list == nil {
		return nil, nil
	}
	return model.CloneTodo(list.FindTodo(todoID)), nil
}

func (p *SessionPersistence) ExistsTodoListTitle(_ context.Context, title string) (bool, error) {
	return slices.ContainsFunc(p.sess.TodoLists, func(l model.TodoList) bool {
		return l.Title == title
	}), nil
}

func (p *SessionPersistence) CreateTodoList(_ context.Context, title string) (bool, error) {
	p.sess.TodoLists = append(p.sess.TodoLists, model.TodoList{
		ID:    p.sess.Sequence.Next(),
		Title: title,
		Todos: []model.Todo{},
	})
	return true, nil
}

func (p *SessionPersistence) SetTodoListTitle(_ context.Context, listID int64, title string) (bool, error) {
	list := p.findList(listID)
	if list == nil {
		return false, nil
	}
	list.Title = title
	return true, nil
}

func (p *SessionPersistence) DeleteTodoList(_ context.Context, listID int64) (bool, error) {
	idx := slices.IndexFunc(p.sess.TodoLists, func(l model.TodoList) bool { return l.ID == listID })
	if idx < 0 {
		return false, nil
	}
	p.sess.TodoLists = slices.Delete(p.sess.TodoLists, idx, idx+1)
	return true, nil
}

func (p *SessionPersistence) CreateTodo(_ context.Context, listID int64, title string) (bool, error) {
	list := p.findList(listID)
	if list == nil {
		return false, nil
	}
	list.Todos = append(list.Todos, model.Todo{
		ID:    p.sess.Sequence.Next(),
		Title: title,
	})
	return true, nil
}

func (p *SessionPersistence) CompleteAllTodos(_ context.Context, listID int64) (bool, error) {
	list := p.findList(listID)
	if list == nil {
		return false, nil
	}
	for i := range list.Todos {
		list.Todos[i].Done = true
	}
	return true, nil
}

func (p *SessionPersistence) DeleteTodo(_ context.Context, listID, todoID int64) (bool, error) {
	list := p.findList(listID)
	if list == nil {
		return false, nil
	}
	idx := slices.IndexFunc(list.Todos, func(t model.Todo) bool { return t.ID == todoID })
	if idx < 0 {
		return false, nil
	}
	list.Todos = slices.Delete(list.Todos, idx, idx+1)
	return true, nil
}

func (p *SessionPersistence) ToggleDoneTodo(_ context.Context, listID, todoID int64) (bool, error) {
	list := p.findList(listID)
	if list == nil {
		return false, nil
	}
	todo := list.FindTodo(todoID)
	if todo == nil {
		return false, nil
	}
	todo.Done = !todo.Done
	return true, nil
}

// IsUniqueConstraintViolation is always false: the session backend has no
// constraints of its own, titles are checked with ExistsTodoListTitle.
func (p *SessionPersistence) IsUniqueConstraintViolation(error) bool {
	return false
}
