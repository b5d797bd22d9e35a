package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/sqlerr"
)

// SQLitePersistence stores todo lists in an embedded SQLite database opened
// with database.OpenSQLite. Like PgPersistence it is one shared dataset.
type SQLitePersistence struct {
	listViews
	db *sql.DB
}

func NewSQLitePersistence(db *sql.DB) *SQLitePersistence {
	return &SQLitePersistence{db: db}
}

func (p *SQLitePersistence) SortedTodoLists(ctx context.Context) ([]model.TodoList, error) {
	lists, err := p.queryLists(ctx, `SELECT id, title FROM todolists ORDER BY id`)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, `SELECT todolist_id, id, title, done FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byID := make(map[int64]int, len(lists))
	for i, list := range lists {
		byID[list.ID] = i
	}
	for rows.Next() {
		var listID int64
		var todo model.Todo
		if err := rows.Scan(&listID, &todo.ID, &todo.Title, &todo.Done); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		if i, ok := byID[listID]; ok {
			lists[i].Todos = append(lists[i].Todos, todo)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}

	return sortLists(lists), nil
}

func (p *SQLitePersistence) queryLists(ctx context.Context, query string, args ...any) ([]model.TodoList, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select todolists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	lists := []model.TodoList{}
	for rows.Next() {
		list := model.TodoList{Todos: []model.Todo{}}
		if err := rows.Scan(&list.ID, &list.Title); err != nil {
			return nil, fmt.Errorf("scan todolist: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todolists: %w", err)
	}
	return lists, nil
}

func (p *SQLitePersistence) loadList(ctx context.Context, query string, arg any) (*model.TodoList, error) {
	lists, err := p.queryLists(ctx, query, arg)
	if err != nil || len(lists) == 0 {
		return nil, err
	}
	list := lists[0]

	rows, err := p.db.QueryContext(ctx,
		`SELECT id, title, done FROM todos WHERE todolist_id = ? ORDER BY id`, list.ID)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Done); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		list.Todos = append(list.Todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return &list, nil
}

func (p *SQLitePersistence) LoadTodoList(ctx context.Context, listID int64) (*model.TodoList, error) {
	return p.loadList(ctx, `SELECT id, title FROM todolists WHERE id = ?`, listID)
}

func (p *SQLitePersistence) LoadTodoListByTitle(ctx context.Context, title string) (*model.TodoList, error) {
	return p.loadList(ctx, `SELECT id, title FROM todolists WHERE title = ?`, title)
}

func (p *SQLitePersistence) LoadTodo(ctx context.Context, listID, todoID int64) (*model.Todo, error) {
	var todo model.Todo
	err := p.db.QueryRowContext(ctx,
		`SELECT id, title, done FROM todos WHERE todolist_id = ? AND id = ?`, listID, todoID,
	).Scan(&todo.ID, &todo.Title, &todo.Done)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select todo: %w", err)
	}
	return &todo, nil
}

func (p *SQLitePersistence) ExistsTodoListTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM todolists WHERE title = ?)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check todolist title: %w", err)
	}
	return exists, nil
}

func (p *SQLitePersistence) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *SQLitePersistence) CreateTodoList(ctx context.Context, title string) (bool, error) {
	return p.exec(ctx, `INSERT INTO todolists (title) VALUES (?)`, title)
}

func (p *SQLitePersistence) SetTodoListTitle(ctx context.Context, listID int64, title string) (bool, error) {
	return p.exec(ctx, `UPDATE todolists SET title = ? WHERE id = ?`, title, listID)
}

func (p *SQLitePersistence) DeleteTodoList(ctx context.Context, listID int64) (bool, error) {
	return p.exec(ctx, `DELETE FROM todolists WHERE id = ?`, listID)
}

func (p *SQLitePersistence) CreateTodo(ctx context.Context, listID int64, title string) (bool, error) {
	return p.exec(ctx,
		`INSERT INTO todos (title, todolist_id) SELECT ?, id FROM todolists WHERE id = ?`, title, listID)
}

func (p *SQLitePersistence) CompleteAllTodos(ctx context.Context, listID int64) (bool, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var found bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM todolists WHERE id = ?)`, listID).Scan(&found); err != nil {
		return false, fmt.Errorf("check todolist: %w", err)
	}
	if !found {
		return false, nil
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE todos SET done = 1 WHERE todolist_id = ? AND done = 0`, listID); err != nil {
		return false, fmt.Errorf("complete todos: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func (p *SQLitePersistence) DeleteTodo(ctx context.Context, listID, todoID int64) (bool, error) {
	return p.exec(ctx, `DELETE FROM todos WHERE todolist_id = ? AND id = ?`, listID, todoID)
}

func (p *SQLitePersistence) ToggleDoneTodo(ctx context.Context, listID, todoID int64) (bool, error) {
	return p.exec(ctx,
		`UPDATE todos SET done = NOT done WHERE todolist_id = ? AND id = ?`, listID, todoID)
}

// IsUniqueConstraintViolation recognises SQLITE_CONSTRAINT_UNIQUE.
func (p *SQLitePersistence) IsUniqueConstraintViolation(err error) bool {
	return sqlerr.IsUniqueViolation(err)
}
