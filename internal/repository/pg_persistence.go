package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPersistence stores todo lists in PostgreSQL. Every visitor sees the same
// dataset. Ids are passed as bigint so out-of-range ids simply match nothing.
type PgPersistence struct {
	listViews
	pool *pgxpool.Pool
}

func NewPgPersistence(pool *pgxpool.Pool) *PgPersistence {
	return &PgPersistence{pool: pool}
}

func (p *PgPersistence) SortedTodoLists(ctx context.Context) ([]model.TodoList, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title FROM todolists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select todolists: %w", err)
	}
	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TodoList, error) {
		list := model.TodoList{Todos: []model.Todo{}}
		err := row.Scan(&list.ID, &list.Title)
		return list, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan todolists: %w", err)
	}

	rows, err = p.pool.Query(ctx, `SELECT todolist_id, id, title, done FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer rows.Close()

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

func (p *PgPersistence) loadTodos(ctx context.Context, list *model.TodoList) error {
	rows, err := p.pool.Query(ctx,
		`SELECT id, title, done FROM todos WHERE todolist_id = $1::bigint ORDER BY id`, list.ID)
	if err != nil {
		return fmt.Errorf("select todos: %w", err)
	}
	todos, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Todo])
	if err != nil {
		return fmt.Errorf("scan todos: %w", err)
	}
	list.Todos = todos
	if list.Todos == nil {
		list.Todos = []model.Todo{}
	}
	return nil
}

func (p *PgPersistence) loadList(ctx context.Context, query string, arg any) (*model.TodoList, error) {
	var list model.TodoList
	err := p.pool.QueryRow(ctx, query, arg).Scan(&list.ID, &list.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select todolist: %w", err)
	}
	if err := p.loadTodos(ctx, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (p *PgPersistence) LoadTodoList(ctx context.Context, listID int64) (*model.TodoList, error) {
	return p.loadList(ctx, `SELECT id, title FROM todolists WHERE id = $1::bigint`, listID)
}

func (p *PgPersistence) LoadTodoListByTitle(ctx context.Context, title string) (*model.TodoList, error) {
	return p.loadList(ctx, `SELECT id, title FROM todolists WHERE title = $1`, title)
}

func (p *PgPersistence) LoadTodo(ctx context.Context, listID, todoID int64) (*model.Todo, error) {
	var todo model.Todo
	err := p.pool.QueryRow(ctx,
		`SELECT id, title, done FROM todos WHERE todolist_id = $1::bigint AND id = $2::bigint`,
		listID, todoID,
	).Scan(&todo.ID, &todo.Title, &todo.Done)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select todo: %w", err)
	}
	return &todo, nil
}

func (p *PgPersistence) ExistsTodoListTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM todolists WHERE title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check todolist title: %w", err)
	}
	return exists, nil
}

func (p *PgPersistence) exec(ctx context.Context, query string, args ...any) (bool, error) {
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (p *PgPersistence) CreateTodoList(ctx context.Context, title string) (bool, error) {
	return p.exec(ctx, `INSERT INTO todolists (title) VALUES ($1)`, title)
}

func (p *PgPersistence) SetTodoListTitle(ctx context.Context, listID int64, title string) (bool, error) {
	return p.exec(ctx, `UPDATE todolists SET title = $1 WHERE id = $2::bigint`, title, listID)
}

func (p *PgPersistence) DeleteTodoList(ctx context.Context, listID int64) (bool, error) {
	return p.exec(ctx, `DELETE FROM todolists WHERE id = $1::bigint`, listID)
}

func (p *PgPersistence) CreateTodo(ctx context.Context, listID int64, title string) (bool, error) {
	return p.exec(ctx,
		`INSERT INTO todos (title, todolist_id) SELECT $1, id FROM todolists WHERE id = $2::bigint`,
		title, listID)
}

func (p *PgPersistence) CompleteAllTodos(ctx context.Context, listID int64) (bool, error) {
	found := false
	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM todolists WHERE id = $1::bigint)`, listID,
		).Scan(&found); err != nil {
			return err
		}
		if !found {
			return nil
		}
		_, err := tx.Exec(ctx,
			`UPDATE todos SET done = true WHERE todolist_id = $1::bigint AND NOT done`, listID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("complete todos: %w", err)
	}
	return found, nil
}

func (p *PgPersistence) DeleteTodo(ctx context.Context, listID, todoID int64) (bool, error) {
	return p.exec(ctx,
		`DELETE FROM todos WHERE todolist_id = $1::bigint AND id = $2::bigint`, listID, todoID)
}

func (p *PgPersistence) ToggleDoneTodo(ctx context.Context, listID, todoID int64) (bool, error) {
	return p.exec(ctx,
		`UPDATE todos SET done = NOT done WHERE todolist_id = $1::bigint AND id = $2::bigint`, listID, todoID)
}

// IsUniqueConstraintViolation recognises SQLSTATE 23505.
func (p *PgPersistence) IsUniqueConstraintViolation(err error) bool {
	return sqlerr.IsUniqueViolation(err)
}
