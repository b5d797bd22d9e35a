package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// sqliteSchema mirrors migrations/001_create_todos.sql. SQLite has no
// migration history here; the statements are idempotent instead.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS todolists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	done BOOLEAN NOT NULL DEFAULT 0,
	todolist_id INTEGER NOT NULL REFERENCES todolists (id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS todos_todolist_id_idx ON todos (todolist_id);
`

// OpenSQLite opens (creating when needed) the SQLite file at path and makes
// sure the schema exists. ":memory:" is accepted for tests.
//
// The handle is limited to one connection: SQLite serializes writers anyway,
// and an in-memory database only lives as long as its connection.
func OpenSQLite(ctx context.Context, path string, logger *zerolog.Logger) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	if logger != nil {
		logger.Info().Str("path", path).Msg("opened sqlite database")
	}
	return db, nil
}
