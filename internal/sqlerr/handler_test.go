package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/todos/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", TableName: "todolists", ConstraintName: "todolists_title_key"}
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"raw", unique, true},
		{"wrapped", fmt.Errorf("insert list: %w", unique), true},
		{"converted", ConvertPgError(unique), true},
		{"foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("IsUniqueViolation = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "todolists",
		ConstraintName: "todolists_title_key",
	})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", httpErr.Status)
	}
	if httpErr.Code != "TODOLIST_ALREADY_EXISTS" {
		t.Fatalf("code = %q", httpErr.Code)
	}
	if httpErr.Message != "A todo list with this title already exists" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKey(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23503", TableName: "todos", ColumnName: "todolist_id"})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Message != "The referenced todo list does not exist" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("table:todolists: %w", pgx.ErrNoRows))
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if httpErr.Message != "Todo List not found" {
		t.Fatalf("message = %q", httpErr.Message)
	}

	err = HandleError(sql.ErrNoRows)
	if !errors.As(err, &httpErr) || httpErr.Message != "Resource not found" {
		t.Fatalf("unexpected %v", err)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	in := errs.TodoListNotFound()
	if out := HandleError(in); out != in {
		t.Fatalf("HTTPError was re-wrapped: %v", out)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	var httpErr *errs.HTTPError
	if !errors.As(HandleError(errors.New("conn reset")), &httpErr) || httpErr.Status != http.StatusInternalServerError {
		t.Fatal("expected 500")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := map[string]string{
		"todolists_title_key":    "title",
		"unique_todolists_title": "title",
		"todolists_pkey":         "",
		"":                       "",
	}
	for in, want := range cases {
		if got := extractColumnForUniqueViolation(in); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapSeverityFallsBack(t *testing.T) {
	if MapSeverity("FATAL") != SeverityFatal {
		t.Fatal("FATAL not mapped")
	}
	if MapSeverity("weird") != SeverityError {
		t.Fatal("unknown severity should be ERROR")
	}
}
