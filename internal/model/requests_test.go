package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/deppfellow/todos/internal/validation"
)

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var custom validation.CustomValidationErrors
	if !errors.As(err, &custom) || len(custom) == 0 {
		t.Fatalf("expected custom validation errors, got %v", err)
	}
	return custom[0].Message
}

func TestCreateTodoListRequestValidate(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"blank", "   ", "The list title is required."},
		{"too long", strings.Repeat("x", 101), "List title must be between 1 and 100 characters."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &CreateTodoListRequest{Title: tc.title}
			if got := firstMessage(t, req.Validate()); got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}

	req := &CreateTodoListRequest{Title: "  Groceries  "}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid title rejected: %v", err)
	}
	if req.Title != "Groceries" {
		t.Fatalf("title not trimmed: %q", req.Title)
	}

	// 100 multibyte characters are still 100 characters.
	req = &CreateTodoListRequest{Title: strings.Repeat("é", 100)}
	if err := req.Validate(); err != nil {
		t.Fatalf("100 characters rejected: %v", err)
	}
}

func TestCreateTodoRequestValidate(t *testing.T) {
	if got := firstMessage(t, (&CreateTodoRequest{ListID: 1}).Validate()); got != "The todo title is required." {
		t.Fatalf("message = %q", got)
	}
	long := &CreateTodoRequest{ListID: 1, Title: strings.Repeat("y", 101)}
	if got := firstMessage(t, long.Validate()); got != "Todo title must be between 1 and 100 characters." {
		t.Fatalf("message = %q", got)
	}
}

func TestShareTodoListRequestValidate(t *testing.T) {
	if got := firstMessage(t, (&ShareTodoListRequest{Email: "nope"}).Validate()); got != "The email address is not valid." {
		t.Fatalf("message = %q", got)
	}
	if err := (&ShareTodoListRequest{Email: " a@example.com "}).Validate(); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
}
