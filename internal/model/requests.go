package model

import (
	"strings"

	"github.com/deppfellow/todos/internal/validation"
)

var listTitleMessages = validation.Messages{
	"Title.required": "The list title is required.",
	"Title.max":      "List title must be between 1 and 100 characters.",
}

var todoTitleMessages = validation.Messages{
	"Title.required": "The todo title is required.",
	"Title.max":      "Todo title must be between 1 and 100 characters.",
}

var shareMessages = validation.Messages{
	"Email.required": "An email address is required.",
	"Email.email":    "The email address is not valid.",
}

// EmptyRequest is the payload of routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// TodoListRequest addresses a single list by its path id.
type TodoListRequest struct {
	ListID int64 `param:"listId" json:"-"`
}

func (r *TodoListRequest) Validate() error {
	return nil
}

// TodoRequest addresses a single todo inside a list.
type TodoRequest struct {
	ListID int64 `param:"listId" json:"-"`
	TodoID int64 `param:"todoId" json:"-"`
}

func (r *TodoRequest) Validate() error {
	return nil
}

// CreateTodoListRequest is the body of POST /lists. Titles are trimmed
// before validation.
type CreateTodoListRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

func (r *CreateTodoListRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.Struct(r, listTitleMessages)
}

// UpdateTodoListRequest renames a list.
type UpdateTodoListRequest struct {
	ListID int64  `param:"listId" json:"-"`
	Title  string `json:"title" validate:"required,max=100"`
}

func (r *UpdateTodoListRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.Struct(r, listTitleMessages)
}

// CreateTodoRequest adds a todo to a list.
type CreateTodoRequest struct {
	ListID int64  `param:"listId" json:"-"`
	Title  string `json:"title" validate:"required,max=100"`
}

func (r *CreateTodoRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.Struct(r, todoTitleMessages)
}

// ShareTodoListRequest emails a snapshot of a list.
type ShareTodoListRequest struct {
	ListID int64  `param:"listId" json:"-"`
	Email  string `json:"email" validate:"required,email"`
}

func (r *ShareTodoListRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validation.Struct(r, shareMessages)
}
