// Package session manages anonymous visitor sessions. A session is created on
// first contact, identified by an opaque cookie and holds the visitor's todo
// lists when the session persistence backend is active.
package session

import (
	"context"
	"time"

	"github.com/deppfellow/todos/internal/model"
	"github.com/google/uuid"
)

// Session is the server-side state of one visitor.
//
// TodoLists stays nil until the session persistence backend seeds it, so an
// emptied-out session is not seeded again.
type Session struct {
	ID        string           `json:"id"`
	TodoLists []model.TodoList `json:"todoLists"`
	Sequence  model.Sequence   `json:"sequence"`
	CreatedAt time.Time        `json:"createdAt"`

	invalidated bool
}

// New returns an empty session with a fresh random identifier.
func New(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
	}
}

// Invalidate marks the session for destruction at the end of the request.
func (s *Session) Invalidate() {
	s.invalidated = true
}

// Invalidated reports whether Invalidate was called.
func (s *Session) Invalidated() bool {
	return s.invalidated
}

func (s *Session) clone() *Session {
	return &Session{
		ID:        s.ID,
		TodoLists: model.CloneTodoLists(s.TodoLists),
		Sequence:  s.Sequence,
		CreatedAt: s.CreatedAt,
	}
}

// Store persists sessions between requests. Every Save refreshes the
// session's expiry.
type Store interface {
	// Load returns the session or nil when it does not exist or expired.
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}
