package repository

import (
	"github.com/deppfellow/todos/internal/config"
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/session"
)

// Repositories hands out the TodoStore configured by persistence.backend.
type Repositories struct {
	shared TodoStore
}

// NewRepositories picks the backend from s.Config. The durable stores are
// built once; the session store is built per request in Todos.
func NewRepositories(s *server.Server) *Repositories {
	repos := &Repositories{}
	switch s.Config.Persistence.Backend {
	case config.PersistenceBackendPostgres:
		repos.shared = NewPgPersistence(s.DB.Pool)
	case config.PersistenceBackendSQLite:
		repos.shared = NewSQLitePersistence(s.SQLite)
	}
	return repos
}

// Todos returns the store for a request bound to sess.
func (r *Repositories) Todos(sess *session.Session) TodoStore {
	if r.shared != nil {
		return r.shared
	}
	return NewSessionPersistence(sess)
}
