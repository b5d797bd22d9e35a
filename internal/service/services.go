// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated requests and the visitor's session, services pick the store,
// enforce title uniqueness and map missing lists or todos onto HTTP errors.
package service

import (
	"github.com/deppfellow/todos/internal/lib/job"
	"github.com/deppfellow/todos/internal/repository"
	"github.com/deppfellow/todos/internal/server"
)

type Services struct {
	Todos *TodoService
	Job   *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Todos: NewTodoService(s, repos),
		Job:   s.Job,
	}, nil
}
