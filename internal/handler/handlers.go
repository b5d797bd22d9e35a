package handler

import (
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/service"
)

// Handlers groups every HTTP handler so the router gets a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Todos   *TodoHandler
	Session *SessionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Todos:   NewTodoHandler(s, services.Todos),
		Session: NewSessionHandler(s),
	}
}
