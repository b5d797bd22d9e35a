package handler

import (
	"github.com/deppfellow/todos/internal/middleware"
	"github.com/deppfellow/todos/internal/model"
	"github.com/deppfellow/todos/internal/server"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	Handler
}

func NewSessionHandler(s *server.Server) *SessionHandler {
	return &SessionHandler{
		Handler: NewHandler(s),
	}
}

// DestroySession drops the visitor's session and its lists. The middleware
// deletes it from the store and expires the cookie; the next request starts
// over with the seed data.
func (h *SessionHandler) DestroySession(c echo.Context, _ *model.EmptyRequest) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	sess.Invalidate()
	middleware.GetLogger(c).Info().Msg("session destroyed")
	return nil
}
