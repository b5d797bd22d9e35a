package router

import (
	"github.com/deppfellow/todos/internal/handler"
	"github.com/deppfellow/todos/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the routes outside the session-scoped API:
// health, docs and their static assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if s.Config.Primary.Env == "local" {
		r.GET("/email/preview/:template", h.OpenAPI.PreviewEmail)
	}
}
