// Package router builds the Echo instance: global middleware, the system
// routes and the session-scoped /api/v1 group.
package router

import (
	"github.com/deppfellow/todos/internal/handler"
	"github.com/deppfellow/todos/internal/middleware"
	"github.com/deppfellow/todos/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// order matters: the request id and the New Relic transaction must exist
	// before the context logger is built from them
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, s, h)

	v1 := router.Group("/api/v1", middlewares.RateLimit.Limit(), middlewares.Session.RequireSession)
	registerTodoRoutes(v1, h)

	return router
}
