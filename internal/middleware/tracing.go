package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/todos/internal/server"
)

// TracingMiddleware reports requests to New Relic. With a nil nrApp both
// middlewares pass requests straight through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// untraced reports paths that would only add noise to APM: health probes
// and static assets.
func untraced(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/status" || strings.HasPrefix(path, "/static/")
}

func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp, nrecho.WithSkipper(untraced))
}

// EnhanceTracing tags the transaction with request and session ids and
// notices the handler's error, if any.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("request.id", GetRequestID(c))

			err := next(c)

			if sessionID := GetSessionID(c); sessionID != "" {
				txn.AddAttribute("session.id", sessionID)
			}
			if err != nil {
				status := toHTTPError(err).Status
				txn.AddAttribute("http.status_code", status)
				// client mistakes are not application errors
				if status >= 500 {
					txn.NoticeError(nrpkgerrors.Wrap(err))
				}
				return err
			}
			txn.AddAttribute("http.status_code", c.Response().Status)
			return nil
		}
	}
}
