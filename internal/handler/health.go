package handler

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/todos/internal/config"
	"github.com/deppfellow/todos/internal/middleware"
	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/session"
	"github.com/labstack/echo/v4"
)

const defaultHealthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the configured dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck pings one dependency. required marks checks whose failure
// makes the whole service unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	if !h.server.Config.Observability.HealthChecks.Enabled {
		return nil
	}

	var checks []dependencyCheck

	if h.server.DB != nil {
		checks = append(checks, dependencyCheck{name: "database", required: true, ping: h.server.DB.Pool.Ping})
	}
	if h.server.SQLite != nil {
		checks = append(checks, dependencyCheck{name: "sqlite", required: true, ping: h.server.SQLite.PingContext})
	}
	if h.server.Redis != nil {
		checks = append(checks, dependencyCheck{
			name:     "redis",
			required: h.server.Config.Session.Backend == config.SessionBackendRedis,
			ping: func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			},
		})
	}
	return h.enabled(checks)
}

// enabled keeps the checks named in observability.health_checks.checks; an
// empty list keeps all of them.
func (h *HealthHandler) enabled(checks []dependencyCheck) []dependencyCheck {
	names := h.server.Config.Observability.HealthChecks.Checks
	if len(names) == 0 {
		return checks
	}
	return slices.DeleteFunc(checks, func(check dependencyCheck) bool {
		return !slices.Contains(names, check.name)
	})
}

func (h *HealthHandler) timeout() time.Duration {
	if t := h.server.Config.Observability.HealthChecks.Timeout; t > 0 {
		return t
	}
	return defaultHealthCheckTimeout
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise. Optional dependencies (Redis used only for jobs) are reported
// but do not fail the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}
	isHealthy := true

	for _, check := range h.checks() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}
			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			h.recordHealthCheckError(check.name, err, time.Since(checkStart))
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	}

	sessions := map[string]interface{}{
		"status":  "healthy",
		"backend": h.server.Config.Session.Backend,
	}
	if mem, ok := h.server.Sessions.(*session.MemoryStore); ok {
		sessions["active"] = mem.Len()
	}
	checks["sessions"] = sessions

	if !isHealthy {
		response["status"] = "unhealthy"
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) recordHealthCheckError(check string, err error, took time.Duration) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": took.Milliseconds(),
		"error_message":    err.Error(),
	})
}
