package middleware

import (
	"net/http"
	"time"

	"github.com/deppfellow/todos/internal/server"
	"github.com/deppfellow/todos/internal/session"
	"github.com/labstack/echo/v4"
)

// SessionKey stores the request's *session.Session in the Echo context.
const SessionKey = "session"

// SessionMiddleware attaches an anonymous session to every request.
type SessionMiddleware struct {
	server *server.Server
	now    func() time.Time
}

func NewSessionMiddleware(s *server.Server) *SessionMiddleware {
	return &SessionMiddleware{
		server: s,
		now:    time.Now,
	}
}

// RequireSession loads the session named by the cookie or starts a new one.
//
// The session is written back (or destroyed, when invalidated) right before
// the response header goes out, so the next request always sees this
// request's changes. The cookie is refreshed on every response, which keeps
// the expiry rolling.
func (sm *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := sm.server.Config.Session
		ctx := c.Request().Context()
		logger := GetLogger(c)

		var sess *session.Session
		if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
			loaded, err := sm.server.Sessions.Load(ctx, cookie.Value)
			if err != nil {
				logger.Error().Err(err).Msg("failed to load session")
				return err
			}
			sess = loaded
		}
		if sess == nil {
			sess = session.New(sm.now())
			logger.Debug().Str("session_id", sess.ID).Msg("started new session")
		}

		c.Set(SessionKey, sess)
		sessionLogger := logger.With().Str("session_id", sess.ID).Logger()
		c.Set(LoggerKey, &sessionLogger)
		c.SetRequest(c.Request().WithContext(sessionLogger.WithContext(ctx)))

		persisted := false
		persist := func() {
			if persisted {
				return
			}
			persisted = true

			if sess.Invalidated() {
				if err := sm.server.Sessions.Destroy(ctx, sess.ID); err != nil {
					sessionLogger.Error().Err(err).Msg("failed to destroy session")
				}
				c.SetCookie(sm.cookie("", -1))
				return
			}
			if err := sm.server.Sessions.Save(ctx, sess); err != nil {
				sessionLogger.Error().Err(err).Msg("failed to save session")
			}
			c.SetCookie(sm.cookie(sess.ID, int(cfg.TTL.Seconds())))
		}
		c.Response().Before(persist)

		err := next(c)

		// nothing was written, e.g. the error handler still has to respond
		if !c.Response().Committed {
			persist()
		}
		return err
	}
}

func (sm *SessionMiddleware) cookie(value string, maxAge int) *http.Cookie {
	cfg := sm.server.Config.Session
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// GetSession returns the session attached by RequireSession, or nil.
func GetSession(c echo.Context) *session.Session {
	if sess, ok := c.Get(SessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}
