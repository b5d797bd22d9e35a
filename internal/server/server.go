// Package server defines the Server container that owns the application's
// shared resources and the HTTP server lifecycle.
//
// Which resources exist depends on config:
//   - PostgreSQL pool (persistence.backend=postgres, migrated on startup)
//   - SQLite handle (persistence.backend=sqlite)
//   - Redis client (redis.address set), used for sessions and background jobs
//   - session store, in-process or Redis
//   - asynq job service (only with Redis)
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/todos/internal/config"
	"github.com/deppfellow/todos/internal/database"
	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/deppfellow/todos/internal/lib/job"
	"github.com/deppfellow/todos/internal/session"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/todos/internal/logger"
)

// Server is the application container. It is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// DB is set for the postgres backend, SQLite for the sqlite backend.
	DB     *database.Database
	SQLite *sql.DB

	// Redis is nil when redis.address is empty.
	Redis *redis.Client

	Sessions session.Store

	// Job is nil when background jobs are disabled.
	Job *job.JobService

	httpServer *http.Server
	stopSweep  context.CancelFunc
}

// New constructs a Server and opens every configured dependency.
//
// Redis failures are fatal only when sessions live in Redis; otherwise the
// server starts and the health check reports Redis as unhealthy.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}
	nrEnabled := loggerService != nil && loggerService.GetApplication() != nil

	switch cfg.Persistence.Backend {
	case config.PersistenceBackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.Migrate(ctx, logger, cfg); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db
	case config.PersistenceBackendSQLite:
		db, err := database.OpenSQLite(context.Background(), cfg.Persistence.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite: %w", err)
		}
		s.SQLite = db
	}

	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})
		if nrEnabled {
			redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			if cfg.Session.Backend == config.SessionBackendRedis {
				s.closeStores()
				return nil, fmt.Errorf("failed to connect to redis: %w", err)
			}
			logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
		}
		s.Redis = redisClient
	}

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		s.Sessions = session.NewRedisStore(s.Redis, cfg.Session.TTL)
	default:
		store := session.NewMemoryStore(cfg.Session.TTL)
		ctx, cancel := context.WithCancel(context.Background())
		s.stopSweep = cancel
		go store.Run(ctx, cfg.Session.SweepInterval, logger)
		s.Sessions = store
	}

	if cfg.JobsEnabled() {
		jobService := job.NewJobService(logger, cfg, email.NewClient(cfg, logger))
		if err := jobService.Start(); err != nil {
			s.closeStores()
			return nil, fmt.Errorf("failed to start job server: %w", err)
		}
		s.Job = jobService
	}

	return s, nil
}

// SetupHTTPServer configures the net/http server around handler.
// Config timeouts are whole seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("sessions", s.Config.Session.Backend).
		Str("persistence", s.Config.Persistence.Backend).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains HTTP requests, then releases every dependency.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}
	if s.stopSweep != nil {
		s.stopSweep()
	}

	return errors.Join(shutdownErr, s.closeStores())
}

func (s *Server) closeStores() error {
	var errs []error
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}
	if s.SQLite != nil {
		if err := s.SQLite.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close sqlite: %w", err))
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
