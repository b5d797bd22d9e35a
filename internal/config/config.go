// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types and validates them so the
// application fails fast on bad or missing config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config struct tree.
//   - Apply defaults for optional blocks (session, persistence, observability).
//   - Validate required values and cross-field rules.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable koanf reads.
//
// Nesting uses a double underscore, e.g.
//
//	TODOS_SERVER__PORT          -> server.port
//	TODOS_SESSION__COOKIE_NAME  -> session.cookie_name
const EnvPrefix = "TODOS_"

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Persistence backends for todo lists.
//
// "session" keeps lists inside the visitor's session, the other two share a
// single durable dataset between all visitors.
const (
	PersistenceBackendSession  = "session"
	PersistenceBackendPostgres = "postgres"
	PersistenceBackendSQLite   = "sqlite"
)

// Config is the root configuration object for the application.
//
// Database and Observability are pointers because they are optional:
// Database is only needed by the postgres backend, Observability gets
// defaults injected when omitted.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Session       SessionConfig        `koanf:"session"`
	Persistence   PersistenceConfig    `koanf:"persistence"`
	Database      *DatabaseConfig      `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// SessionConfig controls where sessions live and how the cookie looks.
type SessionConfig struct {
	Backend      string        `koanf:"backend" validate:"required,oneof=memory redis"`
	CookieName   string        `koanf:"cookie_name" validate:"required"`
	TTL          time.Duration `koanf:"ttl" validate:"min=1m"`
	SecureCookie bool          `koanf:"secure_cookie"`

	// SweepInterval is how often the in-process backend drops expired sessions.
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"min=1s"`
}

// PersistenceConfig selects the todo list backend.
type PersistenceConfig struct {
	Backend    string `koanf:"backend" validate:"required,oneof=session postgres sqlite"`
	SQLitePath string `koanf:"sqlite_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
//
// Address ("host:port") is optional unless sessions are stored in Redis.
// Background jobs are only enabled when it is set.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// IntegrationConfig stores third-party credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// JobsEnabled reports whether background jobs can run (they need Redis).
func (c *Config) JobsEnabled() bool {
	return c.Redis.Address != ""
}

// Validate checks rules that span several blocks.
func (c *Config) Validate() error {
	if c.Session.Backend == SessionBackendRedis && c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required when session.backend is %q", SessionBackendRedis)
	}
	switch c.Persistence.Backend {
	case PersistenceBackendPostgres:
		if c.Database == nil {
			return fmt.Errorf("database config is required when persistence.backend is %q", PersistenceBackendPostgres)
		}
	case PersistenceBackendSQLite:
		if c.Persistence.SQLitePath == "" {
			return fmt.Errorf("persistence.sqlite_path is required when persistence.backend is %q", PersistenceBackendSQLite)
		}
	}
	return nil
}

// listKeys are env keys whose values are comma-separated lists.
var listKeys = map[string]struct{}{
	"server.cors_allowed_origins":        {},
	"observability.health_checks.checks": {},
}

// applyDefaults fills optional values that env did not provide.
func (c *Config) applyDefaults() {
	if c.Session.Backend == "" {
		c.Session.Backend = SessionBackendMemory
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "todos_session"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Session.SweepInterval == 0 {
		c.Session.SweepInterval = time.Minute
	}
	if c.Persistence.Backend == "" {
		c.Persistence.Backend = PersistenceBackendSession
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = "Todos <onboarding@resend.dev>"
	}
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	// Service name and environment are forced so telemetry stays consistent.
	c.Observability.ServiceName = "todos"
	c.Observability.Environment = c.Primary.Env
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "__", ".")
		if _, ok := listKeys[key]; ok {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	mainConfig.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
