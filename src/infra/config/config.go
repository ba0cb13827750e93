// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Database drivers accepted by DatabaseConfig.Driver.
const (
	// DriverGorm runs the gorm ORM over the pgx pool.
	DriverGorm = "gorm"
	// DriverPostgres uses hand-written SQL over the pgx pool.
	DriverPostgres = "postgres"
	// DriverSQLite runs the gorm ORM over a local SQLite file.
	DriverSQLite = "sqlite"
)

// MinSessionSecretLength is the minimum length of the session signing secret.
const MinSessionSecretLength = 32

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// AllowedOrigin is sent as Access-Control-Allow-Origin (default: *)
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`
}

// DatabaseConfig holds storage settings.
type DatabaseConfig struct {
	// Driver selects the repository implementation: gorm, postgres or sqlite (default: gorm)
	Driver string `envconfig:"DB_DRIVER" default:"gorm"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"jokester"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// SQLitePath is the database file used by the sqlite driver (default: jokester.db)
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"jokester.db"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// ConnectRetries is how many times the initial connection is attempted (default: 3)
	ConnectRetries int `envconfig:"DB_CONNECT_RETRIES" default:"3"`

	// ConnectRetryInterval is the base backoff between connection attempts (default: 1s)
	ConnectRetryInterval time.Duration `envconfig:"DB_CONNECT_RETRY_INTERVAL" default:"1s"`

	// AutoMigrate applies pending migrations when the server starts (default: true)
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	// MigrationsTable is the goose version table (default: goose_db_version)
	MigrationsTable string `envconfig:"DB_MIGRATIONS_TABLE" default:"goose_db_version"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: plain, text, json (default: plain)
	Format string `envconfig:"LOG_FORMAT" default:"plain"`
}

// SessionConfig holds the session cookie settings.
type SessionConfig struct {
	// Secret signs session tokens. At least 32 bytes.
	Secret string `envconfig:"SESSION_SECRET" required:"true"`

	// CookieName is the name of the session cookie (default: RJ_session)
	CookieName string `envconfig:"SESSION_COOKIE" default:"RJ_session"`

	// TTL is how long a session stays valid (default: 720h)
	TTL time.Duration `envconfig:"SESSION_TTL" default:"720h"`

	// Secure marks the cookie HTTPS-only (default: false)
	Secure bool `envconfig:"SESSION_SECURE" default:"false"`
}

// RateLimitConfig throttles form submissions per client IP.
type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks values envconfig cannot express as tags.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverGorm, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if len(c.Session.Secret) < MinSessionSecretLength {
		return fmt.Errorf("session secret must be at least %d bytes", MinSessionSecretLength)
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	sections := []struct {
		name string
		spec any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"session", &cfg.Session},
		{"rate limit", &cfg.RateLimit},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.spec); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
