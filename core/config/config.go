// Package config loads the application configuration from the environment,
// with a .env file as an optional local override.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Feed        FeedConfig
	Auth        AuthConfig
	Telemetry   TelemetryConfig
	Environment string `env:"ENVIRONMENT" env-default:"development"`
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN" env-required:"true"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS" env-default:"25"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS" env-default:"5"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

type FeedConfig struct {
	MaxPageSize     int    `env:"FEED_MAX_PAGE_SIZE" env-default:"50"`
	DefaultPageSize int    `env:"FEED_DEFAULT_PAGE_SIZE" env-default:"20"`
	Timezone        string `env:"FEED_TIMEZONE" env-default:"UTC"`
}

type AuthConfig struct {
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"168h"`
}

// TelemetryConfig gates the otel exporters: with no endpoint configured the
// server runs without them.
type TelemetryConfig struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Feed.MaxPageSize < 1 {
		return fmt.Errorf("FEED_MAX_PAGE_SIZE must be at least 1, got %d", c.Feed.MaxPageSize)
	}
	if c.Feed.DefaultPageSize < 1 || c.Feed.DefaultPageSize > c.Feed.MaxPageSize {
		return fmt.Errorf("FEED_DEFAULT_PAGE_SIZE must be in [1, %d], got %d",
			c.Feed.MaxPageSize, c.Feed.DefaultPageSize)
	}
	if _, err := c.Feed.Location(); err != nil {
		return fmt.Errorf("FEED_TIMEZONE: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the host:port the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Location resolves the configured feed timezone.
func (f FeedConfig) Location() (*time.Location, error) {
	return time.LoadLocation(f.Timezone)
}
