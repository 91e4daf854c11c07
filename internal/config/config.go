// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Cache (Redis), used for rate limiting the public intake endpoint
	RedisURL      string `env:"REDIS_URL,required"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Externally reachable base URL, embedded in confirmation links
	// (e.g. https://newsletter.example.com)
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Email delivery API
	EmailBaseURL     string        `env:"EMAIL_BASE_URL" envDefault:"https://api.postmarkapp.com"`
	EmailServerToken string        `env:"EMAIL_SERVER_TOKEN"`
	EmailSender      string        `env:"EMAIL_SENDER,required"`
	EmailTimeout     time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting for POST /subscriptions (per client IP)
	RateLimitSubscribeEnabled bool `env:"RATE_LIMIT_SUBSCRIBE_ENABLED" envDefault:"true"`
	RateLimitSubscribeRPS     int  `env:"RATE_LIMIT_SUBSCRIBE_RPS" envDefault:"5"`
	RateLimitSubscribeBurst   int  `env:"RATE_LIMIT_SUBSCRIBE_BURST" envDefault:"10"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
