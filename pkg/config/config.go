package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Redis read-through cache for category lookups; empty disables it
	RedisURL string `conf:"env:REDIS_URL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Catalog
	SeedCategories int `conf:"default:0,env:SEED_CATEGORIES"`

	// Observability
	ServiceName    string `conf:"default:catalog,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.SeedCategories > 0 {
		errs = append(errs, fmt.Sprintf("SEED_CATEGORIES must be 0 in production (got %d)", cfg.SeedCategories))
	}

	if cfg.SeedCategories < 0 {
		errs = append(errs, "SEED_CATEGORIES must not be negative")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
