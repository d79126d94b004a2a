// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	Pagination PaginationConfig
	Registry   RegistryConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
	MaxRequestSize     int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// PaginationConfig holds list page size limits
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// RegistryConfig holds settings of the in-memory registries
type RegistryConfig struct {
	// IDStrategy is "sequence" or "uuid"
	IDStrategy string
	// SeedFile is a YAML seed; empty means the built-in seed
	SeedFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d is out of range", cfg.Server.Port)
	}
	if cfg.Server.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: must be positive")
	}
	maxRequestSize, err := intEnv("MAX_REQUEST_SIZE", 1<<20)
	if err != nil {
		return nil, err
	}
	if maxRequestSize < 1 {
		return nil, fmt.Errorf("invalid MAX_REQUEST_SIZE: must be positive")
	}
	cfg.Server.MaxRequestSize = int64(maxRequestSize)

	// Logging configuration
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Pagination configuration
	if cfg.Pagination.DefaultPageSize, err = intEnv("DEFAULT_PAGE_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Pagination.MaxPageSize, err = intEnv("MAX_PAGE_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.Pagination.DefaultPageSize < 1 || cfg.Pagination.MaxPageSize < cfg.Pagination.DefaultPageSize {
		return nil, fmt.Errorf("invalid page sizes: default %d, max %d", cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	}

	// Registry configuration
	cfg.Registry.IDStrategy = strings.ToLower(strings.TrimSpace(os.Getenv("ID_STRATEGY")))
	switch cfg.Registry.IDStrategy {
	case "":
		cfg.Registry.IDStrategy = "sequence"
	case "sequence", "uuid":
	default:
		return nil, fmt.Errorf("invalid ID_STRATEGY: %s, must be 'sequence' or 'uuid'", cfg.Registry.IDStrategy)
	}
	cfg.Registry.SeedFile = os.Getenv("SEED_FILE")

	return cfg, nil
}

// intEnv reads an integer variable, falling back to def when it is unset
func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// parseOrigins splits a comma-separated origin list, defaulting to all origins
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
