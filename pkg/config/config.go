// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, logging, cache, storage and search settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logger configuration
	Log LogConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Database contains the user store configuration
	Database DatabaseConfig

	// Auth contains session configuration
	Auth AuthConfig

	// Search contains smart search tuning
	Search SearchConfig

	// CORS contains cross-origin settings
	CORS CORSConfig

	// RateLimit contains per-IP rate limiting settings
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File is the rotating log file; empty writes to stdout
	File string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// DatabaseConfig holds the sqlite user store configuration
type DatabaseConfig struct {
	// Path is the sqlite database file
	Path string
}

// AuthConfig holds session configuration
type AuthConfig struct {
	// SessionTTL bounds how long a token lookup stays cached
	SessionTTL time.Duration
}

// SearchConfig holds smart search tuning
type SearchConfig struct {
	// FetchTimeout bounds each provider request
	FetchTimeout time.Duration

	// PoliteDelay spaces consecutive provider requests
	PoliteDelay time.Duration

	// VariantCap bounds the number of query variants
	VariantCap int

	// ProviderLimit bounds the links extracted per provider call
	ProviderLimit int

	// UserAgent is sent with every provider request; empty keeps the client default
	UserAgent string
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	// AllowedOrigins lists the origins allowed to call the API
	AllowedOrigins []string
}

// RateLimitConfig holds fixed-window rate limiting settings
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window
	Limit int

	// Window is the window length
	Window time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "careercompass:"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DATABASE_PATH", "careercompass.db"),
		},
		Auth: AuthConfig{
			SessionTTL: getEnvAsDurationOrDefault("SESSION_TTL", time.Second, 86400),
		},
		Search: SearchConfig{
			FetchTimeout:  getEnvAsDurationOrDefault("SEARCH_FETCH_TIMEOUT", time.Millisecond, 7000),
			PoliteDelay:   getEnvAsDurationOrDefault("SEARCH_POLITE_DELAY", time.Millisecond, 350),
			VariantCap:    getEnvAsIntOrDefault("SEARCH_VARIANT_CAP", 10),
			ProviderLimit: getEnvAsIntOrDefault("SEARCH_PROVIDER_LIMIT", 12),
			UserAgent:     getEnvOrDefault("SEARCH_USER_AGENT", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window: getEnvAsDurationOrDefault("RATE_WINDOW", time.Second, 60),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault reads an integer count of unit
func getEnvAsDurationOrDefault(key string, unit time.Duration, defaultValue int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultValue)) * unit
}

// getEnvAsListOrDefault splits a comma separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty")
	}

	if c.Auth.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	if c.Search.FetchTimeout <= 0 {
		return errors.New("search fetch timeout must be positive")
	}

	if c.Search.PoliteDelay < 0 {
		return errors.New("search polite delay cannot be negative")
	}

	if c.Search.VariantCap < 1 {
		return errors.New("search variant cap must be at least 1")
	}

	if c.Search.ProviderLimit < 1 {
		return errors.New("search provider limit must be at least 1")
	}

	if c.RateLimit.Limit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.RateLimit.Window < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	return nil
}
