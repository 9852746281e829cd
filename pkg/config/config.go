// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, sources, cache, and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Sources contains the upstream feed and profile URLs
	Sources SourcesConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// SourcesConfig holds the upstream activity sources
type SourcesConfig struct {
	// FeedURL is the activity feed to poll
	FeedURL string

	// ProfileURL is the profile page scraped for challenge counters.
	// Optional; when empty the profile strategy is skipped.
	ProfileURL string

	// HTTPTimeout bounds each upstream fetch
	HTTPTimeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// BookTTL is how long a fused reading record stays fresh
	BookTTL time.Duration

	// ChallengeTTL is how long a challenge lookup result stays fresh
	ChallengeTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "5050"),
		},
		Sources: SourcesConfig{
			FeedURL:     getEnvOrDefault("FEED_URL", ""),
			ProfileURL:  getEnvOrDefault("PROFILE_URL", ""),
			HTTPTimeout: time.Duration(getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Cache: CacheConfig{
			Type:         getEnvOrDefault("CACHE_TYPE", "memory"),
			BookTTL:      time.Duration(getEnvAsIntOrDefault("BOOK_CACHE_TTL_MINUTES", 5)) * time.Minute,
			ChallengeTTL: time.Duration(getEnvAsIntOrDefault("CHALLENGE_CACHE_TTL_MINUTES", 30)) * time.Minute,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Sources.FeedURL == "" {
		return errors.New("feed URL cannot be empty")
	}

	if c.Sources.HTTPTimeout < time.Second {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if c.Cache.BookTTL < time.Minute {
		return errors.New("book cache TTL must be at least 1 minute")
	}

	if c.Cache.ChallengeTTL < time.Minute {
		return errors.New("challenge cache TTL must be at least 1 minute")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
