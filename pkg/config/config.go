// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, site data source, and cache settings

package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Site contains digest data-source configuration
	Site SiteConfig

	// Cache contains cache configuration
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the dataset refresh interval in seconds; 0 disables
	RefreshTimer int

	// RateLimit is the number of requests allowed per IP per minute
	RateLimit int
}

// SiteConfig holds the remote layout of the published digest artifacts
type SiteConfig struct {
	// Title is the site title shown on rendered pages
	Title string

	// URL is the public site URL, used as the RSS channel link
	URL string

	// Description is the about blurb shown on the home page and feed
	Description string

	// DataBaseURL is the root URL under which the digest JSON lives
	DataBaseURL string

	// ManifestPath is the manifest resource path relative to DataBaseURL
	ManifestPath string

	// FallbackMonths seeds the manifest when the real one is unavailable
	FallbackMonths []string
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
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			RefreshTimer: getEnvAsIntOrDefault("REFRESH_TIMER", 0),
			RateLimit:    getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Site: SiteConfig{
			Title:          getEnvOrDefault("SITE_TITLE", "EEG Foundation Model Digest"),
			URL:            getEnvOrDefault("SITE_URL", "https://eegfm-digest.pages.dev"),
			Description:    getEnvOrDefault("SITE_DESCRIPTION", "A monthly digest of EEG foundation model papers from arXiv, triaged and summarized."),
			DataBaseURL:    os.Getenv("DATA_BASE_URL"),
			ManifestPath:   getEnvOrDefault("MANIFEST_PATH", "data/months.json"),
			FallbackMonths: parseMonthList(os.Getenv("FALLBACK_MONTHS")),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
	}

	return cfg, nil
}

// parseMonthList accepts either a JSON array of month labels or a plain
// comma-separated list.
func parseMonthList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var months []string
	if err := json.Unmarshal([]byte(raw), &months); err == nil {
		return trimNonEmpty(months)
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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

	if c.Server.RefreshTimer < 0 {
		return errors.New("refresh timer cannot be negative")
	}

	if c.Site.DataBaseURL == "" {
		return errors.New("data base URL cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
