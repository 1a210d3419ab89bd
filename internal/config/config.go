package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidConfig marks a caller contract violation detected at
// construction time. Ordinary inputs (empty queries, empty catalogs) never
// produce errors at call time.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the snippet engine service
type Config struct {
	Engine EngineConfig
	Server ServerConfig
}

// EngineConfig holds ranking core specific configuration
type EngineConfig struct {
	HistorySize    int
	RecentsSize    int
	RecommendLimit int
	CatalogPath    string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Engine: EngineConfig{
			HistorySize:    GetIntEnv("ENGINE_HISTORY_SIZE", 10),
			RecentsSize:    GetIntEnv("ENGINE_RECENTS_SIZE", 5),
			RecommendLimit: GetIntEnv("ENGINE_RECOMMEND_LIMIT", 5),
			CatalogPath:    GetStringEnv("ENGINE_CATALOG_PATH", "./data/catalog.json"),
		},
		Server: ServerConfig{
			Port: GetStringEnv("SERVER_PORT", ":8080"),
		},
	}
}

// Validate reports configuration contract violations. It is the only defined
// failure mode of the core and runs once at construction, never at call time.
func (c *Config) Validate() error {
	if c.Engine.HistorySize <= 0 {
		return fmt.Errorf("%w: history size must be positive, got %d", ErrInvalidConfig, c.Engine.HistorySize)
	}
	if c.Engine.RecentsSize <= 0 {
		return fmt.Errorf("%w: recents size must be positive, got %d", ErrInvalidConfig, c.Engine.RecentsSize)
	}
	if c.Engine.RecommendLimit <= 0 {
		return fmt.Errorf("%w: recommend limit must be positive, got %d", ErrInvalidConfig, c.Engine.RecommendLimit)
	}
	if c.Engine.CatalogPath == "" {
		return fmt.Errorf("%w: catalog path must not be empty", ErrInvalidConfig)
	}
	return nil
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
