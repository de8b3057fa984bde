package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Redis state store configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Recipe catalog database configuration. Driver is "sqlite" or "postgres".
	CatalogDriver string
	CatalogDSN    string

	// Path to the recipe seed file used by cmd/seed_catalog.
	CatalogSeedFile string

	// Logging
	LogLevel string
}

// Load creates a Config from environment variables, reading a .env file
// first when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:      getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogDriver:   getEnv("CATALOG_DRIVER", "sqlite"),
		CatalogDSN:      getEnv("CATALOG_DSN", "pantrychef.db"),
		CatalogSeedFile: getEnv("CATALOG_SEED_FILE", "data/recipes.json"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = db

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogDriver != "sqlite" && c.CatalogDriver != "postgres" {
		return fmt.Errorf("unsupported CATALOG_DRIVER %q (want sqlite or postgres)", c.CatalogDriver)
	}
	if c.CatalogDSN == "" {
		return fmt.Errorf("CATALOG_DSN must not be empty")
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q", c.ServerPort)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
