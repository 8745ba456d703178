// Package config reads server settings from the environment, with optional
// .env support.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"budgetbook/internal/logger"
)

// Config holds server settings. Database settings live in database.Config.
type Config struct {
	Env  string
	Port string

	// APIKey guards /api/v1. Empty leaves the API open.
	APIKey string

	// SeedDefaults applies the built-in household on startup.
	SeedDefaults bool
}

var appConfig *Config

// Load reads the configuration. A missing .env file is not an error; a PORT
// that is not a TCP port number is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	port := getEnv("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT %q is not a valid port number", port)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEFAULTS", "true"))
	if err != nil {
		logger.Get().Warnf("invalid SEED_DEFAULTS value %q, falling back to true", os.Getenv("SEED_DEFAULTS"))
		seed = true
	}

	appConfig = &Config{
		Env:          getEnv("ENV", "development"),
		Port:         port,
		APIKey:       os.Getenv("API_KEY"),
		SeedDefaults: seed,
	}
	return appConfig, nil
}

// Get returns the configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		cfg, err := Load()
		if err != nil {
			logger.Get().Fatalf("Failed to load configuration: %v", err)
		}
		appConfig = cfg
	}
	return appConfig
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
