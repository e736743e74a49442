// Package config reads the cashbuddy settings from the environment.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Backends lists the supported storage backends.
var Backends = []string{"jsonl", "sqlite"}

type Config struct {
	// Storage
	DataPath string
	Backend  string

	// Display
	Currency string
	BarWidth int

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads an optional .env file from the working directory, then the
// environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() *Config {
	cfg := &Config{
		Backend:  strings.ToLower(getEnv("CASHBUDDY_BACKEND", "jsonl")),
		Currency: strings.ToUpper(getEnv("CASHBUDDY_CURRENCY", "USD")),
		BarWidth: getEnvInt("CASHBUDDY_BAR_WIDTH", 20),
		LogLevel: strings.ToLower(getEnv("CASHBUDDY_LOG_LEVEL", "disabled")),
		LogFile:  getEnv("CASHBUDDY_LOG_FILE", ""),
	}
	cfg.DataPath = getEnv("CASHBUDDY_DATA", DefaultDataPath(cfg.Backend))
	return cfg
}

// DefaultDataPath returns the data file used by a backend when none is configured.
func DefaultDataPath(backend string) string {
	if backend == "sqlite" {
		return "cashbuddy.db"
	}
	return "cashbuddy.jsonl"
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(Backends, c.Backend) {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, Backends))
	}
	if c.DataPath == "" {
		errors = append(errors, "data path cannot be empty")
	}

	if money.GetCurrency(c.Currency) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency '%s': must be an ISO 4217 code", c.Currency))
	}
	if c.BarWidth < 1 || c.BarWidth > 100 {
		errors = append(errors, fmt.Sprintf("invalid bar width %d: must be between 1 and 100", c.BarWidth))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': %v", c.LogLevel, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
