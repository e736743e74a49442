package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Config {
	return Config{
		DataPath: "cashbuddy.jsonl",
		Backend:  "jsonl",
		Currency: "USD",
		BarWidth: 20,
		LogLevel: "disabled",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		errorString string
	}{
		{name: "valid jsonl config", modify: func(c *Config) {}},
		{name: "valid sqlite config", modify: func(c *Config) { c.Backend = "sqlite"; c.DataPath = "data/cashbuddy.db" }},
		{name: "valid debug level", modify: func(c *Config) { c.LogLevel = "debug" }},
		{name: "empty log level", modify: func(c *Config) { c.LogLevel = "" }},
		{
			name:        "invalid backend",
			modify:      func(c *Config) { c.Backend = "sheets" },
			errorString: "invalid backend 'sheets': must be one of [jsonl sqlite]",
		},
		{
			name:        "empty data path",
			modify:      func(c *Config) { c.DataPath = "" },
			errorString: "data path cannot be empty",
		},
		{
			name:        "unknown currency",
			modify:      func(c *Config) { c.Currency = "XYZ" },
			errorString: "unknown currency 'XYZ'",
		},
		{
			name:        "bar width too small",
			modify:      func(c *Config) { c.BarWidth = 0 },
			errorString: "invalid bar width 0: must be between 1 and 100",
		},
		{
			name:        "bar width too large",
			modify:      func(c *Config) { c.BarWidth = 101 },
			errorString: "invalid bar width 101",
		},
		{
			name:        "invalid log level",
			modify:      func(c *Config) { c.LogLevel = "loud" },
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateAggregates(t *testing.T) {
	cfg := Config{Backend: "csv", Currency: "XYZ", LogLevel: "loud"}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"invalid backend", "data path", "unknown currency", "bar width", "log level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"CASHBUDDY_DATA", "CASHBUDDY_BACKEND", "CASHBUDDY_CURRENCY", "CASHBUDDY_BAR_WIDTH", "CASHBUDDY_LOG_LEVEL", "CASHBUDDY_LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)
		cfg := FromEnv()
		assert.Equal(t, &Config{
			DataPath: "cashbuddy.jsonl",
			Backend:  "jsonl",
			Currency: "USD",
			BarWidth: 20,
			LogLevel: "disabled",
		}, cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("sqlite default path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHBUDDY_BACKEND", "SQLite")
		cfg := FromEnv()
		assert.Equal(t, "sqlite", cfg.Backend)
		assert.Equal(t, "cashbuddy.db", cfg.DataPath)
	})

	t.Run("environment variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHBUDDY_DATA", "/tmp/ledger.jsonl")
		t.Setenv("CASHBUDDY_CURRENCY", "eur")
		t.Setenv("CASHBUDDY_BAR_WIDTH", "40")
		t.Setenv("CASHBUDDY_LOG_LEVEL", "DEBUG")
		t.Setenv("CASHBUDDY_LOG_FILE", "/tmp/cashbuddy.log")

		cfg := FromEnv()
		assert.Equal(t, "/tmp/ledger.jsonl", cfg.DataPath)
		assert.Equal(t, "EUR", cfg.Currency)
		assert.Equal(t, 40, cfg.BarWidth)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/cashbuddy.log", cfg.LogFile)
	})

	t.Run("invalid integer uses default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHBUDDY_BAR_WIDTH", "wide")
		assert.Equal(t, 20, FromEnv().BarWidth)
	})
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	os.Unsetenv("CASHBUDDY_CURRENCY")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CASHBUDDY_CURRENCY=GBP\n"), 0644))
	t.Chdir(dir)

	assert.Equal(t, "GBP", Load().Currency)
}
