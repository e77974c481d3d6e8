package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultTermuxBinDir is where the termux-api wrappers live on device.
const DefaultTermuxBinDir = "/data/data/com.termux/files/usr/bin"

type Config struct {
	// Store backend: csv, sqlite or memory.
	Backend string

	// CSV log location (csv backend).
	CSVPath string

	// SQLite database location (sqlite backend).
	SQLitePath string

	// Termux
	TermuxBinDir  string
	VibrateMillis int

	// Logging
	LogLevel string
}

func Load() *Config {
	data := dataDir()
	return &Config{
		Backend:       getEnv("DEEN_BACKEND", "csv"),
		CSVPath:       getEnv("DEEN_LOG_PATH", filepath.Join(data, "daily_progress.csv")),
		SQLitePath:    getEnv("DEEN_SQLITE_PATH", filepath.Join(data, "deen.db")),
		TermuxBinDir:  getEnv("TERMUX_BIN_PATH", DefaultTermuxBinDir),
		VibrateMillis: getEnvInt("DEEN_VIBRATE_MS", 100),
		LogLevel:      getEnv("DEEN_LOG_LEVEL", "warn"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	switch c.Backend {
	case "csv", "sqlite", "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of [csv sqlite memory]", c.Backend))
	}

	if c.Backend == "csv" && c.CSVPath == "" {
		errors = append(errors, "log path cannot be empty when using csv backend")
	}
	if c.Backend == "sqlite" && c.SQLitePath == "" {
		errors = append(errors, "database path cannot be empty when using sqlite backend")
	}

	if c.VibrateMillis < 0 {
		errors = append(errors, fmt.Sprintf("invalid vibrate duration %d: must not be negative", c.VibrateMillis))
	} else if c.VibrateMillis > 10000 {
		errors = append(errors, fmt.Sprintf("invalid vibrate duration %d: must be at most 10000 ms", c.VibrateMillis))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// dataDir is ~/.deen, falling back to the working directory when the
// home directory cannot be determined.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deen"
	}
	return filepath.Join(home, ".deen")
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
