// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bikeshare explorer.
// Values are populated by Load from environment variables.
type Config struct {
	// DataDir is the directory holding chicago.csv, new_york_city.csv and
	// washington.csv. Defaults to the working directory.
	DataDir string

	// LogLevel controls the minimum log level. Defaults to "warn" so that an
	// interactive session is not interleaved with routine log lines.
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile, when set, receives log output instead of stderr.
	LogFile string
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory, if present, is loaded first; it never
// overrides variables already set in the environment.
// Returns an error naming every variable with an invalid value.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DataDir:  getEnv("BIKESHARE_DATA_DIR", "."),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFile:  os.Getenv("LOG_FILE"),
	}

	var invalid []string
	if !contains(validLogLevels, cfg.LogLevel) {
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL=%q (want one of %s)", cfg.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
