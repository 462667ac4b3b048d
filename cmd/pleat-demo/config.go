package main

import (
	"os"
	"strconv"
)

// Config holds demo-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// DataPath is an optional YAML file holding the accordion entries.
	// Empty means the built-in demo set.
	DataPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:    false,
		DataPath: "",
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads PLEAT_DEBUG to enable debug mode and PLEAT_DATA for the entries file.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("PLEAT_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if dataPath := os.Getenv("PLEAT_DATA"); dataPath != "" {
		cfg.DataPath = dataPath
	}

	return cfg
}
