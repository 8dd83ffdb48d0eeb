package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the host configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Agent link
	AgentURL  string
	Transport string // sse or ws

	// Shutdown
	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file
// is loaded first when present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("A2UI_PORT", "8080"),
		LogLevel:        getEnvOrDefault("A2UI_LOG_LEVEL", "info"),
		AgentURL:        os.Getenv("A2UI_AGENT_URL"),
		Transport:       getEnvOrDefault("A2UI_TRANSPORT", "sse"),
		ShutdownTimeout: getEnvDurationOrDefault("A2UI_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.AgentURL == "" {
		return fmt.Errorf("A2UI_AGENT_URL is required")
	}
	switch c.Transport {
	case "sse", "ws":
	default:
		return fmt.Errorf("A2UI_TRANSPORT must be sse or ws, got %q", c.Transport)
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
