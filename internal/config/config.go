// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/elamnapov/rfq-parser-app/internal/validation"
)

// Config holds application configuration for the RFQ validation core.
type Config struct {
	StrictMode  bool    // flag missing required RFQ fields
	MinNotional float64 // small-notional warning threshold
	MaxNotional float64 // large-notional warning threshold
	Workers     int     // pipeline worker count
	QueueSize   int     // pipeline inbound queue capacity
	LogLevel    string
}

// Load reads configuration from environment variables, after loading a
// .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StrictMode:  getEnvAsBool("RFQ_STRICT_MODE", false),
		MinNotional: getEnvAsFloat("RFQ_MIN_NOTIONAL", 1_000),
		MaxNotional: getEnvAsFloat("RFQ_MAX_NOTIONAL", 1e12),
		Workers:     getEnvAsInt("RFQ_WORKERS", 4),
		QueueSize:   getEnvAsInt("RFQ_QUEUE_SIZE", 64),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.MinNotional < 0 {
		return fmt.Errorf("RFQ_MIN_NOTIONAL must be non-negative, got %v", c.MinNotional)
	}
	if c.MaxNotional <= c.MinNotional {
		return fmt.Errorf("RFQ_MAX_NOTIONAL (%v) must exceed RFQ_MIN_NOTIONAL (%v)",
			c.MaxNotional, c.MinNotional)
	}
	if c.Workers < 1 {
		return fmt.Errorf("RFQ_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("RFQ_QUEUE_SIZE must be at least 1, got %d", c.QueueSize)
	}
	return nil
}

// Validator constructs a rule-engine validator configured from this
// Config.
func (c *Config) Validator() *validation.Validator {
	return validation.New(
		validation.WithStrictMode(c.StrictMode),
		validation.WithNotionalBounds(c.MinNotional, c.MaxNotional),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
