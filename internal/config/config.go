package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds all service configuration.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	RateTable RateTableConfig
}

type ServerConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxRequestBodySize int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// RateTableConfig points at an optional YAML override of the built-in
// rate table. An empty path keeps the defaults.
type RateTableConfig struct {
	Path string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; variables already set in
// the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	readTimeout, err := cast.ToDurationE(getEnv("READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := cast.ToDurationE(getEnv("WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("WRITE_TIMEOUT: %w", err)
	}
	maxBody, err := cast.ToIntE(getEnv("MAX_REQUEST_BODY_SIZE", "1048576"))
	if err != nil {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			MaxRequestBodySize: maxBody,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RateTable: RateTableConfig{
			Path: getEnv("RATE_TABLE_PATH", ""),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	if c.Server.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be positive")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT %q must be json or console", c.Logging.Format)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
