// Package config handles application configuration from environment
// variables and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
//
// Values are resolved in order: defaults, then the TOML file named by
// CONFIG_FILE (if set), then environment variables.
type Config struct {
	// Server settings
	Port int    `toml:"port"` // HTTP port to listen on
	Env  string `toml:"env"`  // development, staging, production

	// Database
	DatabasePath string `toml:"database_path"` // Path to SQLite file

	// Authentication
	APIKey string `toml:"api_key"` // API key for admin endpoints

	// Logging
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // json, text

	// Limits
	RangeLimitDays  int `toml:"range_limit_days"`  // max days per range conversion
	ImportLimitDays int `toml:"import_limit_days"` // max days per day-table import
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Port:            8080,
		Env:             EnvDevelopment,
		DatabasePath:    "./data/calendar.db",
		LogLevel:        "info",
		LogFormat:       "text",
		RangeLimitDays:  90,
		ImportLimitDays: 36600,
	}
}

// Load reads configuration for the HTTP server.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	return load(true)
}

// LoadLocal reads configuration for commands that work on the local day
// table without serving HTTP. API_KEY is not required.
func LoadLocal() (*Config, error) {
	return load(false)
}

func load(serving bool) (*Config, error) {
	// No-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var errs []error
	cfg.Port = getEnvInt("PORT", cfg.Port, &errs)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.APIKey = getEnv("API_KEY", cfg.APIKey)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.RangeLimitDays = getEnvInt("RANGE_LIMIT_DAYS", cfg.RangeLimitDays, &errs)
	cfg.ImportLimitDays = getEnvInt("IMPORT_LIMIT_DAYS", cfg.ImportLimitDays, &errs)

	errs = append(errs, cfg.check(serving)...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
// Every problem is reported, not just the first.
func (c *Config) Validate() error {
	return errors.Join(c.check(true)...)
}

// check returns every problem with c. The API key rule applies only when
// serving.
func (c *Config) check(serving bool) []error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// Admin routes are open in development without a key.
	if serving && c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.RangeLimitDays < 1 {
		errs = append(errs, fmt.Errorf("RANGE_LIMIT_DAYS must be positive, got %d", c.RangeLimitDays))
	}
	if c.ImportLimitDays < 1 {
		errs = append(errs, fmt.Errorf("IMPORT_LIMIT_DAYS must be positive, got %d", c.ImportLimitDays))
	}

	return errs
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default
// fallback. A value that does not parse is reported into errs.
func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultValue
	}
	return intVal
}
