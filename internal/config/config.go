// Package config loads wcagaudit settings from an optional YAML file, an
// optional .env file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "wcagaudit.yaml"

type Config struct {
	Model         string  `yaml:"model"`
	Temperature   float64 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	MaxInputChars int     `yaml:"max_input_chars"`
	LogLevel      string  `yaml:"log_level"`
	Server        struct {
		Addr           string        `yaml:"addr"`
		MaxBodyBytes   int64         `yaml:"max_body_bytes"`
		SessionBackend string        `yaml:"session_backend"` // memory or redis
		RedisURL       string        `yaml:"redis_url"`
		SessionTTL     time.Duration `yaml:"session_ttl"`
	} `yaml:"server"`
	Store struct {
		// Path of the SQLite archive; empty disables archiving.
		Path string `yaml:"path"`
	} `yaml:"store"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{
		Model:         "gemini:gemini-2.5-flash",
		Temperature:   0.2,
		MaxTokens:     8192,
		MaxInputChars: 60000,
		LogLevel:      "info",
	}
	cfg.Server.Addr = ":8080"
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Server.SessionBackend = "memory"
	cfg.Server.SessionTTL = 24 * time.Hour
	return cfg
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	// 3. Override with Environment Variables if present
	if v := os.Getenv("WCAGAUDIT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WCAGAUDIT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WCAGAUDIT_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("WCAGAUDIT_REDIS_URL"); v != "" {
		cfg.Server.RedisURL = v
		cfg.Server.SessionBackend = "redis"
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if any value is out of range.
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0.0 and 2.0, got %g", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0, got %d", c.MaxTokens)
	}
	if c.MaxInputChars < 0 {
		return fmt.Errorf("max_input_chars must be >= 0, got %d", c.MaxInputChars)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.Server.SessionBackend {
	case "memory":
	case "redis":
		if c.Server.RedisURL == "" {
			return errors.New("server.redis_url is required for the redis session backend")
		}
	default:
		return fmt.Errorf("server.session_backend must be memory or redis, got %q", c.Server.SessionBackend)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
