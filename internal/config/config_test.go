package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"WCAGAUDIT_MODEL", "WCAGAUDIT_LOG_LEVEL", "WCAGAUDIT_DB", "WCAGAUDIT_REDIS_URL", "PORT"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wcagaudit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.Model != def.Model || cfg.MaxTokens != 8192 || cfg.MaxInputChars != 60000 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.SessionBackend != "memory" || cfg.Store.Path != "" {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
model: openai:gpt-4o
temperature: 0
max_input_chars: 1000
log_level: debug
server:
  addr: 127.0.0.1:9000
  session_ttl: 2h
store:
  path: audits.db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "openai:gpt-4o" || cfg.Temperature != 0 || cfg.MaxInputChars != 1000 || cfg.LogLevel != "debug" {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.SessionTTL != 2*time.Hour || cfg.Store.Path != "audits.db" {
		t.Errorf("nested yaml not applied: %+v", cfg)
	}
	if cfg.MaxTokens != 8192 {
		t.Errorf("unset key should keep default, got %d", cfg.MaxTokens)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WCAGAUDIT_MODEL", "anthropic:claude-sonnet-4-6")
	t.Setenv("WCAGAUDIT_LOG_LEVEL", "warn")
	t.Setenv("WCAGAUDIT_DB", "/tmp/a.db")
	t.Setenv("WCAGAUDIT_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PORT", "3000")

	cfg, err := Load(writeFile(t, "model: openai:gpt-4o\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "anthropic:claude-sonnet-4-6" {
		t.Errorf("env should win over yaml, got %q", cfg.Model)
	}
	if cfg.LogLevel != "warn" || cfg.Store.Path != "/tmp/a.db" || cfg.Server.Addr != ":3000" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Server.SessionBackend != "redis" || cfg.Server.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("redis url should select the redis backend: %+v", cfg.Server)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	if _, err := Load(writeFile(t, "model: [unclosed\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"temperature", func(c *Config) { c.Temperature = 3 }, "temperature"},
		{"max tokens", func(c *Config) { c.MaxTokens = 0 }, "max_tokens"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"backend", func(c *Config) { c.Server.SessionBackend = "etcd" }, "session_backend"},
		{"redis without url", func(c *Config) { c.Server.SessionBackend = "redis" }, "redis_url"},
		{"empty model", func(c *Config) { c.Model = "" }, "model"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, c.want)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
