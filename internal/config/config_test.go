package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "3s"

data:
  roots_file: "/srv/sarf/roots.txt"

engine:
  cache_size: 128

log:
  level: "debug"
  format: "text"
  trace: "info"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(PathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server address = %s:%d, want 127.0.0.1:9090", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Data.RootsFile != "/srv/sarf/roots.txt" || cfg.Data.PatternsFile != "data/patterns.txt" {
		t.Errorf("data config = %+v", cfg.Data)
	}
	if cfg.Engine.CacheSize != 128 {
		t.Errorf("CacheSize = %d, want 128", cfg.Engine.CacheSize)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" || cfg.Log.Trace != "info" {
		t.Errorf("log config = %+v", cfg.Log)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(PathEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server address = %s:%d, want defaults", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Data.RootsFile != "data/roots.txt" || cfg.Data.PatternsFile != "data/patterns.txt" {
		t.Errorf("data defaults = %+v", cfg.Data)
	}
	if cfg.Engine.CacheSize != 4096 {
		t.Errorf("CacheSize = %d, want 4096", cfg.Engine.CacheSize)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" || cfg.Log.Trace != "error" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(PathEnv, path)
	t.Setenv("SARF_SERVER_PORT", "7070")
	t.Setenv("SARF_CACHE_SIZE", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Engine.CacheSize != -1 {
		t.Errorf("CacheSize = %d, want -1", cfg.Engine.CacheSize)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			Log:    LogConfig{Level: "info", Format: "json", Trace: "error"},
		}
	}
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{name: "valid", modify: func(*Config) {}, ok: true},
		{name: "port zero", modify: func(c *Config) { c.Server.Port = 0 }},
		{name: "port too large", modify: func(c *Config) { c.Server.Port = 70000 }},
		{name: "cache disabled", modify: func(c *Config) { c.Engine.CacheSize = -1 }, ok: true},
		{name: "negative cache", modify: func(c *Config) { c.Engine.CacheSize = -2 }},
		{name: "bad level", modify: func(c *Config) { c.Log.Level = "verbose" }},
		{name: "bad format", modify: func(c *Config) { c.Log.Format = "xml" }},
		{name: "bad trace", modify: func(c *Config) { c.Log.Trace = "warn" }},
		{name: "upper case level", modify: func(c *Config) { c.Log.Level = "DEBUG" }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	if opts := (EngineConfig{CacheSize: -1}).Options("x"); opts.CacheSize != -1 || opts.Identifier != "x" {
		t.Errorf("disabled cache options = %+v", opts)
	}
	if opts := (EngineConfig{CacheSize: 64}).Options(""); opts.CacheSize != 64 {
		t.Errorf("cache options = %+v", opts)
	}
}
