package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Engine.CacheSize < -1 {
		return fmt.Errorf("engine.cache_size must be -1 or positive (got %d)", c.Engine.CacheSize)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !oneOf(l.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	if !oneOf(l.Format, "json", "text") {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	if !oneOf(l.Trace, "debug", "info", "error") {
		return fmt.Errorf("trace must be one of debug, info, error (got %q)", l.Trace)
	}
	return nil
}

func oneOf(s string, allowed ...string) bool {
	return slices.Contains(allowed, strings.ToLower(strings.TrimSpace(s)))
}
