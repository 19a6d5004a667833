package config

import (
	"time"

	"github.com/npillmayer/sarf"
)

// Config is the configuration shared by the sarf commands.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SARF_SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SARF_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SARF_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SARF_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SARF_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SARF_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DataConfig names the line files loaded at startup.
type DataConfig struct {
	RootsFile    string `yaml:"roots_file"    env:"SARF_ROOTS_FILE"    env-default:"data/roots.txt"`
	PatternsFile string `yaml:"patterns_file" env:"SARF_PATTERNS_FILE" env-default:"data/patterns.txt"`
}

// EngineConfig holds settings of the derivation engine.
type EngineConfig struct {
	CacheSize int `yaml:"cache_size" env:"SARF_CACHE_SIZE" env-default:"4096"` // -1 disables the cache
}

// LogConfig holds logging settings. Trace is the level of the engine's
// internal tracing: error, info or debug.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SARF_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SARF_LOG_FORMAT" env-default:"json"`
	Trace  string `yaml:"trace"  env:"SARF_TRACE"      env-default:"error"`
}

// Options converts the engine settings to engine options.
func (c EngineConfig) Options(identifier string) sarf.Options {
	return sarf.Options{Identifier: identifier, CacheSize: c.CacheSize}
}
