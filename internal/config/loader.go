package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the path of the YAML file.
const PathEnv = "SARF_CONFIG"

// DefaultPath is tried when PathEnv is unset.
const DefaultPath = "config.yaml"

// Load builds the configuration of the sarf commands. SARF_* variables win
// over the YAML file, which wins over the built-in defaults. A missing
// DefaultPath is fine; a missing file named in PathEnv is an error.
func Load() (*Config, error) {
	var cfg Config
	var err error
	if path, named := os.LookupEnv(PathEnv); named && path != "" {
		err = readFile(path, &cfg)
	} else if _, statErr := os.Stat(DefaultPath); statErr == nil {
		err = readFile(DefaultPath, &cfg)
	} else if err = cleanenv.ReadEnv(&cfg); err != nil {
		err = fmt.Errorf("config: environment: %w", err)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
