package config

import (
	"fmt"
	"os"

	"vigprep/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, used when no config file
// exists on disk.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
