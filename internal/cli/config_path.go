package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"vigprep/internal/config"
	"vigprep/internal/spec"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config file, falling back to the built-in
// defaults when none exists and no explicit path was given.
func loadConfig(configPath string) (spec.Config, string, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) == "" {
			return config.Default(), "", nil
		}
		return spec.Config{}, "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return spec.Config{}, "", err
	}
	return cfg, resolved, nil
}

// resolveOutputDir resolves the configured output dir against the
// config file's root (or CWD when running on defaults).
func resolveOutputDir(cfg spec.Config, configPath string) string {
	if filepath.IsAbs(cfg.OutputDir) || configPath == "" {
		return cfg.OutputDir
	}
	return filepath.Join(config.RootFromConfigPath(configPath), cfg.OutputDir)
}
