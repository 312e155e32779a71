package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	ConfigDirName    = ".vigprep"
	ConfigFileName   = "config.yml"
	DefaultOutputDir = "outputs"
)

// ConfigDir returns the .vigprep directory under the project root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the full config file path under the project root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// RootFromConfigPath derives the project root from a config file path.
func RootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath walks from startDir toward the filesystem root and
// returns the first .vigprep/config.yml it finds. An empty startDir
// means the current working directory.
func FindConfigPath(startDir string) (string, error) {
	dir, err := resolveStartDir(startDir)
	if err != nil {
		return "", err
	}
	for {
		path, found, err := probeConfig(dir)
		if err != nil {
			return "", err
		}
		if found {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", filepath.Join(ConfigDirName, ConfigFileName), dir)
		}
		dir = parent
	}
}

func resolveStartDir(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	return abs, nil
}

func probeConfig(dir string) (string, bool, error) {
	configDir := filepath.Join(dir, ConfigDirName)
	configPath := filepath.Join(configDir, ConfigFileName)
	info, err := os.Stat(configPath)
	switch {
	case err == nil:
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %q is a directory", configPath)
		}
		return configPath, true, nil
	case !os.IsNotExist(err):
		return "", false, fmt.Errorf("stat config path %q: %w", configPath, err)
	}
	// A .vigprep dir with no config file is a half-finished init,
	// not a signal to keep searching upward.
	if dirInfo, dirErr := os.Stat(configDir); dirErr == nil && dirInfo.IsDir() {
		return "", false, fmt.Errorf("found %q but %s is missing", configDir, ConfigFileName)
	}
	return "", false, nil
}
