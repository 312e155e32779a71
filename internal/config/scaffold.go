package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed scaffold.yml
var scaffoldYAML []byte

// Scaffold writes a commented starter config under root. It refuses to
// overwrite an existing file so a re-run of init cannot clobber edits.
func Scaffold(root string) (string, error) {
	dir := ConfigDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := os.WriteFile(path, scaffoldYAML, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
