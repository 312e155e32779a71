package config

import (
	"strings"
	"testing"
)

func TestScaffoldWritesLoadableConfig(t *testing.T) {
	root := t.TempDir()

	path, err := Scaffold(root)
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if path != ConfigPath(root) {
		t.Fatalf("got %q, want %q", path, ConfigPath(root))
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("seed: got %d, want %d", cfg.Seed, DefaultSeed)
	}
	if cfg.TargetTotal != DefaultTargetTotal {
		t.Errorf("target_total: got %d, want %d", cfg.TargetTotal, DefaultTargetTotal)
	}
}

func TestScaffoldRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	if _, err := Scaffold(root); err != nil {
		t.Fatalf("first scaffold: %v", err)
	}

	_, err := Scaffold(root)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("got %v, want already-exists error", err)
	}
}
