package spec

import (
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(strings.Join([]string{
		"version: 1",
		"output_dir: out",
		"seed: 42",
		"target_total: 5",
		"stem_length:",
		"  min: 150",
		"  max: 2000",
		"categories:",
		"  - name: infectious",
		"    weight: 1.5",
		"    keywords: [fever, sepsis]",
		"quotas:",
		"  infectious: 5",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Seed != 42 || cfg.TargetTotal != 5 {
		t.Fatalf("got seed %d target %d", cfg.Seed, cfg.TargetTotal)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Weight != 1.5 {
		t.Fatalf("categories not parsed: %+v", cfg.Categories)
	}
	if cfg.Quotas["infectious"] != 5 {
		t.Fatalf("quotas not parsed: %+v", cfg.Quotas)
	}
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\nbogus: true\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("got %v, want multiple-documents error", err)
	}
}
