package pipeline

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNewRunIDWithRand(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 15, 0, time.UTC)
	reader := bytes.NewReader([]byte{0xab, 0xcd, 0xef, 0x01, 0x23, 0x45})

	id, err := NewRunIDWithRand(now, reader)
	if err != nil {
		t.Fatalf("NewRunIDWithRand: %v", err)
	}
	if id != "20260314T093015Z-abcdef012345" {
		t.Fatalf("got %q", id)
	}
}

func TestNewRunIDWithRandNilReader(t *testing.T) {
	if _, err := NewRunIDWithRand(time.Now(), nil); err == nil {
		t.Fatal("expected error for nil reader")
	}
}

func TestNewRunIDShape(t *testing.T) {
	id, err := NewRunID()
	if err != nil {
		t.Fatalf("NewRunID: %v", err)
	}
	pattern := regexp.MustCompile(`^\d{8}T\d{6}Z-[0-9a-f]{12}$`)
	if !pattern.MatchString(id) {
		t.Fatalf("id %q does not match expected shape", id)
	}
}

func TestFormatRunIDUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, loc)

	id := FormatRunID(now, "abc")
	if !strings.HasPrefix(id, "20260314T090000Z") {
		t.Fatalf("got %q, want UTC timestamp prefix", id)
	}
}

func TestNewOutputPathsValidation(t *testing.T) {
	if _, err := NewOutputPaths("", "run"); err == nil {
		t.Error("expected error for empty root")
	}
	if _, err := NewOutputPaths("out", " "); err == nil {
		t.Error("expected error for blank run id")
	}
	paths, err := NewOutputPaths("out", "run-1")
	if err != nil {
		t.Fatalf("NewOutputPaths: %v", err)
	}
	if paths.ReportPath() == paths.ResultsPath() {
		t.Fatal("report and results paths collide")
	}
}
