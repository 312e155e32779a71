package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vigprep/internal/filter"
	"vigprep/internal/pipeline"
	"vigprep/internal/quality"
)

func sampleResults(runID string, passed bool) pipeline.Results {
	return pipeline.Results{
		RunID:      runID,
		CorpusPath: "data/raw/corpus.json",
		Seed:       42,
		Target:     3,
		StartedAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 3, 14, 9, 0, 2, 0, time.UTC),
		Filter:     filter.Stats{Total: 6, ClinicalVignettes: 5, Passed: 4},
		Counts:     map[string]int{"infectious": 1, "diabetes": 1, "other": 1},
		Selected:   3,
		Quality: quality.Report{
			Total: 3,
			Checks: []quality.Check{
				{Name: "completeness", Passed: true},
				{Name: "diversity", Passed: passed, Details: []string{"MED-0002: duplicate stem of MED-0001"}},
			},
			Passed: passed,
		},
		Passed: passed,
	}
}

func writeRun(t *testing.T, outputDir, runID string, results pipeline.Results) string {
	t.Helper()
	runDir := filepath.Join(outputDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		t.Fatalf("mkdir run dir: %v", err)
	}
	payload, err := json.Marshal(results)
	if err != nil {
		t.Fatalf("marshal results: %v", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "results.json"), payload, 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return runDir
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(context.Background(), sampleResults("20260314T090000Z-abc123", true))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{
		"<title>vigprep run 20260314T090000Z-abc123</title>",
		"PASSED",
		"Filter funnel",
		"infectious",
		"completeness",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderHTMLFailedRun(t *testing.T) {
	html, err := RenderHTML(context.Background(), sampleResults("run-1", false))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "FAILED") {
		t.Error("report does not show failed verdict")
	}
	if !strings.Contains(html, "duplicate stem") {
		t.Error("report does not show check details")
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	results := sampleResults("<script>alert(1)</script>", true)

	html, err := RenderHTML(context.Background(), results)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("run id not escaped")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	if err := WriteFile(context.Background(), path, sampleResults("run-1", true)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "<!doctype html>") {
		t.Fatal("report file is not an HTML document")
	}
}

func TestLoadResultsRoundTrip(t *testing.T) {
	outputDir := t.TempDir()
	want := sampleResults("run-1", true)
	runDir := writeRun(t, outputDir, "run-1", want)

	got, err := LoadResults(filepath.Join(runDir, "results.json"))
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if got.RunID != want.RunID || got.Selected != want.Selected || got.Passed != want.Passed {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveRunByID(t *testing.T) {
	outputDir := t.TempDir()
	writeRun(t, outputDir, "20260314T090000Z-aaa", sampleResults("20260314T090000Z-aaa", true))

	results, runDir, err := ResolveRun(outputDir, "20260314T090000Z-aaa")
	if err != nil {
		t.Fatalf("ResolveRun: %v", err)
	}
	if results.RunID != "20260314T090000Z-aaa" {
		t.Errorf("run id: got %q", results.RunID)
	}
	if runDir != filepath.Join(outputDir, "20260314T090000Z-aaa") {
		t.Errorf("run dir: got %q", runDir)
	}
}

func TestResolveRunByPath(t *testing.T) {
	outputDir := t.TempDir()
	runDir := writeRun(t, outputDir, "run-1", sampleResults("run-1", true))

	results, got, err := ResolveRun("elsewhere", runDir)
	if err != nil {
		t.Fatalf("ResolveRun: %v", err)
	}
	if got != runDir || results.RunID != "run-1" {
		t.Fatalf("got dir %q, run %q", got, results.RunID)
	}
}

func TestResolveRunLatest(t *testing.T) {
	outputDir := t.TempDir()
	writeRun(t, outputDir, "20260313T090000Z-old", sampleResults("20260313T090000Z-old", true))
	writeRun(t, outputDir, "20260314T090000Z-new", sampleResults("20260314T090000Z-new", true))
	// Directories without results.json are not runs.
	if err := os.MkdirAll(filepath.Join(outputDir, "20260315T090000Z-empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	results, _, err := ResolveRun(outputDir, "")
	if err != nil {
		t.Fatalf("ResolveRun: %v", err)
	}
	if results.RunID != "20260314T090000Z-new" {
		t.Fatalf("got %q, want the newest run", results.RunID)
	}
}

func TestResolveRunNotFound(t *testing.T) {
	outputDir := t.TempDir()
	if _, _, err := ResolveRun(outputDir, "nope"); err == nil {
		t.Error("expected error for unknown run ref")
	}
	if _, _, err := ResolveRun(outputDir, ""); err == nil {
		t.Error("expected error for empty output dir")
	}
}
