package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vigprep/internal/pipeline"
	"vigprep/internal/spec"
)

func TestRunCommandPlain(t *testing.T) {
	root, configPath, corpusPath := newProject(t)

	code, out, errOut := runCLI(t, "run",
		"--corpus", corpusPath, "--config", configPath, "--ui", "plain", "--no-store")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q\n%s", code, errOut, out)
	}
	mustContain(t, out, "Run finished: PASSED (3 selected)")
	mustContain(t, out, "completed")
	mustContain(t, out, "Report: ")

	outputDir := filepath.Join(root, "outputs")
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		t.Fatalf("expected one run dir, got %v", entries)
	}
	runDir := filepath.Join(outputDir, entries[0].Name())
	for _, name := range []string{"filtered.json", "selected.json", "results.json", "report.html"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunCommandStoresRun(t *testing.T) {
	root, configPath, corpusPath := newProject(t)

	code, _, errOut := runCLI(t, "run",
		"--corpus", corpusPath, "--config", configPath, "--ui", "plain")
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	storePath := pipeline.StorePath(filepath.Join(root, "outputs"))
	if _, err := os.Stat(storePath); err != nil {
		t.Fatalf("run store not created: %v", err)
	}
}

func TestRunCommandFailure(t *testing.T) {
	_, configPath, corpusPath := newProject(t)
	restore := pipelineRun
	pipelineRun = func(ctx context.Context, cfg spec.Config, params pipeline.RunParams) (pipeline.RunOutput, error) {
		return pipeline.RunOutput{}, errors.New("boom")
	}
	defer func() { pipelineRun = restore }()

	code, _, errOut := runCLI(t, "run",
		"--corpus", corpusPath, "--config", configPath, "--ui", "plain", "--no-store")
	if code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	mustContain(t, errOut, "Run failed: boom")
}

func TestRunCommandQualityFailure(t *testing.T) {
	_, configPath, corpusPath := newProject(t)
	restore := pipelineRun
	pipelineRun = func(ctx context.Context, cfg spec.Config, params pipeline.RunParams) (pipeline.RunOutput, error) {
		return pipeline.RunOutput{
			Results: pipeline.Results{RunID: "run-1", Passed: false},
		}, nil
	}
	defer func() { pipelineRun = restore }()

	code, _, errOut := runCLI(t, "run",
		"--corpus", corpusPath, "--config", configPath, "--ui", "plain", "--no-store")
	if code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	mustContain(t, errOut, "Quality checks failed")
}

func TestRunCommandRejectsBadUIMode(t *testing.T) {
	_, configPath, corpusPath := newProject(t)

	code, _, errOut := runCLI(t, "run",
		"--corpus", corpusPath, "--config", configPath, "--ui", "fancy", "--no-store")
	if code != ExitUsage {
		t.Fatalf("exit %d, want %d", code, ExitUsage)
	}
	mustContain(t, errOut, "invalid ui mode")
}

func TestPlainObserver(t *testing.T) {
	var out bytes.Buffer
	observer := &plainObserver{out: &out}

	observer.OnRunStart("run-1", "corpus.json")
	observer.OnStageStart(pipeline.StageFilter)
	observer.OnStageEnd(pipeline.StageFilter, 4)
	observer.OnRunEnd(pipeline.Results{Passed: true, Selected: 3})

	got := out.String()
	mustContain(t, got, "Run run-1 on corpus.json")
	mustContain(t, got, "filter...")
	mustContain(t, got, "filter done (4)")
	mustContain(t, got, "Run finished: PASSED (3 selected)")
}
