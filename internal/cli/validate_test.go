package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateConfigOK(t *testing.T) {
	_, configPath, _ := newProject(t)

	code, out, errOut := runCLI(t, "validate", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	mustContain(t, out, "Config OK")
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	// Quota sum (5) disagrees with target_total.
	broken := `version: 1
target_total: 10
categories:
  - name: infectious
    weight: 1.5
    keywords: [fever]
quotas:
  infectious: 4
  other: 1
`
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, _, errOut := runCLI(t, "validate", "--config", path)
	if code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	mustContain(t, errOut, "Validation failed")
	mustContain(t, errOut, "quotas")
}

func TestValidateDataset(t *testing.T) {
	_, configPath, _ := newProject(t)
	datasetPath := filepath.Join(t.TempDir(), "dataset.json")
	dataset := `{
  "version": 1,
  "records": [
    {"id": "MED-0001", "question": "Q?", "options": ["a", "b", "c", "d"], "answer_idx": 0}
  ]
}`
	if err := os.WriteFile(datasetPath, []byte(dataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	code, out, errOut := runCLI(t, "validate", "--config", configPath, "--dataset", datasetPath)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	mustContain(t, out, "Config OK")
	mustContain(t, out, "Dataset OK")
}

func TestValidateRejectsBrokenDataset(t *testing.T) {
	_, configPath, _ := newProject(t)
	datasetPath := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(datasetPath, []byte(`{"records": "nope"}`), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	code, _, errOut := runCLI(t, "validate", "--config", configPath, "--dataset", datasetPath)
	if code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	mustContain(t, errOut, "Dataset validation failed")
}

func TestValidateMissingConfigFile(t *testing.T) {
	code, _, errOut := runCLI(t, "validate", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	if code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	mustContain(t, errOut, "Validation failed")
}
