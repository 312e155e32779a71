package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StoreFileName is the DuckDB run store, shared across runs under the
// output root.
const StoreFileName = "vigprep.duckdb"

// OutputPaths describes filesystem locations for run outputs.
type OutputPaths struct {
	Root  string
	RunID string
}

// NewOutputPaths validates and constructs output paths metadata.
func NewOutputPaths(root, runID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(runID) == "" {
		return OutputPaths{}, fmt.Errorf("run ID is empty")
	}
	return OutputPaths{Root: root, RunID: runID}, nil
}

// RunDir returns the directory for a specific run.
func (o OutputPaths) RunDir() string {
	return filepath.Join(o.Root, o.RunID)
}

// FilteredPath returns the path to the filtered dataset.
func (o OutputPaths) FilteredPath() string {
	return filepath.Join(o.RunDir(), "filtered.json")
}

// SelectedPath returns the path to the selected dataset.
func (o OutputPaths) SelectedPath() string {
	return filepath.Join(o.RunDir(), "selected.json")
}

// ResultsPath returns the path to results.json.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.RunDir(), "results.json")
}

// ReportPath returns the path to the HTML report.
func (o OutputPaths) ReportPath() string {
	return filepath.Join(o.RunDir(), "report.html")
}

// StorePath returns the DuckDB store path under an output root.
func StorePath(root string) string {
	return filepath.Join(root, StoreFileName)
}
