package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vigprep/internal/corpus"
)

// WriteRunOutputs writes the run's datasets and results under
// <outputDir>/<run-id>/. The HTML report is rendered separately.
func WriteRunOutputs(output RunOutput, outputDir string) (OutputPaths, error) {
	if outputDir == "" {
		return OutputPaths{}, fmt.Errorf("output directory is required")
	}
	paths, err := NewOutputPaths(outputDir, output.Results.RunID)
	if err != nil {
		return OutputPaths{}, err
	}
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return OutputPaths{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := corpus.WriteDataset(paths.FilteredPath(), corpus.Dataset{Version: 1, Records: output.Filtered}); err != nil {
		return OutputPaths{}, err
	}
	if err := corpus.WriteDataset(paths.SelectedPath(), corpus.Dataset{Version: 1, Records: output.Selected}); err != nil {
		return OutputPaths{}, err
	}
	if err := writeJSON(paths.ResultsPath(), output.Results); err != nil {
		return OutputPaths{}, err
	}
	return paths, nil
}

// writeJSON writes a Results payload as pretty JSON.
func writeJSON(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
