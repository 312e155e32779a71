package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vigprep/internal/pipeline"
)

// LoadResults reads a results.json file back into memory.
func LoadResults(path string) (pipeline.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Results{}, err
	}
	var results pipeline.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return pipeline.Results{}, err
	}
	return results, nil
}

// ResolveRun locates a run directory under outputDir. ref may be a run
// ID, a run directory path, or empty for the latest run.
func ResolveRun(outputDir, ref string) (pipeline.Results, string, error) {
	ref = strings.TrimSpace(ref)
	if ref != "" {
		if info, err := os.Stat(ref); err == nil && info.IsDir() {
			results, err := LoadResults(filepath.Join(ref, "results.json"))
			return results, ref, err
		}
		runDir := filepath.Join(outputDir, ref)
		if info, err := os.Stat(runDir); err == nil && info.IsDir() {
			results, err := LoadResults(filepath.Join(runDir, "results.json"))
			return results, runDir, err
		}
		return pipeline.Results{}, "", fmt.Errorf("run %s not found", ref)
	}
	runDir, err := findLatestRunDir(outputDir)
	if err != nil {
		return pipeline.Results{}, "", err
	}
	results, err := LoadResults(filepath.Join(runDir, "results.json"))
	return results, runDir, err
}

// findLatestRunDir picks the lexicographically last run directory; run
// IDs start with a UTC timestamp, so that is also the newest.
func findLatestRunDir(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", err
	}
	runIDs := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(outputDir, entry.Name(), "results.json")); err != nil {
			continue
		}
		runIDs = append(runIDs, entry.Name())
	}
	if len(runIDs) == 0 {
		return "", fmt.Errorf("no runs found in %s", outputDir)
	}
	sort.Strings(runIDs)
	return filepath.Join(outputDir, runIDs[len(runIDs)-1]), nil
}
