package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDataset writes a dataset as pretty JSON.
func WriteDataset(path string, ds Dataset) error {
	payload, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
