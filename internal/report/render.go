package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"vigprep/internal/pipeline"
)

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, results pipeline.Results) (string, error) {
	var builder strings.Builder
	if err := ResultsPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteFile renders the report page to a file.
func WriteFile(ctx context.Context, path string, results pipeline.Results) error {
	html, err := RenderHTML(ctx, results)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
