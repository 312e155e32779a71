// Package report renders run results as a standalone HTML page and
// loads stored results back for re-rendering.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"vigprep/internal/pipeline"
)

// ResultsPage returns the report page component for one run.
func ResultsPage(results pipeline.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>vigprep run %s</title>\n", templ.EscapeString(results.RunID))
		b.WriteString("<style>body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse;margin:1rem 0}td,th{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}.pass{color:#197019}.fail{color:#b00020}</style>\n")
		b.WriteString("</head>\n<body>\n")

		fmt.Fprintf(&b, "<h1>Run %s</h1>\n", templ.EscapeString(results.RunID))
		verdict := "<p class=\"pass\">PASSED</p>\n"
		if !results.Passed {
			verdict = "<p class=\"fail\">FAILED</p>\n"
		}
		b.WriteString(verdict)

		b.WriteString("<table>\n")
		writeRow(&b, "Corpus", results.CorpusPath)
		writeRow(&b, "Seed", fmt.Sprintf("%d", results.Seed))
		writeRow(&b, "Target", fmt.Sprintf("%d", results.Target))
		writeRow(&b, "Selected", fmt.Sprintf("%d", results.Selected))
		writeRow(&b, "Started", results.StartedAt.Format("2006-01-02 15:04:05 MST"))
		writeRow(&b, "Finished", results.FinishedAt.Format("2006-01-02 15:04:05 MST"))
		b.WriteString("</table>\n")

		b.WriteString("<h2>Filter funnel</h2>\n<table>\n")
		b.WriteString("<tr><th>Predicate</th><th>Survivors</th></tr>\n")
		writeCount(&b, "total", results.Filter.Total)
		writeCount(&b, "incomplete (skipped)", results.Filter.Incomplete)
		writeCount(&b, "clinical vignette", results.Filter.ClinicalVignettes)
		writeCount(&b, "demographic neutral", results.Filter.DemographicNeutral)
		writeCount(&b, "has 4 options", results.Filter.HasOptions)
		writeCount(&b, "reasonable length", results.Filter.ReasonableLength)
		writeCount(&b, "passed all", results.Filter.Passed)
		b.WriteString("</table>\n")

		b.WriteString("<h2>Selection by category</h2>\n<table>\n")
		b.WriteString("<tr><th>Category</th><th>Selected</th></tr>\n")
		for _, category := range sortedKeys(results.Counts) {
			writeCount(&b, category, results.Counts[category])
		}
		b.WriteString("</table>\n")

		if len(results.Shortfalls) > 0 {
			b.WriteString("<h2>Shortfalls</h2>\n<table>\n")
			b.WriteString("<tr><th>Category</th><th>Target</th><th>Available</th></tr>\n")
			for _, shortfall := range results.Shortfalls {
				fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d</td></tr>\n",
					templ.EscapeString(shortfall.Category), shortfall.Target, shortfall.Available)
			}
			b.WriteString("</table>\n")
		}

		b.WriteString("<h2>Quality checks</h2>\n<table>\n")
		b.WriteString("<tr><th>Check</th><th>Verdict</th><th>Details</th></tr>\n")
		for _, check := range results.Quality.Checks {
			verdict := "<span class=\"pass\">PASS</span>"
			if !check.Passed {
				verdict = "<span class=\"fail\">FAIL</span>"
			}
			details := make([]string, 0, len(check.Details))
			for _, detail := range check.Details {
				details = append(details, templ.EscapeString(detail))
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				templ.EscapeString(check.Name), verdict, strings.Join(details, "<br>"))
		}
		b.WriteString("</table>\n")

		b.WriteString("</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<tr><th>%s</th><td>%s</td></tr>\n",
		templ.EscapeString(label), templ.EscapeString(value))
}

func writeCount(b *strings.Builder, label string, count int) {
	fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td></tr>\n", templ.EscapeString(label), count)
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
