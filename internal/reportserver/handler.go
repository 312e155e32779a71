package reportserver

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"vigprep/internal/report"
)

// NewHandler builds the HTTP handler for the report pages and the
// DuckDB file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New("reportserver: output dir is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveRun(cfg.OutputDir))
	if cfg.DBPath != "" {
		mux.Handle("/data/vigprep.duckdb", serveDatabase(cfg.DBPath))
	}
	return mux, nil
}

// serveRun renders the report page for a run. "/" serves the latest
// run; "/runs/<id>" serves a specific one.
func serveRun(outputDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ref := ""
		if rest, ok := trimRunPrefix(r.URL.Path); ok {
			ref = rest
		} else if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		results, _, err := report.ResolveRun(outputDir, ref)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		templ.Handler(report.ResultsPage(results)).ServeHTTP(w, r)
	})
}

func trimRunPrefix(path string) (string, bool) {
	const prefix = "/runs/"
	if len(path) > len(prefix) && path[:len(prefix)] == prefix {
		return path[len(prefix):], true
	}
	return "", false
}

// serveDatabase serves the DuckDB file from disk for browser-side
// processing.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
