// Package reportserver hosts run reports and the DuckDB store over HTTP.
package reportserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const shutdownGrace = 5 * time.Second

// Config captures the settings for serving run reports.
type Config struct {
	Addr      string
	OutputDir string
	DBPath    string
}

// Serve starts an HTTP server that hosts the report pages and the run
// store. It blocks until the context is cancelled or the server fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{Addr: cfg.Addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return ignoreServerClosed(err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ignoreServerClosed(<-errCh)
	}
}

func ignoreServerClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
