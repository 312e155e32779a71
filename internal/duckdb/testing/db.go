// Package duckdbtesting opens throwaway DuckDB databases for tests.
package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"vigprep/internal/duckdb"
	"vigprep/internal/testutil"

	_ "github.com/duckdb/duckdb-go/v2"
)

const pingTimeout = 2 * time.Second

// Open opens a DuckDB database at dsn, verifies it responds, and
// closes it when the test ends.
func Open(t testing.TB, dsn string) *sql.DB {
	t.Helper()
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	if err := conn.PingContext(testutil.Context(t, pingTimeout)); err != nil {
		t.Fatalf("ping duckdb: %v", err)
	}
	return conn
}

// ApplySchema creates the run store tables on db.
func ApplySchema(t testing.TB, db *sql.DB) {
	t.Helper()
	if _, err := db.ExecContext(testutil.Context(t, pingTimeout), duckdb.SchemaDDL()); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
}
