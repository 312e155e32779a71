// Package duckdb persists pipeline runs, stage datasets, and quality
// checks in a local DuckDB file. Datasets are content-addressed: the
// same records under the same stage ingest to the same dataset row.
package duckdb

import (
	"database/sql"
	_ "embed"
	"errors"
)

//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the DDL that defines the run store tables. The
// statements are idempotent so the schema can be reapplied on every
// open.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the run store schema to db.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
