package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"vigprep/internal/corpus"
	"vigprep/internal/quality"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Store wraps a DuckDB connection holding the run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the DuckDB file at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("duckdb: path is required")
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection, mainly for queries in tests and
// the report server.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the connection.
func (s *Store) Close() error { return s.db.Close() }

// RunInput describes a pipeline run to record before its stages execute.
type RunInput struct {
	RunID      string
	Seed       int64
	Target     int
	CorpusPath string
}

// BeginRun records the run row at start time.
func (s *Store) BeginRun(ctx context.Context, input RunInput) error {
	if input.RunID == "" {
		return errors.New("duckdb: run id is required")
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, seed, target, corpus_path, started_at)
		 VALUES (?, ?, ?, ?, now())`,
		input.RunID,
		input.Seed,
		input.Target,
		input.CorpusPath,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun stamps the run with its completion time and verdict.
func (s *Store) FinishRun(ctx context.Context, runID string, passed bool) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET finished_at = now(), passed = ? WHERE run_id = ?`,
		passed,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("finish run: unknown run %q", runID)
	}
	return nil
}

// IngestDataset stores a stage's records under a content-addressed
// dataset row. Re-ingesting identical records for the same stage is a
// no-op that returns the existing dataset id.
func (s *Store) IngestDataset(ctx context.Context, runID, stage string, records []corpus.Record) (string, error) {
	if stage == "" {
		return "", errors.New("duckdb: stage is required")
	}
	key, err := FingerprintJSON(map[string]interface{}{
		"stage":   stage,
		"records": records,
	})
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	inserted, err := s.db.ExecContext(
		ctx,
		`INSERT INTO datasets (dataset_id, dataset_key, run_id, stage, record_count, created_at)
		 VALUES (?, ?, ?, ?, ?, now())
		 ON CONFLICT (dataset_key) DO NOTHING`,
		id,
		key,
		nullableString(runID),
		stage,
		len(records),
	)
	if err != nil {
		return "", fmt.Errorf("insert dataset: %w", err)
	}
	datasetID, err := lookupID(ctx, s.db, "datasets", "dataset_id", "dataset_key", key)
	if err != nil {
		return "", fmt.Errorf("lookup dataset id: %w", err)
	}
	if affected, err := inserted.RowsAffected(); err != nil || affected == 0 {
		return datasetID, nil
	}

	for position, record := range records {
		payload, err := CanonicalJSON(record)
		if err != nil {
			return "", fmt.Errorf("encode record %s: %w", record.ID, err)
		}
		if _, err := s.db.ExecContext(
			ctx,
			`INSERT INTO records (dataset_id, record_id, position, category, stem_length, payload)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			datasetID,
			record.ID,
			position,
			nullableString(record.Category),
			utf8.RuneCountInString(record.Stem),
			string(payload),
		); err != nil {
			return "", fmt.Errorf("insert record %s: %w", record.ID, err)
		}
	}
	return datasetID, nil
}

// RecordChecks stores the quality verdicts for a run.
func (s *Store) RecordChecks(ctx context.Context, runID string, checks []quality.Check) error {
	for _, check := range checks {
		details, err := CanonicalJSON(check.Details)
		if err != nil {
			return fmt.Errorf("encode check %s: %w", check.Name, err)
		}
		if _, err := s.db.ExecContext(
			ctx,
			`INSERT INTO checks (run_id, name, passed, details)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (run_id, name) DO UPDATE SET passed = excluded.passed, details = excluded.details`,
			runID,
			check.Name,
			check.Passed,
			string(details),
		); err != nil {
			return fmt.Errorf("insert check %s: %w", check.Name, err)
		}
	}
	return nil
}

// DatasetCount returns the number of records stored under a dataset.
func (s *Store) DatasetCount(ctx context.Context, datasetID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT count(*) FROM records WHERE dataset_id = ?`,
		datasetID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// nullableString converts an optional string into a SQL argument.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
