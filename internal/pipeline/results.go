package pipeline

import (
	"time"

	"vigprep/internal/filter"
	"vigprep/internal/quality"
	"vigprep/internal/sample"
)

type Results struct {
	RunID      string             `json:"run_id"`
	CorpusPath string             `json:"corpus_path"`
	Seed       int64              `json:"seed"`
	Target     int                `json:"target"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Filter     filter.Stats       `json:"filter"`
	Counts     map[string]int     `json:"counts"`
	Shortfalls []sample.Shortfall `json:"shortfalls,omitempty"`
	Selected   int                `json:"selected"`
	Quality    quality.Report     `json:"quality"`
	Passed     bool               `json:"passed"`
}
