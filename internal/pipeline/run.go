// Package pipeline orchestrates the preparation stages end to end:
// load, filter, classify, select, validate, persist. Stages stay pure;
// the pipeline owns sequencing, observation, and output writing.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"vigprep/internal/classify"
	"vigprep/internal/config"
	"vigprep/internal/corpus"
	"vigprep/internal/duckdb"
	"vigprep/internal/filter"
	"vigprep/internal/quality"
	"vigprep/internal/sample"
	"vigprep/internal/spec"
)

// IDPrefix is the prefix for final dataset record IDs.
const IDPrefix = "MED"

// RunDependencies carries injectable collaborators; zero values fall
// back to production defaults.
type RunDependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// RunParams configures one pipeline run.
type RunParams struct {
	CorpusPath   string // overrides cfg.Corpus when set
	Redistribute bool   // top up quota shortfalls from unused survivors
	Store        *duckdb.Store
	Observer     Observer
	Deps         RunDependencies
}

// RunOutput bundles the results with the datasets each stage produced.
type RunOutput struct {
	Results  Results
	Filtered []corpus.Record
	Selected []corpus.Record
}

// Run executes the full pipeline for one corpus.
func Run(ctx context.Context, cfg spec.Config, params RunParams) (RunOutput, error) {
	observer := params.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return RunOutput{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()

	corpusPath := params.CorpusPath
	if corpusPath == "" {
		corpusPath = cfg.Corpus
	}
	observer.OnRunStart(runID, corpusPath)

	if params.Store != nil {
		if err := params.Store.BeginRun(ctx, duckdb.RunInput{
			RunID:      runID,
			Seed:       cfg.Seed,
			Target:     cfg.TargetTotal,
			CorpusPath: corpusPath,
		}); err != nil {
			return RunOutput{}, err
		}
	}

	observer.OnStageStart(StageLoad)
	raw, err := corpus.LoadRaw(corpusPath)
	if err != nil {
		return RunOutput{}, fmt.Errorf("load corpus: %w", err)
	}
	observer.OnStageEnd(StageLoad, len(raw))

	observer.OnStageStart(StageFilter)
	vignetteFilter, err := filter.New(config.FilterOptions(cfg))
	if err != nil {
		return RunOutput{}, err
	}
	filtered, filterStats, err := vignetteFilter.Apply(raw)
	if err != nil {
		return RunOutput{}, err
	}
	observer.OnStageEnd(StageFilter, len(filtered))

	observer.OnStageStart(StageClassify)
	classifier, err := classify.NewKeyword(config.Categories(cfg))
	if err != nil {
		return RunOutput{}, err
	}
	classified := classifier.Assign(filtered)
	observer.OnStageEnd(StageClassify, len(classified))

	observer.OnStageStart(StageSelect)
	quota := config.Quota(cfg)
	selection, err := sample.Select(classified, quota, cfg.Seed)
	if err != nil {
		return RunOutput{}, err
	}
	observer.OnStageEnd(StageSelect, len(selection.Records))

	if params.Redistribute && len(selection.Shortfalls) > 0 {
		observer.OnStageStart(StageRedistribute)
		selection = sample.Redistribute(classified, selection, cfg.TargetTotal, cfg.Seed)
		observer.OnStageEnd(StageRedistribute, len(selection.Records))
	}
	selected := sample.AssignIDs(selection.Records, IDPrefix)

	observer.OnStageStart(StageValidate)
	report := quality.Evaluate(selected, quality.Params{
		MinStemLength: cfg.StemLength.Min,
		MaxStemLength: cfg.StemLength.Max,
		Quota:         quota,
		Shortfalls:    selection.Shortfalls,
	})
	observer.OnStageEnd(StageValidate, len(report.Checks))

	if params.Store != nil {
		observer.OnStageStart(StagePersist)
		if _, err := params.Store.IngestDataset(ctx, runID, "filtered", classified); err != nil {
			return RunOutput{}, err
		}
		if _, err := params.Store.IngestDataset(ctx, runID, "selected", selected); err != nil {
			return RunOutput{}, err
		}
		if err := params.Store.RecordChecks(ctx, runID, report.Checks); err != nil {
			return RunOutput{}, err
		}
		if err := params.Store.FinishRun(ctx, runID, report.Passed); err != nil {
			return RunOutput{}, err
		}
		observer.OnStageEnd(StagePersist, len(selected))
	}

	results := Results{
		RunID:      runID,
		CorpusPath: corpusPath,
		Seed:       cfg.Seed,
		Target:     cfg.TargetTotal,
		StartedAt:  startedAt,
		FinishedAt: now(),
		Filter:     filterStats,
		Counts:     countCategories(selected),
		Shortfalls: selection.Shortfalls,
		Selected:   len(selected),
		Quality:    report,
		Passed:     report.Passed,
	}
	observer.OnRunEnd(results)
	return RunOutput{Results: results, Filtered: classified, Selected: selected}, nil
}

// ensureRunID uses the provided generator or falls back to NewRunID.
func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}

func countCategories(records []corpus.Record) map[string]int {
	counts := map[string]int{}
	for _, record := range records {
		counts[record.Category]++
	}
	return counts
}
