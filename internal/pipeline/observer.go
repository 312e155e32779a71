package pipeline

// Stage identifies one pipeline phase for observers.
type Stage string

const (
	// StageLoad reads the raw corpus from disk.
	StageLoad Stage = "load"
	// StageFilter applies the vignette predicates.
	StageFilter Stage = "filter"
	// StageClassify assigns disease categories.
	StageClassify Stage = "classify"
	// StageSelect draws the stratified sample.
	StageSelect Stage = "select"
	// StageRedistribute tops the selection up from unused survivors.
	StageRedistribute Stage = "redistribute"
	// StageValidate runs the quality checks.
	StageValidate Stage = "validate"
	// StagePersist ingests the run into the DuckDB store.
	StagePersist Stage = "persist"
)

// Observer receives run lifecycle events for UI or logging.
type Observer interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, corpusPath string)
	// OnStageStart signals the start of a stage.
	OnStageStart(stage Stage)
	// OnStageEnd signals stage completion with the record count it
	// produced (or processed, for stages that emit no records).
	OnStageEnd(stage Stage, count int)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OnRunStart(string, string) {}
func (NopObserver) OnStageStart(Stage)        {}
func (NopObserver) OnStageEnd(Stage, int)     {}
func (NopObserver) OnRunEnd(Results)          {}
