// Package live renders pipeline progress as a Bubble Tea console UI.
package live

import "vigprep/internal/pipeline"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventStageStart signals the start of a stage.
	EventStageStart
	// EventStageEnd signals stage completion.
	EventStageEnd
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	RunID   string
	Corpus  string
	Stage   pipeline.Stage
	Count   int
	Results pipeline.Results
}
