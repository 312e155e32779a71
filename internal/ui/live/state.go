package live

import (
	"time"

	"vigprep/internal/pipeline"
)

// Stage statuses shown in the table.
const (
	statusPending = "pending"
	statusRunning = "running"
	statusDone    = "done"
)

// StageRow holds UI state for a single pipeline stage.
type StageRow struct {
	Stage      pipeline.Stage
	Status     string
	Count      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// State captures the live UI state for a pipeline run.
type State struct {
	RunID     string
	Corpus    string
	StartedAt time.Time
	Rows      []StageRow
	LastEvent string
	Finished  bool
	Passed    bool
}

// apply folds one event into the state.
func (s State) apply(event Event, now time.Time) State {
	switch event.Kind {
	case EventRunStart:
		s.RunID = event.RunID
		s.Corpus = event.Corpus
		if s.StartedAt.IsZero() {
			s.StartedAt = now
		}
	case EventStageStart:
		s.Rows = append(s.Rows, StageRow{
			Stage:     event.Stage,
			Status:    statusRunning,
			StartedAt: now,
		})
		s.LastEvent = string(event.Stage) + " started"
	case EventStageEnd:
		for i := len(s.Rows) - 1; i >= 0; i-- {
			if s.Rows[i].Stage == event.Stage {
				s.Rows[i].Status = statusDone
				s.Rows[i].Count = event.Count
				s.Rows[i].FinishedAt = now
				break
			}
		}
		s.LastEvent = string(event.Stage) + " finished"
	case EventRunEnd:
		s.Finished = true
		s.Passed = event.Results.Passed
		s.LastEvent = "run finished"
	}
	return s
}
