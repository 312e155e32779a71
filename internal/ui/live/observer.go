package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"vigprep/internal/pipeline"
)

// Controller runs the live UI and implements pipeline.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(runID string, corpusPath string) {
	c.send(Event{Kind: EventRunStart, RunID: runID, Corpus: corpusPath})
}

// OnStageStart forwards stage start events to the UI.
func (c *Controller) OnStageStart(stage pipeline.Stage) {
	c.send(Event{Kind: EventStageStart, Stage: stage})
}

// OnStageEnd forwards stage completion events to the UI.
func (c *Controller) OnStageEnd(stage pipeline.Stage, count int) {
	c.send(Event{Kind: EventStageEnd, Stage: stage, Count: count})
}

// OnRunEnd forwards run completion events to the UI and closes it.
func (c *Controller) OnRunEnd(results pipeline.Results) {
	c.send(Event{Kind: EventRunEnd, Results: results})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
