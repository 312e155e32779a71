package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea model behind the live run view: a header
// with the run ID, a table of pipeline stages, and a status footer.
type Model struct {
	state        State
	table        table.Model
	events       <-chan Event
	tickInterval time.Duration
	now          time.Time
	noColor      bool
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// NewModel builds a live UI model fed by an event stream.
func NewModel(events <-chan Event, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	t := table.New(
		table.WithColumns(stageColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		table:        t,
		events:       events,
		tickInterval: tickInterval,
		now:          time.Now(),
		noColor:      opts.NoColor,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick(m.tickInterval))
}

// Update folds pipeline events and clock ticks into the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(maxInt(typed.Height-4, 1))
		return m, nil
	case EventMsg:
		m.state = m.state.apply(typed.Event, time.Now())
		m.table.SetRows(rowsForState(m.state, m.now))
		return m, waitForEvent(m.events)
	case tickMsg:
		m.now = time.Time(typed)
		m.table.SetRows(rowsForState(m.state, m.now))
		return m, tick(m.tickInterval)
	}
	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.now, m.noColor),
		m.table.View(),
		renderFooter(m.state, m.noColor),
	)
}

// EventMsg wraps a pipeline event for Bubble Tea.
type EventMsg struct {
	Event Event
}

type tickMsg time.Time

// waitForEvent blocks until the next pipeline event. A closed channel
// quits the program.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
