package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.Corpus != "" {
		line += " | Corpus: " + state.Corpus
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderFooter renders the last event line and, once finished, the verdict.
func renderFooter(state State, noColor bool) string {
	if state.Finished {
		if state.Passed {
			return stylize("Run finished: PASSED", noColor, lipgloss.Color("35"))
		}
		return stylize("Run finished: FAILED", noColor, lipgloss.Color("160"))
	}
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
