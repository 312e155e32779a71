package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// stageColumns returns the fixed stage table layout.
func stageColumns() []table.Column {
	return []table.Column{
		{Title: "Stage", Width: 14},
		{Title: "Status", Width: 10},
		{Title: "Records", Width: 10},
		{Title: "Elapsed", Width: 12},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			string(row.Stage),
			row.Status,
			formatCount(row),
			formatRowDuration(row, now),
		})
	}
	return rows
}

func formatCount(row StageRow) string {
	if row.Status != statusDone {
		return ""
	}
	return strconv.Itoa(row.Count)
}

func formatRowDuration(row StageRow, now time.Time) string {
	if row.StartedAt.IsZero() {
		return ""
	}
	end := row.FinishedAt
	if end.IsZero() {
		end = now
	}
	if end.Before(row.StartedAt) {
		return ""
	}
	return end.Sub(row.StartedAt).Round(10 * time.Millisecond).String()
}
