package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsmatch/internal/filter"
)

// renderChips draws a row of selectable values with an "All" chip in front,
// stopping before the row would overflow width.
func renderChips(label, allLabel string, values []string, active string, display func(string) string, width int) string {
	sep := tabSeparatorStyle.Render(" ")

	var parts []string
	if active == "" {
		parts = append(parts, chipAllActiveStyle.Render(allLabel))
	} else {
		parts = append(parts, chipInactiveStyle.Render(allLabel))
	}
	for _, v := range values {
		style := chipInactiveStyle
		if v == active {
			style = chipActiveStyle
		}
		parts = append(parts, style.Render(display(v)))
	}

	row := chipLabelStyle.Render(label)
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && i > 0 {
			candidate = row + sep + tabSeparatorStyle.Render("…")
			if lipgloss.Width(candidate) <= width {
				row = candidate
			}
			break
		}
		row = candidate
	}
	return row
}

func tagChip(tag string) string { return "#" + tag }

func dateChip(today time.Time) func(string) string {
	return func(date string) string {
		return filter.DateLabel(date, today)
	}
}
