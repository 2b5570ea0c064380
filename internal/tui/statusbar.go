package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderNav(active view, savedCount, width int) string {
	labels := []string{
		"1 Discover",
		fmt.Sprintf("2 Saved (%d)", savedCount),
		"3 Profile",
	}
	var parts []string
	for i, l := range labels {
		if view(i) == active {
			parts = append(parts, navActiveStyle.Render(l))
		} else {
			parts = append(parts, navInactiveStyle.Render(l))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "   ", parts[1], "   ", parts[2])
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func renderStatusBar(left, hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
