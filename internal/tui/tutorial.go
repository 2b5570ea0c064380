package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderTutorial(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	lines := []string{logoStyle.Render("N E W S M A T C H")}
	lines = append(lines, "", labelStyle.Render("Swipe through today's news."), "")

	steps := [][2]string{
		{"→ / l", "save the article to your collection"},
		{"← / h", "skip it"},
		{"enter", "read the full story"},
		{"tab", "switch between Discover, Saved and Profile"},
		{"?", "show all keys"},
	}
	for _, s := range steps {
		lines = append(lines, keyStyle.Width(8).Render(s[0])+"  "+labelStyle.Render(s[1]))
	}
	lines = append(lines, "", helpDimStyle.Render("press any key to start"))

	card := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderHelp(width, height int) string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("newsmatch")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Discover") + "\n" +
		"  →, l, space   Save article\n" +
		"  ←, h, x       Skip article\n" +
		"  enter         Read article\n" +
		"  r             Start over\n\n" +
		dim.Render("Saved / Profile") + "\n" +
		"  j/k, ↑/↓      Move through articles\n" +
		"  t / T         Next / previous tag\n" +
		"  d / D         Next / previous date (Saved)\n" +
		"  a             Clear filters\n" +
		"  e             Edit profile (Profile)\n" +
		"  c             Copy profile link (Profile)\n" +
		"  o             Open profile link (Profile)\n\n" +
		dim.Render("General") + "\n" +
		"  tab, 1-3      Switch view\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := overlayStyle.Render(help)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
