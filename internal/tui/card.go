package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsmatch/internal/article"
)

// renderStack draws the front card with the next cards peeking out above it,
// each one narrower than the card in front of it.
func renderStack(cards []article.Article, width, height int) string {
	cardWidth := width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	var rows []string
	for i := len(cards) - 1; i >= 1; i-- {
		inset := i * 2
		w := cardWidth - 2*inset
		if w < 10 {
			continue
		}
		ghost := ghostCardStyle.Width(w - 2).Render(truncateStr(cards[i].Title, w-4))
		rows = append(rows, indent(ghost, inset))
	}
	rows = append(rows, renderCard(cards[0], cardWidth, len(cards)))

	stack := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, stack)
}

func renderCard(a article.Article, width, depth int) string {
	inner := width - 6 // border + padding

	var body []string
	body = append(body, tagStyle.Render("#"+a.Tag)+"  "+categoryStyle.Render(a.Category))
	body = append(body, "")
	body = append(body, cardTitleStyle.Width(inner).Render(wrapText(a.Title, inner)))
	body = append(body, "")
	if a.Summary != "" {
		body = append(body, cardSummaryStyle.Width(inner).Render(wrapText(a.Summary, inner)))
		body = append(body, "")
	}
	body = append(body, cardMetaStyle.Render(fmt.Sprintf("%s · %s", a.Source, a.DisplayDate())))
	body = append(body, "")

	hints := dismissHintStyle.Render("← skip") +
		strings.Repeat(" ", max(1, inner-lipgloss.Width("← skip")-lipgloss.Width("save →"))) +
		likeHintStyle.Render("save →")
	body = append(body, hints)

	return cardStyle.Width(width - 2).Render(strings.Join(body, "\n"))
}

func renderEmptyStack(width, height int) string {
	lines := []string{
		cardTitleStyle.Render("That's all the news for today"),
		"",
		cardMetaStyle.Render("Check back when new articles arrive."),
		"",
		chipAllActiveStyle.Render("r  start over"),
	}
	box := overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
