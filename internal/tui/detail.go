package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsmatch/internal/article"
)

const detailPlaceholder = "A fuller background report for this story is still being prepared. Check back later for the complete write-up."

func renderDetail(a article.Article, width, height, scroll int) string {
	contentWidth := width - 8
	if contentWidth > 80 {
		contentWidth = 80
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	var lines []string
	lines = append(lines, categoryStyle.Render(a.Category)+cardMetaStyle.Render(fmt.Sprintf("  %s  %s  · %d min read", a.DisplayDate(), a.Source, a.ReadMinutes())))
	lines = append(lines, "")
	lines = append(lines, detailTitleStyle.Width(contentWidth).Render(wrapText(a.Title, contentWidth)))

	if a.Summary != "" {
		lines = append(lines, detailSectionStyle.Render("Summary"))
		lines = append(lines, detailBodyStyle.Width(contentWidth).Render(wrapText(a.Summary, contentWidth)))
		lines = append(lines, "")
	}

	lines = append(lines, detailSectionStyle.Render("Details"))
	paragraphs := a.Paragraphs()
	if len(paragraphs) == 0 {
		paragraphs = []string{detailPlaceholder}
	}
	for i, p := range paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, detailBodyStyle.Width(contentWidth).Render(wrapText(p, contentWidth)))
	}

	if a.ImageURL != "" {
		lines = append(lines, "")
		lines = append(lines, detailLinkStyle.Width(contentWidth).Render("Image: "+a.ImageURL))
	}

	content := strings.Split(lipgloss.JoinVertical(lipgloss.Left, lines...), "\n")

	// Apply scroll offset
	if scroll > 0 && scroll < len(content) {
		content = content[scroll:]
	}
	if len(content) > height {
		content = content[:height]
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(content, "\n"))
}
