// Package filter derives the visible subset of the saved collection.
// Everything here is a pure function of its inputs.
package filter

import (
	"sort"
	"time"

	"github.com/matheuskafuri/newsmatch/internal/article"
)

// Selector constrains articles by tag and date. An empty field imposes no
// constraint.
type Selector struct {
	Tag  string
	Date string
}

// Any reports whether the selector lets every article through.
func (s Selector) Any() bool {
	return s.Tag == "" && s.Date == ""
}

func (s Selector) matches(a article.Article) bool {
	if s.Tag != "" && a.Tag != s.Tag {
		return false
	}
	if s.Date != "" && a.PublishedAt != s.Date {
		return false
	}
	return true
}

// Apply returns the articles matching sel, in their original order. The
// result is never nil.
func Apply(articles []article.Article, sel Selector) []article.Article {
	out := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if sel.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// DistinctTags returns each tag once, in order of first occurrence.
func DistinctTags(articles []article.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if !seen[a.Tag] {
			seen[a.Tag] = true
			out = append(out, a.Tag)
		}
	}
	return out
}

// DistinctDates returns each publication date once, newest first. Dates are
// YYYY-MM-DD so lexicographic order is chronological.
func DistinctDates(articles []article.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if !seen[a.PublishedAt] {
			seen[a.PublishedAt] = true
			out = append(out, a.PublishedAt)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Cycle steps through "" (all), values[0], ..., values[n-1] and back to "".
// A current value that is no longer present restarts the cycle.
func Cycle(values []string, current string) string {
	if current == "" {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return ""
}

// CycleBack is Cycle in reverse.
func CycleBack(values []string, current string) string {
	if current == "" {
		if len(values) == 0 {
			return ""
		}
		return values[len(values)-1]
	}
	for i, v := range values {
		if v == current {
			if i > 0 {
				return values[i-1]
			}
			return ""
		}
	}
	return ""
}

// DateLabel renders a date chip: "Today" for today's date, MM/DD otherwise.
func DateLabel(date string, today time.Time) string {
	if date == today.Format(article.DateLayout) {
		return "Today"
	}
	t, err := time.Parse(article.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("01/02")
}
