package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Load decodes a JSON array of articles, normalizes whitespace and rejects
// malformed records. All problems are reported together.
func Load(r io.Reader) ([]Article, error) {
	var raw []Article
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}
	return Normalize(raw)
}

// Normalize trims every field and validates the result.
func Normalize(in []Article) ([]Article, error) {
	out := make([]Article, 0, len(in))
	seen := make(map[ID]bool, len(in))
	var errs []error

	for i, a := range in {
		a = trim(a)
		if err := validate(a); err != nil {
			errs = append(errs, fmt.Errorf("article %d: %w", i, err))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("article %d: duplicate id %q", i, a.ID))
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func trim(a Article) Article {
	a.ID = ID(strings.TrimSpace(string(a.ID)))
	a.Title = strings.TrimSpace(a.Title)
	a.Summary = strings.TrimSpace(a.Summary)
	a.Content = strings.TrimSpace(a.Content)
	a.Source = strings.TrimSpace(a.Source)
	a.Category = strings.TrimSpace(a.Category)
	a.Tag = strings.TrimSpace(a.Tag)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	a.PublishedAt = strings.TrimSpace(a.PublishedAt)
	return a
}

func validate(a Article) error {
	if a.ID == "" {
		return errors.New("id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("%q: title is required", a.ID)
	}
	if a.Tag == "" {
		return fmt.Errorf("%q: tag is required", a.ID)
	}
	if a.PublishedAt == "" {
		return fmt.Errorf("%q: publishedAt is required", a.ID)
	}
	if _, err := time.Parse(DateLayout, a.PublishedAt); err != nil {
		return fmt.Errorf("%q: publishedAt %q is not YYYY-MM-DD", a.ID, a.PublishedAt)
	}
	return nil
}
