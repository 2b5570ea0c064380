package article

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DateLayout is the layout of PublishedAt.
const DateLayout = "2006-01-02"

// Article is one news item. Values are never mutated after loading.
type Article struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content,omitempty"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	ImageURL    string `json:"imageUrl"`
	PublishedAt string `json:"publishedAt"`
}

// ID identifies an article. The data files use both numeric and string ids,
// so both decode into the same string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", s)
	}
	*id = ID(s)
	return nil
}

func (id ID) String() string { return string(id) }

// Paragraphs splits Content on blank lines.
func (a Article) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(a.Content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DisplayDate renders PublishedAt as YYYY/MM/DD.
func (a Article) DisplayDate() string {
	return strings.ReplaceAll(a.PublishedAt, "-", "/")
}

// ReadMinutes estimates reading time at 200 words per minute. Articles with
// no body are estimated from three times the summary length.
func (a Article) ReadMinutes() int {
	words := len(strings.Fields(a.Content))
	if words == 0 {
		words = len(strings.Fields(a.Summary)) * 3
	}
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
