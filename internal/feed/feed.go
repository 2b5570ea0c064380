// Package feed loads article files from disk. JSON arrays go through the
// article loader; RSS and Atom documents are parsed with gofeed.
package feed

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matheuskafuri/newsmatch/internal/article"
	"github.com/matheuskafuri/newsmatch/internal/classify"
	"github.com/mmcdole/gofeed"
)

const summaryLimit = 300

// Open loads the article file at path into a provider.
func Open(path string) (*article.Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var articles []article.Article
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		articles, err = article.Load(f)
		classifyMissing(articles)
	case ".xml", ".rss", ".atom":
		articles, err = Parse(f, time.Now())
	default:
		return nil, fmt.Errorf("%s: unsupported file type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return article.NewStatic(articles), nil
}

// classifyMissing fills in Category for records that arrived without one.
func classifyMissing(articles []article.Article) {
	for i := range articles {
		if articles[i].Category == "" {
			articles[i].Category = string(classify.Classify(articles[i].Title, articles[i].Summary))
		}
	}
}

// Parse reads an RSS or Atom document. Items without a date get now's date.
func Parse(r io.Reader, now time.Time) ([]article.Article, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	source := strings.TrimSpace(parsed.Title)
	out := make([]article.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		out = append(out, fromItem(item, source, now))
	}
	return article.Normalize(out)
}

func fromItem(item *gofeed.Item, source string, now time.Time) article.Article {
	pub := now
	if item.PublishedParsed != nil {
		pub = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		pub = *item.UpdatedParsed
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}
	summary = truncate(stripHTML(summary), summaryLimit)

	category := string(classify.Classify(item.Title, summary))
	tag := category
	if len(item.Categories) > 0 && strings.TrimSpace(item.Categories[0]) != "" {
		tag = item.Categories[0]
	}

	key := item.GUID
	if key == "" {
		key = item.Link
	}
	if key == "" {
		key = item.Title
	}

	return article.Article{
		ID:          article.ID(articleID(key)),
		Title:       item.Title,
		Summary:     summary,
		Content:     stripHTMLParagraphs(item.Content),
		Source:      source,
		Category:    category,
		Tag:         tag,
		ImageURL:    imageURL(item),
		PublishedAt: pub.Format(article.DateLayout),
	}
}

func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, e := range item.Enclosures {
		if e != nil && strings.HasPrefix(e.Type, "image/") {
			return e.URL
		}
	}
	return ""
}

func articleID(key string) string {
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h[:16])
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stripHTMLParagraphs strips tags but keeps paragraph breaks so long-form
// content still splits on blank lines.
func stripHTMLParagraphs(s string) string {
	r := strings.NewReplacer("</p>", "\n\n", "</P>", "\n\n", "<br>", "\n\n", "<br/>", "\n\n", "<br />", "\n\n")
	var paras []string
	for _, p := range strings.Split(r.Replace(s), "\n\n") {
		if p = stripHTML(p); p != "" {
			paras = append(paras, p)
		}
	}
	return strings.Join(paras, "\n\n")
}
