package article

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed news.json
var embeddedNews []byte

// Provider supplies the fixed, ordered article sequence.
type Provider interface {
	Articles() []Article
}

// Static is a Provider over an in-memory sequence.
type Static struct {
	articles []Article
}

func NewStatic(articles []Article) *Static {
	return &Static{articles: clone(articles)}
}

// Articles returns a copy so callers cannot disturb the canonical order.
func (s *Static) Articles() []Article {
	return clone(s.articles)
}

func (s *Static) Len() int { return len(s.articles) }

// Embedded returns the provider backed by the bundled data set.
func Embedded() (*Static, error) {
	articles, err := Load(bytes.NewReader(embeddedNews))
	if err != nil {
		return nil, fmt.Errorf("loading embedded articles: %w", err)
	}
	return &Static{articles: articles}, nil
}

func clone(in []Article) []Article {
	if in == nil {
		return nil
	}
	out := make([]Article, len(in))
	copy(out, in)
	return out
}
