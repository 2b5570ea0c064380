// Package swipe holds the queue of undecided articles and the collection of
// liked ones.
package swipe

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/newsmatch/internal/article"
)

// Direction is the outcome of a swipe.
type Direction int

const (
	Dismiss Direction = iota
	Like
)

func (d Direction) String() string {
	if d == Like {
		return "like"
	}
	return "dismiss"
}

// ParseDirection accepts "like"/"right" and "dismiss"/"left".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like", "right":
		return Like, nil
	case "dismiss", "left":
		return Dismiss, nil
	}
	return Dismiss, fmt.Errorf("unknown direction %q (valid: like, dismiss)", s)
}

// Decision describes what a call to Decide did.
type Decision struct {
	Article   article.Article
	Direction Direction
	// Applied is false when the queue was empty.
	Applied bool
	// Saved is true when the article was added to the saved collection.
	Saved bool
}

// Stack owns the queue and the saved collection. It is not safe for
// concurrent use; the TUI serializes every call through its update loop.
type Stack struct {
	provider article.Provider
	queue    []article.Article
	saved    []article.Article
	savedIDs map[article.ID]bool
}

// New creates a Stack whose queue holds the provider's full sequence.
func New(p article.Provider) *Stack {
	s := &Stack{
		provider: p,
		savedIDs: make(map[article.ID]bool),
	}
	s.Reset()
	return s
}

// Initialize replaces the queue with a copy of articles. The saved
// collection is left alone.
func (s *Stack) Initialize(articles []article.Article) {
	s.queue = make([]article.Article, len(articles))
	copy(s.queue, articles)
}

// Reset refills the queue from the provider.
func (s *Stack) Reset() {
	if s.provider == nil {
		s.Initialize(nil)
		return
	}
	s.Initialize(s.provider.Articles())
}

// Front returns the next article awaiting a decision.
func (s *Stack) Front() (article.Article, bool) {
	if len(s.queue) == 0 {
		return article.Article{}, false
	}
	return s.queue[0], true
}

// Decide consumes the front article. A like prepends it to the saved
// collection unless an article with the same ID is already there. Deciding
// on an empty queue does nothing.
func (s *Stack) Decide(d Direction) Decision {
	front, ok := s.Front()
	if !ok {
		return Decision{Direction: d}
	}

	dec := Decision{Article: front, Direction: d, Applied: true}
	if d == Like && !s.savedIDs[front.ID] {
		s.saved = append([]article.Article{front}, s.saved...)
		s.savedIDs[front.ID] = true
		dec.Saved = true
	}

	s.queue[0] = article.Article{}
	s.queue = s.queue[1:]
	return dec
}

// Peek returns up to n articles from the front of the queue, front first.
func (s *Stack) Peek(n int) []article.Article {
	if n > len(s.queue) {
		n = len(s.queue)
	}
	if n <= 0 {
		return nil
	}
	out := make([]article.Article, n)
	copy(out, s.queue[:n])
	return out
}

// Queue returns a snapshot of the undecided articles.
func (s *Stack) Queue() []article.Article {
	return s.Peek(len(s.queue))
}

// Saved returns a snapshot of the saved collection, most recent first.
func (s *Stack) Saved() []article.Article {
	out := make([]article.Article, len(s.saved))
	copy(out, s.saved)
	return out
}

func (s *Stack) Len() int      { return len(s.queue) }
func (s *Stack) SavedLen() int { return len(s.saved) }

func (s *Stack) IsSaved(id article.ID) bool {
	return s.savedIDs[id]
}
