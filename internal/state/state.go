// Package state is the small key-value store behind flags such as
// "tutorial seen".
package state

import (
	"fmt"
	"strings"
	"sync"
)

const tutorialKey = "has_seen_tutorial"

// Store is a string key-value store.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open creates the configured backend.
func Open(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))

	switch typ {
	case "", "sqlite":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("sqlite state requires a path")
		}
		return openSQLite(path)
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt state requires a path")
		}
		return openBolt(path)
	case "memory", "none":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported state backend %q (valid: sqlite, bbolt, memory)", typ)
	}
}

// TutorialSeen reports whether the onboarding overlay was dismissed before.
// A read failure counts as not seen.
func TutorialSeen(s Store) bool {
	v, ok, err := s.Get(tutorialKey)
	return err == nil && ok && v == "true"
}

func MarkTutorialSeen(s Store) error {
	return s.Set(tutorialKey, "true")
}

func ResetTutorial(s Store) error {
	return s.Delete(tutorialKey)
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }
