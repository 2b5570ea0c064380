package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matheuskafuri/newsmatch/internal/article"
	"github.com/matheuskafuri/newsmatch/internal/profile"
	"github.com/matheuskafuri/newsmatch/internal/state"
	"github.com/matheuskafuri/newsmatch/internal/swipe"
)

func testArticles() []article.Article {
	return []article.Article{
		{ID: "1", Title: "Chip breakthrough", Tag: "AI", Category: "Technology", Source: "Wire", PublishedAt: "2026-01-12", ImageURL: "https://img.example/1.png"},
		{ID: "2", Title: "Rocket lands", Tag: "Space", Category: "Science", Source: "Wire", PublishedAt: "2026-01-11"},
		{ID: "3", Title: "Rates hold", Tag: "Economy", Category: "Business", Source: "Wire", PublishedAt: "2026-01-11"},
		{ID: "4", Title: "Model release", Tag: "AI", Category: "Technology", Source: "Wire", PublishedAt: "2026-01-10"},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := state.NewMemory()
	if err := state.MarkTutorialSeen(store); err != nil {
		t.Fatal(err)
	}
	a := NewApp(RunOpts{
		Stack:     swipe.New(article.NewStatic(testArticles())),
		Profile:   profile.NewEditor(profile.Default("sample")),
		Store:     store,
		UserID:    "sample",
		ShareBase: "https://newsmatch.jp",
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(key(k))
	}
	return cmd
}

func savedIDs(a *App) string {
	var ids []string
	for _, s := range a.stack.Saved() {
		ids = append(ids, s.ID.String())
	}
	return strings.Join(ids, ",")
}

func TestTutorialShownOnce(t *testing.T) {
	store := state.NewMemory()
	a := NewApp(RunOpts{Stack: swipe.New(article.NewStatic(testArticles())), Store: store})
	if a.mode != modeTutorial {
		t.Fatalf("mode = %v, want tutorial", a.mode)
	}

	cmd := press(a, "x")
	if a.mode != modeNormal {
		t.Fatalf("mode after key = %v, want normal", a.mode)
	}
	if a.stack.Len() != 4 {
		t.Errorf("dismissing the tutorial must not swipe, queue = %d", a.stack.Len())
	}
	if cmd == nil {
		t.Fatal("expected a command writing the tutorial flag")
	}
	if _, ok := cmd().(tutorialSavedMsg); !ok {
		t.Fatal("expected tutorialSavedMsg")
	}
	if !state.TutorialSeen(store) {
		t.Error("flag not written")
	}

	again := NewApp(RunOpts{Stack: swipe.New(article.NewStatic(testArticles())), Store: store})
	if again.mode != modeNormal {
		t.Errorf("tutorial shown again after flag was set")
	}
}

func TestDiscoverSwipes(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantLen   int
		wantSaved string
	}{
		{"like right arrow", []string{"right"}, 3, "1"},
		{"like l", []string{"l"}, 3, "1"},
		{"like space", []string{" "}, 3, "1"},
		{"dismiss left arrow", []string{"left"}, 3, ""},
		{"dismiss h", []string{"h"}, 3, ""},
		{"dismiss x", []string{"x"}, 3, ""},
		{"like then like prepends", []string{"l", "l"}, 2, "2,1"},
		{"dismiss then like", []string{"x", "l"}, 2, "2"},
		{"drain then keep swiping", []string{"l", "x", "l", "x", "l", "l"}, 0, "3,1"},
		{"reset keeps saved", []string{"l", "x", "r"}, 4, "1"},
		{"like after reset skips duplicate", []string{"l", "r", "l"}, 3, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			press(a, tt.keys...)
			if a.stack.Len() != tt.wantLen {
				t.Errorf("queue = %d, want %d", a.stack.Len(), tt.wantLen)
			}
			if got := savedIDs(a); got != tt.wantSaved {
				t.Errorf("saved = %q, want %q", got, tt.wantSaved)
			}
		})
	}
}

func TestViewSwitching(t *testing.T) {
	a := newTestApp(t)

	press(a, "tab")
	if a.view != viewSaved {
		t.Fatalf("tab: view = %v, want saved", a.view)
	}
	press(a, "tab")
	if a.view != viewProfile {
		t.Fatalf("tab: view = %v, want profile", a.view)
	}
	press(a, "tab")
	if a.view != viewDiscover {
		t.Fatalf("tab wraps: view = %v, want discover", a.view)
	}
	press(a, "shift+tab")
	if a.view != viewProfile {
		t.Fatalf("shift+tab: view = %v, want profile", a.view)
	}
	press(a, "2")
	if a.view != viewSaved {
		t.Fatalf("2: view = %v", a.view)
	}
	press(a, "1")
	if a.view != viewDiscover {
		t.Fatalf("1: view = %v", a.view)
	}
}

func TestSavedFilters(t *testing.T) {
	a := newTestApp(t)
	// Save everything: saved = 4,3,2,1
	press(a, "l", "l", "l", "l", "2")

	if n := len(a.savedVisible()); n != 4 {
		t.Fatalf("unfiltered = %d, want 4", n)
	}

	// Dates descend: 2026-01-12 first
	press(a, "d")
	if a.savedSel.Date != "2026-01-12" {
		t.Fatalf("date = %q", a.savedSel.Date)
	}
	press(a, "d")
	if a.savedSel.Date != "2026-01-11" {
		t.Fatalf("date = %q", a.savedSel.Date)
	}
	if got := a.savedVisible(); len(got) != 2 || got[0].ID != "3" || got[1].ID != "2" {
		t.Fatalf("visible = %+v", got)
	}

	// Tags in first-occurrence order of saved (4 AI, 3 Economy, 2 Space)
	press(a, "t")
	if a.savedSel.Tag != "AI" {
		t.Fatalf("tag = %q", a.savedSel.Tag)
	}
	if got := a.savedVisible(); len(got) != 0 {
		t.Fatalf("AI on 2026-01-11 should be empty, got %d", len(got))
	}
	if !strings.Contains(a.View(), "No saved articles match") {
		t.Error("expected no-match message")
	}

	press(a, "D")
	if a.savedSel.Date != "2026-01-12" {
		t.Fatalf("D: date = %q", a.savedSel.Date)
	}
	if got := a.savedVisible(); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("visible = %+v", got)
	}

	press(a, "a")
	if !a.savedSel.Any() {
		t.Fatal("a should clear selectors")
	}
	if n := len(a.savedVisible()); n != 4 {
		t.Fatalf("cleared = %d", n)
	}
}

func TestSavedEmptyState(t *testing.T) {
	a := newTestApp(t)
	press(a, "2")
	if !strings.Contains(a.View(), "Swipe right") {
		t.Error("expected empty-state prompt")
	}
	// Keys on an empty list are no-ops
	press(a, "j", "enter", "d", "t")
	if a.mode != modeNormal || a.savedCursor != 0 {
		t.Errorf("mode = %v cursor = %d", a.mode, a.savedCursor)
	}
}

func TestSavedCursorAndDetail(t *testing.T) {
	a := newTestApp(t)
	press(a, "l", "l", "2")

	press(a, "j", "j", "j")
	if a.savedCursor != 1 {
		t.Fatalf("cursor = %d, want clamped to 1", a.savedCursor)
	}
	press(a, "enter")
	if a.mode != modeDetail || a.detail.ID != "1" {
		t.Fatalf("detail = %v %q", a.mode, a.detail.ID)
	}
	press(a, "esc")
	if a.mode != modeNormal {
		t.Fatalf("esc: mode = %v", a.mode)
	}
	press(a, "k", "k")
	if a.savedCursor != 0 {
		t.Errorf("cursor = %d", a.savedCursor)
	}
}

func TestDetailFromDiscover(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter")
	if a.mode != modeDetail || a.detail.ID != "1" {
		t.Fatalf("mode = %v detail = %q", a.mode, a.detail.ID)
	}
	if !strings.Contains(a.View(), "2026/01/12") {
		t.Error("detail should show the slash date")
	}
	// Swipe keys do nothing while reading
	press(a, "l", "j", "j", "k")
	if a.stack.Len() != 4 {
		t.Errorf("queue = %d", a.stack.Len())
	}
	if a.detailScroll != 1 {
		t.Errorf("scroll = %d", a.detailScroll)
	}
	press(a, "q")
	if a.mode != modeNormal {
		t.Errorf("q should close detail, mode = %v", a.mode)
	}
}

func TestProfileEdit(t *testing.T) {
	a := newTestApp(t)
	press(a, "3", "e")
	if a.mode != modeEdit || !a.editor.Editing() {
		t.Fatalf("mode = %v editing = %v", a.mode, a.editor.Editing())
	}
	if got := a.form.inputs[0].Value(); got != "Sample User" {
		t.Fatalf("form name = %q", got)
	}

	a.form.inputs[0].SetValue("Aiko")
	press(a, "esc")
	if a.editor.Current().Name != "Sample User" {
		t.Fatalf("cancel changed profile: %q", a.editor.Current().Name)
	}

	press(a, "e")
	a.form.inputs[0].SetValue("  Aiko  ")
	press(a, "tab")
	if a.form.focus != 1 {
		t.Fatalf("focus = %d", a.form.focus)
	}
	press(a, "enter")
	if a.mode != modeNormal {
		t.Fatalf("mode = %v", a.mode)
	}
	if got := a.editor.Current().Name; got != "Aiko" {
		t.Errorf("name = %q, want Aiko", got)
	}
	if a.status != "Profile updated" {
		t.Errorf("status = %q", a.status)
	}
}

func TestProfileTagFilterAndShare(t *testing.T) {
	a := newTestApp(t)
	press(a, "l", "l", "l", "3")

	press(a, "t")
	if a.profileTag != "Economy" {
		t.Fatalf("tag = %q", a.profileTag)
	}
	if got := a.profileVisible(); len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("visible = %+v", got)
	}
	press(a, "T")
	if a.profileTag != "" {
		t.Fatalf("T should step back to all, got %q", a.profileTag)
	}
	press(a, "T")
	if a.profileTag != "AI" {
		t.Fatalf("T from all should wrap to the last tag, got %q", a.profileTag)
	}

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	want := "https://newsmatch.jp/#/profile?userid=sample"
	cmd := press(a, "c")
	if cmd == nil {
		t.Fatal("c should return a copy command")
	}
	a.Update(cmd())
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if a.status != "Link copied" {
		t.Errorf("status = %q", a.status)
	}
	if !strings.Contains(a.View(), want) {
		t.Errorf("share link %q not shown", want)
	}
	if cmd := press(a, "o"); cmd == nil {
		t.Error("o should return a browser command")
	}
}

func TestHelpAndQuit(t *testing.T) {
	a := newTestApp(t)
	press(a, "?")
	if a.mode != modeHelp {
		t.Fatalf("mode = %v", a.mode)
	}
	if cmd := press(a, "l"); cmd != nil || a.stack.Len() != 4 {
		t.Error("help should swallow keys")
	}
	press(a, "?")
	if a.mode != modeNormal {
		t.Fatalf("mode = %v", a.mode)
	}

	cmd := press(a, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
	if cmd := press(a, "ctrl+c"); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestErrMsgShownUntilNextKey(t *testing.T) {
	a := newTestApp(t)
	a.Update(errMsg{err: errors.New("boom")})
	if !strings.Contains(a.View(), "boom") {
		t.Fatal("error not rendered")
	}
	press(a, "x")
	if a.err != nil {
		t.Error("error should clear on keypress")
	}
}

func TestViewRenders(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	for _, want := range []string{"Chip breakthrough", "Discover", "4 left"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(a, "x", "x", "x", "x")
	if !strings.Contains(a.View(), "start over") {
		t.Error("empty stack should offer a reset")
	}
}

func TestFitHeight(t *testing.T) {
	tests := []struct {
		in     string
		height int
		want   int
	}{
		{"a", 3, 3},
		{"a\nb\nc\nd", 2, 2},
		{"", 1, 1},
	}
	for _, tt := range tests {
		got := strings.Count(fitHeight(tt.in, tt.height), "\n") + 1
		if got != tt.want {
			t.Errorf("fitHeight(%q, %d) lines = %d, want %d", tt.in, tt.height, got, tt.want)
		}
	}
}

func TestCopyLinkFailureShowsError(t *testing.T) {
	a := newTestApp(t)
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	cmd := press(a, "3", "c")
	a.Update(cmd())
	if a.err == nil || !strings.Contains(a.err.Error(), "no clipboard") {
		t.Fatalf("err = %v", a.err)
	}
	if !a.showLink {
		t.Error("link should still be shown when copying fails")
	}
}

func TestOverlayHintsMatchKeys(t *testing.T) {
	tests := []struct {
		name  string
		open  []string
		close string
	}{
		{"detail", []string{"enter"}, "q"},
		{"help", []string{"?"}, "q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			press(a, tt.open...)
			if strings.Contains(a.View(), "q quit") {
				t.Error("overlay advertises q as quit")
			}
			if cmd := press(a, tt.close); cmd != nil {
				t.Errorf("%s should close the overlay, not quit", tt.close)
			}
			if a.mode != modeNormal {
				t.Errorf("mode = %v, want normal", a.mode)
			}
		})
	}
}
