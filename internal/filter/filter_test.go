package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/matheuskafuri/newsmatch/internal/article"
)

func savedArticles() []article.Article {
	return []article.Article{
		{ID: "a", Tag: "x", PublishedAt: "2026-01-10"},
		{ID: "b", Tag: "y", PublishedAt: "2026-01-11"},
	}
}

func idsOf(articles []article.Article) []article.ID {
	out := []article.ID{}
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestApplyScenario(t *testing.T) {
	saved := savedArticles()
	tests := []struct {
		name string
		sel  Selector
		want []article.ID
	}{
		{"no constraint", Selector{}, []article.ID{"a", "b"}},
		{"tag", Selector{Tag: "x"}, []article.ID{"a"}},
		{"date", Selector{Date: "2026-01-11"}, []article.ID{"b"}},
		{"tag and date conflict", Selector{Tag: "x", Date: "2026-01-11"}, []article.ID{}},
		{"tag and date match", Selector{Tag: "y", Date: "2026-01-11"}, []article.ID{"b"}},
		{"unknown tag", Selector{Tag: "zzz"}, []article.ID{}},
	}
	for _, tt := range tests {
		got := Apply(saved, tt.sel)
		if !reflect.DeepEqual(idsOf(got), tt.want) {
			t.Errorf("%s: Apply = %v, want %v", tt.name, idsOf(got), tt.want)
		}
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	in := []article.Article{
		{ID: "3", Tag: "x"}, {ID: "1", Tag: "y"}, {ID: "2", Tag: "x"}, {ID: "0", Tag: "x"},
	}
	got := Apply(in, Selector{Tag: "x"})
	want := []article.ID{"3", "2", "0"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Errorf("Apply = %v, want %v", idsOf(got), want)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, Selector{Tag: "x"})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestApplyWithoutSelectorReturnsInput(t *testing.T) {
	in := savedArticles()
	got := Apply(in, Selector{})
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Apply with empty selector changed the input: %v", got)
	}
}

func TestDistinctTags(t *testing.T) {
	in := []article.Article{{Tag: "AI"}, {Tag: "Space"}, {Tag: "AI"}, {Tag: "Climate"}}
	got := DistinctTags(in)
	want := []string{"AI", "Space", "Climate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctTags = %v, want %v", got, want)
	}
	if len(DistinctTags(nil)) != 0 {
		t.Error("expected no tags for empty input")
	}
}

func TestDistinctDates(t *testing.T) {
	in := []article.Article{
		{PublishedAt: "2026-01-10"}, {PublishedAt: "2026-01-12"}, {PublishedAt: "2026-01-10"},
	}
	got := DistinctDates(in)
	want := []string{"2026-01-12", "2026-01-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctDates = %v, want %v", got, want)
	}
}

func TestCycle(t *testing.T) {
	values := []string{"a", "b"}
	tests := []struct {
		current  string
		next     string
		previous string
	}{
		{"", "a", "b"},
		{"a", "b", ""},
		{"b", "", "a"},
		{"gone", "", ""},
	}
	for _, tt := range tests {
		if got := Cycle(values, tt.current); got != tt.next {
			t.Errorf("Cycle(%q) = %q, want %q", tt.current, got, tt.next)
		}
		if got := CycleBack(values, tt.current); got != tt.previous {
			t.Errorf("CycleBack(%q) = %q, want %q", tt.current, got, tt.previous)
		}
	}
	if got := Cycle(nil, ""); got != "" {
		t.Errorf("Cycle over no values = %q", got)
	}
}

func TestDateLabel(t *testing.T) {
	today := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		date string
		want string
	}{
		{"2026-01-12", "Today"},
		{"2026-01-10", "01/10"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := DateLabel(tt.date, today); got != tt.want {
			t.Errorf("DateLabel(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
