package classify

import (
	"fmt"
	"strings"
	"unicode"
)

// Category represents an article classification.
type Category string

const (
	Technology  Category = "Technology"
	Science     Category = "Science"
	Business    Category = "Business"
	Health      Category = "Health"
	Environment Category = "Environment"
	Culture     Category = "Culture"
	Sports      Category = "Sports"
	World       Category = "World"
)

// AllCategories returns all valid categories in canonical order.
func AllCategories() []Category {
	return []Category{Technology, Science, Business, Health, Environment, Culture, Sports, World}
}

var categoryKeywords = map[Category][]string{
	Technology: {
		"ai", "artificial intelligence", "machine learning", "software", "chip",
		"semiconductor", "smartphone", "app", "robot", "cyber", "battery",
		"startup", "cloud", "model", "computer", "internet", "ev",
	},
	Science: {
		"research", "scientist", "study", "space", "nasa", "lunar", "moon",
		"mars", "rocket", "telescope", "quantum", "physics", "genome",
		"experiment", "discovery", "orbit",
	},
	Business: {
		"market", "stock", "economy", "inflation", "bank", "rate", "earnings",
		"investor", "trade", "tariff", "merger", "acquisition", "revenue",
		"hiring", "jobs", "company",
	},
	Health: {
		"health", "medical", "hospital", "vaccine", "disease", "patient",
		"drug", "clinical", "cancer", "diet", "sleep", "mental health",
		"wearable", "dehydration",
	},
	Environment: {
		"climate", "emissions", "carbon", "renewable", "solar", "wind",
		"wildfire", "flood", "drought", "biodiversity", "reef", "ocean",
		"pollution", "heatwave",
	},
	Culture: {
		"film", "movie", "music", "album", "book", "novel", "art", "museum",
		"festival", "fashion", "game", "anime", "theater",
	},
	Sports: {
		"match", "league", "tournament", "championship", "olympic", "football",
		"soccer", "baseball", "basketball", "tennis", "athlete", "coach",
		"world cup",
	},
}

// Aliases maps short CLI values to full category names.
var Aliases = map[string]Category{
	"tech":    Technology,
	"sci":     Science,
	"biz":     Business,
	"health":  Health,
	"env":     Environment,
	"culture": Culture,
	"sports":  Sports,
	"world":   World,
}

// ResolveAlias maps a CLI alias to a Category.
func ResolveAlias(alias string) (Category, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if cat, ok := Aliases[alias]; ok {
		return cat, nil
	}
	for _, cat := range AllCategories() {
		if strings.EqualFold(string(cat), alias) {
			return cat, nil
		}
	}
	valid := make([]string, 0, len(Aliases))
	for k := range Aliases {
		valid = append(valid, k)
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", alias, strings.Join(valid, ", "))
}

// Classify determines the category for an article based on title and summary.
// Title keywords are weighted 2x. Returns World as default.
func Classify(title, summary string) Category {
	titleTokens := tokenize(title)
	summaryTokens := tokenize(summary)
	titleLower := strings.ToLower(title)
	summaryLower := strings.ToLower(summary)

	var bestCat Category
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if !strings.Contains(kw, " ") {
				// Short keywords like "ai" only match whole tokens.
				score += 2 * countToken(titleTokens, kw)
				score += countToken(summaryTokens, kw)
			} else {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(summaryLower, kw) {
					score++
				}
			}
		}
		// Ties keep the earlier category in canonical order.
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}

	if bestScore == 0 {
		return World
	}
	return bestCat
}

func countToken(tokens []string, kw string) int {
	n := 0
	for _, t := range tokens {
		if t == kw || (len(kw) > 3 && strings.HasPrefix(t, kw)) {
			n++
		}
	}
	return n
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
