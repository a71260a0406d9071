// Package search derives filtered views of the hero collection.
//
// Two normalizations are used. The store-level one trims the term and folds
// case. The page-level one also drops every whitespace character from both
// the term and the name, so "wonder woman" and "wonderwoman" both match
// "WONDER WOMAN".
package search

import (
	"strings"
	"unicode"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// NormalizeTerm trims s and folds it to lower case.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCompact folds s to lower case and removes all whitespace.
func NormalizeCompact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Filter returns the heroes whose lower-cased name contains the normalized
// term, preserving order. A blank term returns every hero.
func Filter(heroes []types.Hero, term string) []types.Hero {
	return filterBy(heroes, NormalizeTerm(term), func(name string) string {
		return strings.ToLower(name)
	})
}

// FilterCompact is Filter with whitespace-insensitive matching.
func FilterCompact(heroes []types.Hero, term string) []types.Hero {
	return filterBy(heroes, NormalizeCompact(term), NormalizeCompact)
}

func filterBy(heroes []types.Hero, term string, normalize func(string) string) []types.Hero {
	out := make([]types.Hero, 0, len(heroes))
	for _, h := range heroes {
		if term == "" || strings.Contains(normalize(h.Name), term) {
			out = append(out, h)
		}
	}
	return out
}
