package search

import (
	"github.com/agnivade/levenshtein"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// maxSuggestDistance bounds how far a suggestion may be from the term,
// relative to the term length.
const maxSuggestDistance = 0.5

// Suggest returns the hero whose compact name is closest to the compact term
// by edit distance. It reports false for a blank term, an empty collection,
// or when even the best candidate differs in more than half the characters.
func Suggest(heroes []types.Hero, term string) (types.Hero, bool) {
	t := NormalizeCompact(term)
	if t == "" || len(heroes) == 0 {
		return types.Hero{}, false
	}

	best, bestDist := -1, 0
	for i, h := range heroes {
		d := levenshtein.ComputeDistance(t, NormalizeCompact(h.Name))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if float64(bestDist) > maxSuggestDistance*float64(len([]rune(t))) {
		return types.Hero{}, false
	}
	return heroes[best], true
}
