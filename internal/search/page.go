package search

import "github.com/mesh-intelligence/herodex/pkg/types"

// Page is one slice of a paginated result.
type Page struct {
	Items []types.Hero
	Index int // zero-based page index, clamped to the available pages
	Count int // number of pages, at least 1
	Total int // number of heroes across all pages
}

// Paginate splits heroes into pages of size and returns the page at index.
// Out-of-range indexes are clamped. A non-positive size puts everything on
// one page.
func Paginate(heroes []types.Hero, size, index int) Page {
	total := len(heroes)
	if size <= 0 {
		size = max(total, 1)
	}
	count := max((total+size-1)/size, 1)
	index = min(max(index, 0), count-1)

	start := index * size
	end := min(start+size, total)
	items := make([]types.Hero, 0, end-start)
	items = append(items, heroes[start:end]...)

	return Page{Items: items, Index: index, Count: count, Total: total}
}
