package search

import (
	"github.com/mesh-intelligence/herodex/internal/signal"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Source supplies the current collection.
type Source func() []types.Hero

// Mode selects the normalization a Projection applies.
type Mode int

const (
	// ModeStore trims and case-folds the term.
	ModeStore Mode = iota
	// ModeCompact additionally ignores whitespace.
	ModeCompact
)

// Projection is a filtered view over a Source driven by a mutable term.
// Results are recomputed on every call.
type Projection struct {
	source Source
	mode   Mode
	term   *signal.Cell[string]
}

// NewProjection creates a projection with an empty term.
func NewProjection(source Source, mode Mode) *Projection {
	return &Projection{
		source: source,
		mode:   mode,
		term:   signal.Comparable(""),
	}
}

// SetTerm replaces the search term.
func (p *Projection) SetTerm(term string) {
	p.term.Set(term)
}

// Term returns the current search term as entered.
func (p *Projection) Term() string {
	return p.term.Get()
}

// TermSignal lets observers react to term edits.
func (p *Projection) TermSignal() signal.Readonly[string] {
	return p.term
}

// Results filters the current collection by the current term.
func (p *Projection) Results() []types.Hero {
	heroes := p.source()
	if p.mode == ModeCompact {
		return FilterCompact(heroes, p.term.Get())
	}
	return Filter(heroes, p.term.Get())
}
