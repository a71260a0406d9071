// Package memory provides a slice-backed hero table kept in insertion order.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Compile-time interface check: Table must implement types.Table.
var _ types.Table = (*Table)(nil)

// Table stores heroes in a slice guarded by a mutex.
type Table struct {
	mu     sync.RWMutex
	heroes []types.Hero
	closed bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// List returns a copy of every hero in insertion order.
func (t *Table) List() ([]types.Hero, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return nil, types.ErrClosed
	}
	out := make([]types.Hero, len(t.heroes))
	copy(out, t.heroes)
	return out, nil
}

// Get returns the hero with the given ID or types.ErrNotFound.
func (t *Table) Get(id int) (types.Hero, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return types.Hero{}, types.ErrClosed
	}
	i := t.indexOf(id)
	if i < 0 {
		return types.Hero{}, types.ErrNotFound
	}
	return t.heroes[i], nil
}

// Insert appends h. The ID must be positive and unused.
func (t *Table) Insert(h types.Hero) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return types.ErrClosed
	}
	if h.ID <= 0 || t.indexOf(h.ID) >= 0 {
		return types.ErrInvalidID
	}
	t.heroes = append(t.heroes, h)
	return nil
}

// Replace overwrites the hero with h.ID in place.
func (t *Table) Replace(h types.Hero) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return types.ErrClosed
	}
	i := t.indexOf(h.ID)
	if i < 0 {
		return types.ErrNotFound
	}
	t.heroes[i] = h
	return nil
}

// Delete removes the hero with the given ID.
func (t *Table) Delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return types.ErrClosed
	}
	i := t.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}
	t.heroes = append(t.heroes[:i:i], t.heroes[i+1:]...)
	return nil
}

// Clear removes every hero.
func (t *Table) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return types.ErrClosed
	}
	t.heroes = nil
	return nil
}

// MaxID returns the largest ID, or 0 when the table is empty.
func (t *Table) MaxID() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return 0, types.ErrClosed
	}
	maxID := 0
	for _, h := range t.heroes {
		maxID = max(maxID, h.ID)
	}
	return maxID, nil
}

// Close marks the table closed. Idempotent.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.heroes = nil
	return nil
}

func (t *Table) indexOf(id int) int {
	for i, h := range t.heroes {
		if h.ID == id {
			return i
		}
	}
	return -1
}
