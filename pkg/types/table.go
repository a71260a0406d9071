package types

import "errors"

// Table provides the storage operations a hero backend must support.
// Backends keep heroes in insertion order; Replace keeps the position of the
// replaced entry.
type Table interface {
	// List returns every hero in insertion order.
	List() ([]Hero, error)

	// Get retrieves the hero with the given ID.
	// Returns ErrNotFound if no hero exists with that ID.
	Get(id int) (Hero, error)

	// Insert appends a hero. Returns ErrInvalidID if the ID is not positive
	// or already taken.
	Insert(h Hero) error

	// Replace overwrites the hero with the same ID in place.
	// Returns ErrNotFound if no hero exists with that ID.
	Replace(h Hero) error

	// Delete removes the hero with the given ID.
	// Returns ErrNotFound if no hero exists with that ID.
	Delete(id int) error

	// Clear removes every hero.
	Clear() error

	// MaxID returns the largest ID in the table, or 0 when it is empty.
	MaxID() (int, error)

	// Close releases backend resources. Idempotent.
	Close() error
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("hero not found")
	ErrInvalidID   = errors.New("invalid hero ID")
	ErrInvalidData = errors.New("invalid hero data")
	ErrClosed      = errors.New("table is closed")
)

// Orchestration errors.
var (
	ErrMissingID       = errors.New("hero ID missing in edit mode")
	ErrOperationFailed = errors.New("deferred operation failed")
)
