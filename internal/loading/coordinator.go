// Package loading implements the reference-counted busy indicator shared by
// overlapping deferred operations.
package loading

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mesh-intelligence/herodex/internal/signal"
)

// Coordinator is a reentrant busy/idle flag. Every Enter must eventually be
// paired with an Exit; the flag stays busy until the last outstanding
// operation exits.
type Coordinator struct {
	mu     sync.Mutex
	count  int
	busy   *signal.Cell[bool]
	logger *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for busy/idle transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an idle Coordinator.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		busy:   signal.Comparable(false),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enter records one more outstanding operation. The 0→1 transition makes the
// coordinator busy.
func (c *Coordinator) Enter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
	if c.count == 1 {
		c.busy.Set(true)
		c.logger.Debug("loading busy")
	}
}

// Exit records that one operation finished. The counter never goes below
// zero; Exit on an idle coordinator is a no-op.
func (c *Coordinator) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count > 0 {
		c.count--
	}
	if c.count == 0 && c.busy.Set(false) {
		c.logger.Debug("loading idle")
	}
}

// ForceIdle drops every outstanding Enter and makes the coordinator idle.
func (c *Coordinator) ForceIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count > 0 {
		c.logger.Debug("loading forced idle", "outstanding", c.count)
	}
	c.count = 0
	c.busy.Set(false)
}

// Busy reports whether at least one operation is outstanding.
func (c *Coordinator) Busy() bool {
	return c.busy.Get()
}

// Count returns the number of outstanding operations.
func (c *Coordinator) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// BusySignal exposes the busy flag to observers such as a loading overlay.
// Observers are notified while the coordinator lock is held, so they may read
// the signal but must not call back into the Coordinator.
func (c *Coordinator) BusySignal() signal.Readonly[bool] {
	return c.busy
}
