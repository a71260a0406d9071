package heroes

import (
	"log/slog"
	"time"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Deferred operation names passed to a FaultFunc.
const (
	OpUpdate = "update"
	OpDelete = "delete"
)

// FaultFunc decides whether a deferred operation fails. It is called when the
// simulated latency elapses; a non-nil error rejects the operation. For
// OpDelete the hero argument is the zero value.
type FaultFunc func(op string, hero types.Hero) error

// Option configures a Store.
type Option func(*Store)

// WithLatency sets the simulated round-trip time of UpdateAsync and
// DeleteAsync.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFault installs a fault injector for deferred operations.
func WithFault(f FaultFunc) Option {
	return func(s *Store) { s.fault = f }
}

// WithSeed inserts heroes when the store is created. Names are upper-cased.
func WithSeed(heroes []types.Hero) Option {
	return func(s *Store) { s.seed = heroes }
}
