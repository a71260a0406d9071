// Package heroes implements the hero store: the exclusive owner of the hero
// collection, with synchronous CRUD and simulated-latency deferred
// operations that hold a loading.Coordinator reference until released.
package heroes

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mesh-intelligence/herodex/internal/loading"
	"github.com/mesh-intelligence/herodex/internal/memory"
	"github.com/mesh-intelligence/herodex/internal/search"
	"github.com/mesh-intelligence/herodex/internal/signal"
	"github.com/mesh-intelligence/herodex/internal/sqlite"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Store owns the hero collection. Mutations are serialized through one
// mutex; reads are served from the published snapshot.
//
// Missing targets are tolerated: Update and Delete on an unknown ID change
// nothing and return nil. Errors only come from the backing table.
type Store struct {
	mu      sync.Mutex
	table   types.Table
	loading *loading.Coordinator
	heroes  *signal.Cell[[]types.Hero]

	latency time.Duration
	fault   FaultFunc
	seed    []types.Hero
	logger  *slog.Logger
}

// New creates a store over table. coord receives an Enter for every deferred
// operation started by the store. A nil coord gets a private coordinator.
func New(table types.Table, coord *loading.Coordinator, opts ...Option) (*Store, error) {
	if coord == nil {
		coord = loading.New()
	}
	s := &Store{
		table:   table,
		loading: coord,
		heroes:  signal.New([]types.Hero{}, slices.Equal[[]types.Hero]),
		latency: types.DefaultLatency,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, h := range s.seed {
		if err := table.Insert(h.Canonical()); err != nil {
			return nil, fmt.Errorf("seeding hero %d: %w", h.ID, err)
		}
	}
	s.seed = nil

	if err := s.publish(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open creates a store on the backend named in cfg, seeded with the sample
// heroes. Options given by the caller are applied after the config-derived
// ones.
func Open(cfg types.Config, coord *loading.Coordinator, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var table types.Table
	switch cfg.Backend {
	case types.BackendSQLite:
		t, err := sqlite.Open()
		if err != nil {
			return nil, fmt.Errorf("open sqlite table: %w", err)
		}
		table = t
	default:
		table = memory.NewTable()
	}

	base := []Option{WithLatency(cfg.Latency), WithSeed(SampleHeroes())}
	s, err := New(table, coord, append(base, opts...)...)
	if err != nil {
		table.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the backing table.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Close()
}

// Heroes is the reactive view of the collection. Subscribers are notified
// after each mutation that changes the collection.
func (s *Store) Heroes() signal.Readonly[[]types.Hero] {
	return s.heroes
}

// Loading returns the coordinator the store reports deferred operations to.
func (s *Store) Loading() *loading.Coordinator {
	return s.loading
}

// GetAll returns a snapshot of the collection in insertion order.
func (s *Store) GetAll() []types.Hero {
	return slices.Clone(s.heroes.Get())
}

// GetByID returns the hero with the given ID. The boolean is false when no
// such hero exists.
func (s *Store) GetByID(id int) (types.Hero, bool) {
	for _, h := range s.heroes.Get() {
		if h.ID == id {
			return h, true
		}
	}
	return types.Hero{}, false
}

// Search returns heroes whose name contains term, ignoring case and
// surrounding whitespace. A blank term matches every hero.
func (s *Store) Search(term string) []types.Hero {
	return search.Filter(s.heroes.Get(), term)
}

// Create assigns the next ID (one past the current maximum, 1 when empty),
// upper-cases the name and appends the hero.
func (s *Store) Create(d types.Draft) (types.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, err := s.table.MaxID()
	if err != nil {
		return types.Hero{}, fmt.Errorf("create hero: %w", err)
	}
	h := d.WithID(maxID + 1)
	if err := s.table.Insert(h); err != nil {
		return types.Hero{}, fmt.Errorf("create hero: %w", err)
	}
	s.logger.Debug("hero created", "id", h.ID, "name", h.Name)
	return h, s.publish()
}

// Update replaces the hero with the same ID, upper-casing its name. An
// unknown ID is a silent no-op.
func (s *Store) Update(h types.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h = h.Canonical()
	if err := s.table.Replace(h); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.logger.Debug("update ignored, hero not found", "id", h.ID)
			return nil
		}
		return fmt.Errorf("update hero %d: %w", h.ID, err)
	}
	s.logger.Debug("hero updated", "id", h.ID)
	return s.publish()
}

// Delete removes the hero with the given ID. An unknown ID is a silent no-op.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Delete(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.logger.Debug("delete ignored, hero not found", "id", id)
			return nil
		}
		return fmt.Errorf("delete hero %d: %w", id, err)
	}
	s.logger.Debug("hero deleted", "id", id)
	return s.publish()
}

// Reset empties the collection.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Clear(); err != nil {
		return fmt.Errorf("reset heroes: %w", err)
	}
	return s.publish()
}

// UpdateAsync simulates sending h to a remote authority. It calls Enter on
// the coordinator immediately and resolves with the upper-cased hero after
// the configured latency. The store is not modified; the caller applies the
// result with Update and must release the coordinator, typically with
// Finally(coord.Exit).
func (s *Store) UpdateAsync(h types.Hero) *Deferred[types.Hero] {
	s.loading.Enter()
	d := newDeferred[types.Hero]()
	out := h.Canonical()
	s.logger.Debug("deferred operation started", "op", OpUpdate, "op_id", d.ID(), "id", h.ID)

	time.AfterFunc(s.latency, func() {
		if err := s.injectFault(OpUpdate, out); err != nil {
			s.logger.Debug("deferred operation failed", "op", OpUpdate, "op_id", d.ID(), "err", err)
			d.reject(err)
			return
		}
		s.logger.Debug("deferred operation resolved", "op", OpUpdate, "op_id", d.ID())
		d.resolve(out)
	})
	return d
}

// DeleteAsync simulates asking a remote authority to delete a hero. It has
// the same coordinator contract as UpdateAsync and resolves with true. The
// caller removes the hero with Delete once it resolves.
func (s *Store) DeleteAsync() *Deferred[bool] {
	s.loading.Enter()
	d := newDeferred[bool]()
	s.logger.Debug("deferred operation started", "op", OpDelete, "op_id", d.ID())

	time.AfterFunc(s.latency, func() {
		if err := s.injectFault(OpDelete, types.Hero{}); err != nil {
			s.logger.Debug("deferred operation failed", "op", OpDelete, "op_id", d.ID(), "err", err)
			d.reject(err)
			return
		}
		s.logger.Debug("deferred operation resolved", "op", OpDelete, "op_id", d.ID())
		d.resolve(true)
	})
	return d
}

func (s *Store) injectFault(op string, h types.Hero) error {
	if s.fault == nil {
		return nil
	}
	if err := s.fault(op, h); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrOperationFailed, op, err)
	}
	return nil
}

// publish refreshes the reactive view from the table. The caller holds s.mu.
func (s *Store) publish() error {
	list, err := s.table.List()
	if err != nil {
		return fmt.Errorf("refresh heroes: %w", err)
	}
	s.heroes.Set(list)
	return nil
}
