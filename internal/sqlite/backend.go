// Package sqlite implements a hero table on an in-memory SQLite database.
// Nothing is written to disk; the data lives as long as the process holds the
// table open.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Compile-time interface check: Table must implement types.Table.
var _ types.Table = (*Table)(nil)

// Table implements types.Table using SQLite as the query engine.
type Table struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates a private in-memory database and applies the schema.
func Open() (*Table, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// Every connection to :memory: gets its own database; pin one.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	return &Table{db: db}, nil
}

// Close releases the database. The data is gone afterwards. Idempotent.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		return nil
	}
	err := t.db.Close()
	t.db = nil
	return err
}

// List returns every hero ordered by insertion.
func (t *Table) List() ([]types.Hero, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.db == nil {
		return nil, types.ErrClosed
	}
	rows, err := t.db.Query("SELECT hero_id, name, power, description FROM heroes ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("listing heroes: %w", err)
	}
	defer rows.Close()

	heroes := []types.Hero{}
	for rows.Next() {
		h, err := hydrateHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning hero: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating heroes: %w", err)
	}
	return heroes, nil
}

// Get returns the hero with the given ID or types.ErrNotFound.
func (t *Table) Get(id int) (types.Hero, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.db == nil {
		return types.Hero{}, types.ErrClosed
	}
	row := t.db.QueryRow(
		"SELECT hero_id, name, power, description FROM heroes WHERE hero_id = ?", id,
	)
	h, err := hydrateHero(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Hero{}, types.ErrNotFound
		}
		return types.Hero{}, fmt.Errorf("getting hero %d: %w", id, err)
	}
	return h, nil
}

// Insert appends h. The ID must be positive and unused.
func (t *Table) Insert(h types.Hero) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		return types.ErrClosed
	}
	if h.ID <= 0 {
		return types.ErrInvalidID
	}
	exists, err := t.exists(h.ID)
	if err != nil {
		return err
	}
	if exists {
		return types.ErrInvalidID
	}
	_, err = t.db.Exec(
		"INSERT INTO heroes (hero_id, name, power, description) VALUES (?, ?, ?, ?)",
		h.ID, h.Name, h.Power, h.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting hero %d: %w", h.ID, err)
	}
	return nil
}

// Replace overwrites the hero with h.ID; its seq, and so its position, is kept.
func (t *Table) Replace(h types.Hero) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		return types.ErrClosed
	}
	res, err := t.db.Exec(
		"UPDATE heroes SET name = ?, power = ?, description = ? WHERE hero_id = ?",
		h.Name, h.Power, h.Description, h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating hero %d: %w", h.ID, err)
	}
	return requireAffected(res)
}

// Delete removes the hero with the given ID.
func (t *Table) Delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		return types.ErrClosed
	}
	res, err := t.db.Exec("DELETE FROM heroes WHERE hero_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting hero %d: %w", id, err)
	}
	return requireAffected(res)
}

// Clear removes every hero.
func (t *Table) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		return types.ErrClosed
	}
	if _, err := t.db.Exec("DELETE FROM heroes"); err != nil {
		return fmt.Errorf("clearing heroes: %w", err)
	}
	return nil
}

// MaxID returns the largest hero ID, or 0 when the table is empty.
func (t *Table) MaxID() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.db == nil {
		return 0, types.ErrClosed
	}
	var maxID int
	if err := t.db.QueryRow("SELECT COALESCE(MAX(hero_id), 0) FROM heroes").Scan(&maxID); err != nil {
		return 0, fmt.Errorf("reading max hero id: %w", err)
	}
	return maxID, nil
}

func (t *Table) exists(id int) (bool, error) {
	var one int
	err := t.db.QueryRow("SELECT 1 FROM heroes WHERE hero_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking hero existence: %w", err)
	}
	return true, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func hydrateHero(s scanner) (types.Hero, error) {
	var h types.Hero
	err := s.Scan(&h.ID, &h.Name, &h.Power, &h.Description)
	return h, err
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
