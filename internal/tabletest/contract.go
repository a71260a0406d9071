// Package tabletest holds the behavioral contract every types.Table backend
// must satisfy. Backend packages call Run from their own tests.
package tabletest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Factory returns a fresh, empty table. Implementations should register
// cleanup with t.Cleanup.
type Factory func(t *testing.T) types.Table

func hero(id int, name string) types.Hero {
	return types.Hero{ID: id, Name: name, Power: "power " + name, Description: "about " + name}
}

// Run executes the table contract against tables produced by newTable.
func Run(t *testing.T, newTable Factory) {
	t.Helper()

	t.Run("empty table", func(t *testing.T) {
		tbl := newTable(t)
		list, err := tbl.List()
		require.NoError(t, err)
		assert.Empty(t, list)

		maxID, err := tbl.MaxID()
		require.NoError(t, err)
		assert.Equal(t, 0, maxID)

		_, err = tbl.Get(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("insert keeps insertion order", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(3, "C")))
		require.NoError(t, tbl.Insert(hero(1, "A")))
		require.NoError(t, tbl.Insert(hero(2, "B")))

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Equal(t, []types.Hero{hero(3, "C"), hero(1, "A"), hero(2, "B")}, list)

		maxID, err := tbl.MaxID()
		require.NoError(t, err)
		assert.Equal(t, 3, maxID)
	})

	t.Run("insert rejects invalid or duplicate id", func(t *testing.T) {
		tbl := newTable(t)
		assert.ErrorIs(t, tbl.Insert(hero(0, "zero")), types.ErrInvalidID)
		assert.ErrorIs(t, tbl.Insert(hero(-1, "neg")), types.ErrInvalidID)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		assert.ErrorIs(t, tbl.Insert(hero(1, "again")), types.ErrInvalidID)

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("get returns stored hero", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))

		got, err := tbl.Get(1)
		require.NoError(t, err)
		assert.Equal(t, hero(1, "A"), got)
	})

	t.Run("replace keeps position", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		require.NoError(t, tbl.Insert(hero(2, "B")))
		require.NoError(t, tbl.Insert(hero(3, "C")))

		updated := types.Hero{ID: 2, Name: "UPDATED", Power: "p", Description: "d"}
		require.NoError(t, tbl.Replace(updated))

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Equal(t, []types.Hero{hero(1, "A"), updated, hero(3, "C")}, list)
	})

	t.Run("replace missing returns not found", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		assert.ErrorIs(t, tbl.Replace(hero(9, "X")), types.ErrNotFound)

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Equal(t, []types.Hero{hero(1, "A")}, list)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		require.NoError(t, tbl.Insert(hero(2, "B")))
		require.NoError(t, tbl.Insert(hero(3, "C")))

		require.NoError(t, tbl.Delete(2))
		assert.ErrorIs(t, tbl.Delete(2), types.ErrNotFound)

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Equal(t, []types.Hero{hero(1, "A"), hero(3, "C")}, list)
	})

	t.Run("reinsert after delete appends", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		require.NoError(t, tbl.Insert(hero(2, "B")))
		require.NoError(t, tbl.Delete(1))
		require.NoError(t, tbl.Insert(hero(1, "A2")))

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Equal(t, []types.Hero{hero(2, "B"), hero(1, "A2")}, list)
	})

	t.Run("clear empties the table", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))
		require.NoError(t, tbl.Insert(hero(2, "B")))
		require.NoError(t, tbl.Clear())

		list, err := tbl.List()
		require.NoError(t, err)
		assert.Empty(t, list)

		maxID, err := tbl.MaxID()
		require.NoError(t, err)
		assert.Equal(t, 0, maxID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Insert(hero(1, "A")))

		list, err := tbl.List()
		require.NoError(t, err)
		list[0].Name = "MUTATED"

		got, err := tbl.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Name)
	})

	t.Run("operations after close fail", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.Close())
		require.NoError(t, tbl.Close(), "close is idempotent")

		_, err := tbl.List()
		assert.ErrorIs(t, err, types.ErrClosed)
		assert.ErrorIs(t, tbl.Insert(hero(1, "A")), types.ErrClosed)
	})
}
