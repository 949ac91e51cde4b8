package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDims(t *testing.T) {
	t.Run("accepting positive dimensions", func(t *testing.T) {
		dims, err := NewDims(3, 3, 1)

		require.NoError(t, err)
		require.Equal(t, 9, dims.Volume())
		require.Equal(t, "3x3x1", dims.String())
	})

	t.Run("rejecting non-positive dimensions", func(t *testing.T) {
		for _, bad := range [][3]int{{0, 3, 1}, {3, 0, 1}, {3, 3, 0}, {-1, 3, 1}} {
			_, err := NewDims(bad[0], bad[1], bad[2])
			require.Error(t, err, "dimensions %v should be rejected", bad)
		}
	})

	t.Run("rejecting overflowing volume", func(t *testing.T) {
		_, err := NewDims(100000, 100000, 100000)

		require.Error(t, err, "cell volume beyond the supported count should be rejected")
	})
}

func TestApply(t *testing.T) {
	dims, err := NewDims(3, 3, 1)
	require.NoError(t, err)

	t.Run("returning a new board without mutating the parent", func(t *testing.T) {
		parent := NewBoard(dims)

		child := parent.Apply(4, X)

		require.Equal(t, Empty, parent.Cells[4], "parent board should stay untouched")
		require.Equal(t, X, child.Cells[4], "child board should hold the new mark")
		require.Equal(t, 1, child.Occupied())
		require.Equal(t, 0, parent.Occupied())
	})

	t.Run("panicking on an occupied cell", func(t *testing.T) {
		board := NewBoard(dims).Apply(0, X)

		require.Panics(t, func() { board.Apply(0, O) })
	})

	t.Run("panicking on an empty mark", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(dims).Apply(0, Empty) })
	})
}

func TestHashAndKey(t *testing.T) {
	dims, err := NewDims(3, 3, 1)
	require.NoError(t, err)

	t.Run("identical content yields identical hash and key", func(t *testing.T) {
		// Reach the same configuration via two different move orders.
		a := NewBoard(dims).Apply(0, X).Apply(4, O).Apply(8, X)
		b := NewBoard(dims).Apply(8, X).Apply(4, O).Apply(0, X)

		require.Equal(t, a.Hash(), b.Hash(), "hash should depend on content only")
		require.Equal(t, a.Key(), b.Key(), "key should depend on content only")
		require.True(t, a.Equal(b))
	})

	t.Run("different content yields different keys", func(t *testing.T) {
		a := NewBoard(dims).Apply(0, X)
		b := NewBoard(dims).Apply(1, X)

		require.NotEqual(t, a.Key(), b.Key())
		require.False(t, a.Equal(b))
	})
}

func TestTurnOf(t *testing.T) {
	require.Equal(t, X, TurnOf(0), "X always moves first")
	require.Equal(t, O, TurnOf(1))
	require.Equal(t, X, TurnOf(2))
	require.Equal(t, O, TurnOf(5))
}

func TestEmptyPositions(t *testing.T) {
	dims, err := NewDims(2, 2, 1)
	require.NoError(t, err)

	board := NewBoard(dims).Apply(1, X).Apply(2, O)

	require.Equal(t, []int{0, 3}, board.EmptyPositions())
}
