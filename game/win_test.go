package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from a mark string, one rune per cell in scan
// order: 'X', 'O', or '.' for empty.
func boardFrom(t *testing.T, dims Dims, marks string) Board {
	t.Helper()
	require.Len(t, marks, dims.Volume(), "mark string must cover the whole board")

	board := NewBoard(dims)
	for i, r := range marks {
		switch r {
		case 'X':
			board.Cells[i] = X
		case 'O':
			board.Cells[i] = O
		case '.':
		default:
			t.Fatalf("unknown mark %q", r)
		}
	}
	return board
}

func TestWinner(t *testing.T) {
	dims, err := NewDims(3, 3, 1)
	require.NoError(t, err)

	t.Run("detecting a row", func(t *testing.T) {
		board := boardFrom(t, dims, "XXXOO....")

		require.True(t, board.Winner(X))
		require.False(t, board.Winner(O))
	})

	t.Run("detecting a column", func(t *testing.T) {
		board := boardFrom(t, dims, "OX.OX.O..")

		require.True(t, board.Winner(O))
		require.False(t, board.Winner(X))
	})

	t.Run("detecting the down-right diagonal", func(t *testing.T) {
		board := boardFrom(t, dims, "X...X...X")

		require.True(t, board.Winner(X))
	})

	t.Run("detecting the down-left diagonal", func(t *testing.T) {
		board := boardFrom(t, dims, "..X.X.X..")

		require.True(t, board.Winner(X))
	})

	t.Run("no winner on a scattered board", func(t *testing.T) {
		board := boardFrom(t, dims, "XOXOXOOXO")

		require.False(t, board.Winner(X))
		require.False(t, board.Winner(O))
	})

	t.Run("empty player never wins", func(t *testing.T) {
		require.False(t, NewBoard(dims).Winner(Empty), "empty cells must not count as a line")
	})
}

func TestWinnerAcrossLayers(t *testing.T) {
	dims, err := NewDims(3, 3, 3)
	require.NoError(t, err)

	t.Run("a line inside one layer wins", func(t *testing.T) {
		board := NewBoard(dims)
		// Middle layer row y=1: cells 12, 13, 14.
		board.Cells[12], board.Cells[13], board.Cells[14] = X, X, X

		require.True(t, board.Winner(X))
	})

	t.Run("a line through layers does not win", func(t *testing.T) {
		board := NewBoard(dims)
		// Same (x, y) on all three layers: cells 0, 9, 18.
		board.Cells[0], board.Cells[9], board.Cells[18] = X, X, X

		require.False(t, board.Winner(X), "lines never cross layers")
	})
}

func TestWinnerDegenerateBoards(t *testing.T) {
	t.Run("2x2 board admits no line of three", func(t *testing.T) {
		dims, err := NewDims(2, 2, 1)
		require.NoError(t, err)

		board := boardFrom(t, dims, "XXXX")

		require.False(t, board.Winner(X), "no triple fits on a 2x2 board")
	})

	t.Run("1x3 board allows a column only", func(t *testing.T) {
		dims, err := NewDims(1, 3, 1)
		require.NoError(t, err)

		board := boardFrom(t, dims, "XXX")

		require.True(t, board.Winner(X))
	})
}

func TestFullAndTerminal(t *testing.T) {
	dims, err := NewDims(2, 2, 1)
	require.NoError(t, err)

	t.Run("full board", func(t *testing.T) {
		board := boardFrom(t, dims, "XOOX")

		require.True(t, board.Full())
		require.True(t, board.Terminal(), "a full board is terminal even without a winner")
	})

	t.Run("board with an empty cell", func(t *testing.T) {
		board := boardFrom(t, dims, "XOO.")

		require.False(t, board.Full())
		require.False(t, board.Terminal())
	})
}
