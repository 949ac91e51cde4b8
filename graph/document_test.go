package graph

import (
	"bytes"
	"testing"

	"statespace/game"

	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	g := explore(t, 2, 2, 1)

	doc, err := g.Flatten()
	require.NoError(t, err)

	t.Run("totals match the listed records", func(t *testing.T) {
		require.Equal(t, doc.TotalStates, len(doc.States))
		require.Equal(t, doc.TotalMoves, len(doc.Moves))
		require.Equal(t, [3]int{2, 2, 1}, doc.Dimensions)
	})

	t.Run("terminal flags are precomputed", func(t *testing.T) {
		terminals := 0
		for _, s := range doc.States {
			if s.IsTerminal {
				terminals++
			}
		}
		require.Equal(t, 6, terminals, "the 6 full boards are terminal on a 2x2 board")
	})
}

func TestFlattenRootCheck(t *testing.T) {
	dims, err := game.NewDims(2, 1, 1)
	require.NoError(t, err)

	t.Run("two states without incoming moves", func(t *testing.T) {
		g := NewGraph(dims)
		g.Registry().GetOrCreate(game.NewBoard(dims))
		g.Registry().GetOrCreate(game.NewBoard(dims).Apply(0, game.X))

		_, err := g.Flatten()

		require.ErrorContains(t, err, "multiple root states")
	})

	t.Run("no state without incoming moves", func(t *testing.T) {
		g := NewGraph(dims)
		a, _ := g.Registry().GetOrCreate(game.NewBoard(dims))
		b, _ := g.Registry().GetOrCreate(game.NewBoard(dims).Apply(0, game.X))
		g.AddEdge(Edge{From: a, To: b, Position: 0, Player: game.X})
		g.AddEdge(Edge{From: b, To: a, Position: 0, Player: game.O})

		_, err := g.Flatten()

		require.ErrorContains(t, err, "no root state")
	})
}

func TestAddEdgeSetSemantics(t *testing.T) {
	dims, err := game.NewDims(2, 1, 1)
	require.NoError(t, err)
	g := NewGraph(dims)
	a, _ := g.Registry().GetOrCreate(game.NewBoard(dims))
	b, _ := g.Registry().GetOrCreate(game.NewBoard(dims).Apply(0, game.X))
	edge := Edge{From: a, To: b, Position: 0, Player: game.X}

	require.True(t, g.AddEdge(edge))
	require.False(t, g.AddEdge(edge), "a duplicate move tuple must collapse")
	require.Len(t, g.Edges(), 1)
}

func TestDocumentRoundTrip(t *testing.T) {
	g := explore(t, 2, 2, 1)
	doc, err := g.Flatten()
	require.NoError(t, err)

	data, err := MarshalDocument(doc)
	require.NoError(t, err)

	decoded, err := ReadDocument(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, doc.TotalStates, decoded.TotalStates)
	require.Equal(t, doc.TotalMoves, decoded.TotalMoves)
	require.Equal(t, doc.States, decoded.States)
	require.Equal(t, doc.Moves, decoded.Moves)
}
