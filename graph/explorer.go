package graph

import (
	"fmt"

	"statespace/game"
	"statespace/metrics"

	"github.com/rs/zerolog/log"
)

// Explorer exhaustively enumerates every configuration reachable from the
// empty board by alternating legal moves. It walks an explicit work stack
// instead of recursing, so depth is bounded by memory rather than the
// goroutine stack, and each distinct state is expanded at most once.
type Explorer struct {
	maxStates int
	metrics   metrics.Collector
}

type Option func(e *Explorer)

// WithMetrics attaches a collector that observes exploration progress.
func WithMetrics(c metrics.Collector) Option {
	return func(e *Explorer) {
		if c != nil {
			e.metrics = c
		}
	}
}

// WithMaxStates aborts exploration once the registry exceeds n states,
// guarding against boards whose volume makes full enumeration infeasible.
func WithMaxStates(n int) Option {
	return func(e *Explorer) {
		if n > 0 {
			e.maxStates = n
		}
	}
}

func NewExplorer(options ...Option) *Explorer {
	e := &Explorer{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Explore builds the complete state-space graph rooted at the all-empty
// board for the given dimensions. The first player moves first; the mover
// for any state follows from its occupied-cell count.
func (e *Explorer) Explore(dims game.Dims) (*Graph, error) {
	g := NewGraph(dims)
	e.metrics.Start(dims.String())

	rootHandle, _ := g.registry.GetOrCreate(game.NewBoard(dims))
	e.metrics.AddState()

	// One flag per registered handle: has this state had its successors
	// generated? States are pushed only on first discovery, so every state
	// is expanded exactly once regardless of how many paths reach it.
	expanded := make([]bool, 1, 64)
	stack := []Handle{rootHandle}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if expanded[h] {
			panic(fmt.Sprintf("state %d pushed twice onto the work stack", h))
		}
		expanded[h] = true

		board := g.registry.Board(h)
		mover := game.TurnOf(board.Occupied())

		for _, pos := range board.EmptyPositions() {
			successor := board.Apply(pos, mover)
			sh, isNew := g.registry.GetOrCreate(successor)
			if isNew {
				e.metrics.AddState()
				expanded = append(expanded, false)
				if e.maxStates > 0 && g.registry.Len() > e.maxStates {
					return nil, fmt.Errorf("state budget of %d exceeded on %s board", e.maxStates, dims)
				}
			} else {
				e.metrics.AddDedupHit()
			}

			if g.AddEdge(Edge{From: h, To: sh, Position: pos, Player: mover}) {
				e.metrics.AddMove()
			}

			// Expand a successor only on first discovery, and never past
			// the end of the game.
			if isNew {
				if successor.Terminal() {
					e.metrics.AddTerminal()
				} else {
					stack = append(stack, sh)
				}
			}
		}
		e.metrics.ObserveStackDepth(len(stack))
	}

	log.Debug().
		Int("states", g.registry.Len()).
		Int("moves", len(g.edges)).
		Msg("exploration complete")

	return g, nil
}
