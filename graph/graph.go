package graph

import "statespace/game"

// Edge records one legal move between two registered states: the cell at
// Position changes from empty to Player's mark between From and To.
type Edge struct {
	From     Handle
	To       Handle
	Position int
	Player   game.Cell
}

// Graph accumulates every state and every move discovered during
// exploration. It is mutated by a single exploration pass and read-only
// afterwards.
type Graph struct {
	dims     game.Dims
	registry *Registry
	edges    []Edge
	edgeSet  map[Edge]struct{}
}

func NewGraph(dims game.Dims) *Graph {
	return &Graph{
		dims:     dims,
		registry: NewRegistry(),
		edgeSet:  make(map[Edge]struct{}),
	}
}

// AddEdge records a move with set semantics: a duplicate
// (from, to, position, player) tuple collapses into the existing edge.
// It reports whether the edge was new.
func (g *Graph) AddEdge(e Edge) bool {
	if _, ok := g.edgeSet[e]; ok {
		return false
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	return true
}

// Registry returns the state store backing the graph.
func (g *Graph) Registry() *Registry {
	return g.registry
}

// Edges returns all recorded moves in discovery order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Dims returns the board dimensions shared by every state in the graph.
func (g *Graph) Dims() game.Dims {
	return g.dims
}
