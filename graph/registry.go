package graph

import "statespace/game"

// Handle is a stable integer id for a registered board. Edges and tree
// nodes reference handles instead of duplicating cell content.
type Handle int

// Registry owns every distinct board discovered during a run. It guarantees
// a single live Board per cell content: repeated GetOrCreate calls with
// equal content return the same handle.
type Registry struct {
	boards []game.Board
	byKey  map[string]Handle
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Handle)}
}

// GetOrCreate registers the board if its content has not been seen before
// and reports whether it was new. Lookup cost is proportional to the board
// volume, not to the number of states registered so far.
func (r *Registry) GetOrCreate(b game.Board) (Handle, bool) {
	key := b.Key()
	if h, ok := r.byKey[key]; ok {
		return h, false
	}

	h := Handle(len(r.boards))
	r.boards = append(r.boards, b)
	r.byKey[key] = h
	return h, true
}

// Lookup returns the handle registered for the board's content, if any.
func (r *Registry) Lookup(b game.Board) (Handle, bool) {
	h, ok := r.byKey[b.Key()]
	return h, ok
}

// Board returns the board registered under h.
func (r *Registry) Board(h Handle) game.Board {
	return r.boards[h]
}

// Len returns the number of distinct boards registered.
func (r *Registry) Len() int {
	return len(r.boards)
}
