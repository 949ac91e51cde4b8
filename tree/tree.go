package tree

import (
	"errors"
	"sort"

	"statespace/game"
	"statespace/graph"
)

// Node is one state in the reconstructed game tree. A state reachable via
// several move orders appears once per located parent, so the tree discards
// the sharing present in the underlying graph.
type Node struct {
	State      []game.Cell `json:"state"`
	IsTerminal bool        `json:"is_terminal"`
	Children   []*Node     `json:"children"`
}

// Build reconstructs a rooted tree from the flattened state list. The
// flattened form carries no parent pointers, so a state's parent is
// inferred by clearing its last occupied cell in scan order. That guess
// assumes the most recent move is recoverable from content alone, which
// fails once several move orders reach the same configuration: states whose
// inferred parent is not present in the tree are dropped, and their count
// is returned as the orphan diagnostic instead of being lost silently.
func Build(doc graph.Document) (*Node, int, error) {
	// Sort by occupied count ascending so every potential parent is
	// attached before its children are considered. The sort is stable to
	// keep child ordering deterministic.
	states := make([]graph.StateRecord, len(doc.States))
	copy(states, doc.States)
	sort.SliceStable(states, func(i, j int) bool {
		return occupied(states[i].State) < occupied(states[j].State)
	})

	var root *Node
	orphans := 0
	for _, record := range states {
		node := &Node{
			State:      record.State,
			IsTerminal: record.IsTerminal,
			Children:   []*Node{},
		}

		parentState := inferParent(record.State)
		if parentState == nil {
			if root != nil {
				return nil, 0, errors.New("multiple all-empty root states in flattened graph")
			}
			root = node
			continue
		}

		if root == nil {
			return nil, 0, errors.New("flattened graph has no all-empty root state")
		}

		parent := findNode(root, parentState)
		if parent == nil {
			orphans++
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if root == nil {
		return nil, 0, errors.New("flattened graph has no states")
	}
	return root, orphans, nil
}

// inferParent returns the state's configuration with its last occupied cell
// in scan order cleared, or nil for the all-empty state.
func inferParent(cells []game.Cell) []game.Cell {
	last := -1
	for i, c := range cells {
		if c != game.Empty {
			last = i
		}
	}
	if last < 0 {
		return nil
	}

	parent := make([]game.Cell, len(cells))
	copy(parent, cells)
	parent[last] = game.Empty
	return parent
}

// findNode searches the tree depth-first for the node holding target.
// Linear in the tree size, acceptable for small-to-moderate boards.
func findNode(n *Node, target []game.Cell) *Node {
	if equal(n.State, target) {
		return n
	}
	for _, child := range n.Children {
		if found := findNode(child, target); found != nil {
			return found
		}
	}
	return nil
}

func occupied(cells []game.Cell) int {
	count := 0
	for _, c := range cells {
		if c != game.Empty {
			count++
		}
	}
	return count
}

func equal(a, b []game.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
