package dataset

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// GraphNode is one node of the synthetic directed-graph dataset.
type GraphNode struct {
	ID       int   `json:"id"`
	Owner    int   `json:"owner"`
	Priority int   `json:"priority"`
	Edges    []int `json:"edges"`
}

// GraphDataset is the random directed graph consumed by attractor
// benchmarks.
type GraphDataset struct {
	NodeCount int         `json:"node_count"`
	Nodes     []GraphNode `json:"nodes"`
}

// GenerateGraph builds a random directed graph of n nodes. Each node gets a
// random owner in {0,1}, a priority in [0,15], and between 1 and maxOut
// outgoing edges to distinct targets, never to itself. Edge targets are
// sorted, so a fixed seed produces identical output on every run.
func GenerateGraph(n, maxOut int, seed uint64) (GraphDataset, error) {
	if n < 1 {
		return GraphDataset{}, fmt.Errorf("node count must be at least 1, got %d", n)
	}
	if maxOut < 1 {
		return GraphDataset{}, fmt.Errorf("max out-degree must be at least 1, got %d", maxOut)
	}
	// A node cannot target itself, so out-degree is capped at n-1.
	if maxOut > n-1 {
		maxOut = n - 1
	}

	rng := rand.New(rand.NewSource(seed))

	nodes := make([]GraphNode, 0, n)
	for i := 0; i < n; i++ {
		node := GraphNode{
			ID:       i,
			Owner:    rng.Intn(2),
			Priority: rng.Intn(16),
			Edges:    []int{},
		}

		if maxOut > 0 {
			outDegree := rng.Intn(maxOut) + 1
			targets := make(map[int]struct{}, outDegree)
			for len(targets) < outDegree {
				t := rng.Intn(n)
				if t != i {
					targets[t] = struct{}{}
				}
			}
			for t := range targets {
				node.Edges = append(node.Edges, t)
			}
			sort.Ints(node.Edges)
		}

		nodes = append(nodes, node)
	}

	return GraphDataset{NodeCount: n, Nodes: nodes}, nil
}
