package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// TreeNode is one node of the synthetic rooted-tree dataset. Value is set
// for leaves only and stays null for internal nodes.
type TreeNode struct {
	ID       int   `json:"id"`
	Owner    int   `json:"owner"`
	Value    *int  `json:"value"`
	Children []int `json:"children"`
}

// TreeDataset is the random rooted tree consumed by minimax benchmarks.
type TreeDataset struct {
	NodeCount int        `json:"node_count"`
	Root      int        `json:"root"`
	Nodes     []TreeNode `json:"nodes"`
}

// GenerateTree builds a random rooted tree of n nodes breadth-first: each
// dequeued parent receives between 1 and maxChildren children until the
// node budget is exhausted. Nodes left without children are leaves and get
// a uniformly random value in [leafMin, leafMax]. A fixed seed produces
// identical output on every run.
func GenerateTree(n, maxChildren, leafMin, leafMax int, seed uint64) (TreeDataset, error) {
	if n < 1 {
		return TreeDataset{}, fmt.Errorf("node count must be at least 1, got %d", n)
	}
	if maxChildren < 1 {
		return TreeDataset{}, fmt.Errorf("max children must be at least 1, got %d", maxChildren)
	}
	if leafMax < leafMin {
		return TreeDataset{}, fmt.Errorf("leaf value range [%d, %d] is empty", leafMin, leafMax)
	}

	rng := rand.New(rand.NewSource(seed))

	nodes := make([]TreeNode, 0, n)
	nodes = append(nodes, TreeNode{ID: 0, Owner: 0, Children: []int{}})
	nextID := 1
	queue := []int{0}

	for nextID < n && len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		remaining := n - nextID
		maxHere := maxChildren
		if maxHere > remaining {
			maxHere = remaining
		}

		numChildren := rng.Intn(maxHere) + 1
		children := []int{}
		for i := 0; i < numChildren; i++ {
			nodes = append(nodes, TreeNode{
				ID:       nextID,
				Owner:    rng.Intn(2),
				Children: []int{},
			})
			children = append(children, nextID)
			queue = append(queue, nextID)
			nextID++
			if nextID >= n {
				break
			}
		}
		nodes[parent].Children = children
	}

	// Any node without children is a leaf and receives a value.
	for i := range nodes {
		if len(nodes[i].Children) == 0 {
			v := leafMin + rng.Intn(leafMax-leafMin+1)
			nodes[i].Value = &v
		}
	}

	return TreeDataset{NodeCount: len(nodes), Root: 0, Nodes: nodes}, nil
}
