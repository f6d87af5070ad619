package mst

import (
	"sort"

	"github.com/JoshDount/routingcore/graph"
)

// LowerBound returns the sum of the n-1 lightest edge weights in g, where
// n is the node count. This is always <= the true MST weight (any
// spanning tree needs n-1 edges, and no n-1 edges can weigh less than the
// n-1 lightest available), so it is useful as a cheap diagnostic
// comparison against a computed Result.TotalWeight — it is not itself an
// MST, since the lightest edges need not form a tree.
//
// Complexity: O(E log E).
func LowerBound(g *graph.WeightedGraph) float64 {
	if g == nil {
		return 0
	}

	n := g.NumNodes()
	if n <= 1 {
		return 0
	}

	edges := collectEdges(g)
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	need := n - 1
	if need > len(edges) {
		need = len(edges)
	}

	var sum float64
	for _, e := range edges[:need] {
		sum += e.Weight
	}

	return sum
}
