package dijkstra

import "github.com/JoshDount/routingcore/graph"

// ValidateNonNegativeWeights reports whether every edge in g has a
// non-negative effective weight. FindShortestPaths and FindShortestPathTo
// never fail on a negative-weight edge — they silently skip it — so callers
// wanting strict validation should call this first and reject the graph
// themselves if it returns false.
// Complexity: O(V + E).
func ValidateNonNegativeWeights(g *graph.WeightedGraph) bool {
	if g == nil {
		return true
	}

	for _, id := range g.GetAllNodeIDs() {
		for _, e := range g.GetNeighbors(id) {
			if e.EffectiveWeight() < 0 {
				return false
			}
		}
	}

	return true
}
