package astar

import "github.com/JoshDount/routingcore/graph"

// ValidateHeuristicAdmissibility is a weak sanity check, not a proof of
// admissibility: it confirms h never returns a negative estimate from any
// node in g to target. A heuristic can pass this check and still
// overestimate some true shortest-path cost, so this does not replace
// reasoning about whether h is actually admissible for a given weight
// scheme.
// Complexity: O(V).
func ValidateHeuristicAdmissibility(g *graph.WeightedGraph, h Heuristic, target uint32) bool {
	targetNode, ok := g.GetNode(target)
	if !ok {
		return true
	}

	for _, id := range g.GetAllNodeIDs() {
		n, _ := g.GetNode(id)
		if h.Estimate(n.Lat, n.Lon, targetNode.Lat, targetNode.Lon) < 0 {
			return false
		}
	}

	return true
}
