package mst

import "github.com/JoshDount/routingcore/graph"

// collectEdges returns every logical edge of g exactly once, deduplicated
// by the unordered pair {from, to} so that a directed graph carrying both
// (u,v) and (v,u) is treated as a single undirected edge — the first one
// GetAllEdges yields wins, and it keeps the From/To direction GetAllEdges
// reported. Effective weight (base x multiplier) is used,
// matching the rest of the toolkit's live-traffic-aware weighting.
// Complexity: O(V + E).
func collectEdges(g *graph.WeightedGraph) []MSTEdge {
	seen := make(map[[2]uint32]bool)
	var edges []MSTEdge
	for _, e := range g.GetAllEdges() {
		from, to := e.From, e.To
		if from > to {
			from, to = to, from
		}
		key := [2]uint32{from, to}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, MSTEdge{From: e.From, To: e.To, Weight: float64(e.EffectiveWeight())})
	}

	return edges
}

// buildAdjacency turns a canonical edge list into a bidirectional
// adjacency map, so Prim can expand from either endpoint of an edge
// regardless of the source graph's directedness.
// Complexity: O(E).
func buildAdjacency(edges []MSTEdge) map[uint32][]MSTEdge {
	adj := make(map[uint32][]MSTEdge, len(edges))
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], MSTEdge{From: e.To, To: e.From, Weight: e.Weight})
	}

	return adj
}
