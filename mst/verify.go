package mst

import "github.com/JoshDount/routingcore/graph"

// weightTolerance bounds the acceptable drift between a Result edge's
// stored weight and the weight currently on the source graph, absorbing
// float32-to-float64 widening error.
const weightTolerance = 1e-6

// VerifyMST checks a Result against its source graph: that the edge count
// matches NodesInMST-1, that every edge in the result actually exists in
// g (checked in both directions, since g may store it the other way for
// an undirected graph, or as the reverse directed edge under the
// treat-as-undirected convention), and that each edge's stored weight
// matches g's current effective weight within weightTolerance.
//
// Complexity: O(E · deg) worst case.
func VerifyMST(g *graph.WeightedGraph, result *Result) bool {
	if g == nil || result == nil {
		return false
	}
	if !result.IsConnected {
		return false
	}
	if len(result.Edges) != result.NodesInMST-1 {
		return false
	}

	for _, e := range result.Edges {
		edge, ok := g.GetEdge(e.From, e.To)
		if !ok {
			edge, ok = g.GetEdge(e.To, e.From)
		}
		if !ok {
			return false
		}
		if diff := float64(edge.EffectiveWeight()) - e.Weight; diff > weightTolerance || diff < -weightTolerance {
			return false
		}
	}

	return true
}
