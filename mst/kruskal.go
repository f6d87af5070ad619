package mst

import (
	"sort"

	"github.com/JoshDount/routingcore/graph"
	"github.com/JoshDount/routingcore/unionfind"
)

// Kruskal computes a minimum spanning tree (or forest, if g is
// disconnected) of g by sorting every edge ascending by effective weight
// and greedily unioning components.
//
// Returns ErrInvalidGraph only if g is nil; a disconnected g is a valid
// input that yields Result.IsConnected == false, not an error.
//
// Complexity: O(E log E + α(V)·E).
func Kruskal(g *graph.WeightedGraph) (*Result, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}

	result := newResult(MethodKruskal)

	ids := g.GetAllNodeIDs()
	n := len(ids)
	result.NodesInMST = n
	if n <= 1 {
		result.IsConnected = true
		return result, nil
	}

	edges := collectEdges(g)
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	uf := unionfind.New()
	for _, id := range ids {
		uf.MakeSet(id)
	}

	for _, e := range edges {
		if len(result.Edges) == n-1 {
			break
		}
		if uf.Union(e.From, e.To) {
			result.Edges = append(result.Edges, e)
			result.TotalWeight += e.Weight
		}
	}

	result.IsConnected = len(result.Edges) == n-1
	result.NodesProcessed = len(result.Edges) + 1

	return result, nil
}
