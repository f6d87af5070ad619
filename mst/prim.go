package mst

import (
	"github.com/JoshDount/routingcore/graph"
	"github.com/JoshDount/routingcore/heap"
)

func edgeLess(a, b MSTEdge) bool { return a.Weight < b.Weight }

// Prim computes a minimum spanning tree of g by growing a single tree
// outward from seed, using a min-heap of candidate edges with lazy
// deletion: an edge whose far endpoint has already joined the tree is
// discarded when it is popped, rather than removed from the heap eagerly.
//
// Returns ErrInvalidGraph if g is nil, or ErrUnknownSeed if seed is not a
// node of g. A disconnected g is a valid input: Prim grows as far as it
// can from seed and returns Result.IsConnected == false with a partial
// tree, not an error.
//
// Complexity: O(E log V).
func Prim(g *graph.WeightedGraph, seed uint32) (*Result, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if !g.HasNode(seed) {
		return nil, ErrUnknownSeed
	}

	return prim(g, seed)
}

// PrimAuto is Prim with the seed chosen automatically: the node with the
// smallest degree (ties broken by insertion order: the node added first
// wins), matching the auto-start variant.
//
// Complexity: O(V + E log V).
func PrimAuto(g *graph.WeightedGraph) (*Result, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}

	ids := g.GetAllNodeIDs()
	if len(ids) == 0 {
		result := newResult(MethodPrim)
		result.IsConnected = true
		return result, nil
	}

	edges := collectEdges(g)
	adj := buildAdjacency(edges)

	seed := ids[0]
	minDegree := len(adj[seed])
	for _, id := range ids[1:] {
		if d := len(adj[id]); d < minDegree {
			seed, minDegree = id, d
		}
	}

	return prim(g, seed)
}

func prim(g *graph.WeightedGraph, seed uint32) (*Result, error) {
	result := newResult(MethodPrim)

	ids := g.GetAllNodeIDs()
	n := len(ids)
	result.NodesInMST = n
	if n <= 1 {
		result.IsConnected = true
		return result, nil
	}

	edges := collectEdges(g)
	adj := buildAdjacency(edges)

	inTree := make(map[uint32]bool, n)
	inTree[seed] = true
	result.NodesProcessed = 1

	pq := heap.New[MSTEdge](edgeLess)
	for _, e := range adj[seed] {
		if !inTree[e.To] {
			pq.Push(e)
		}
	}

	for pq.Len() > 0 && len(result.Edges) < n-1 {
		e, err := pq.Pop()
		if err != nil {
			break // unreachable: loop condition guards Len() > 0
		}
		if inTree[e.To] {
			continue // lazy deletion: far endpoint already absorbed
		}

		inTree[e.To] = true
		result.Edges = append(result.Edges, e)
		result.TotalWeight += e.Weight
		result.NodesProcessed++

		for _, next := range adj[e.To] {
			if !inTree[next.To] {
				pq.Push(next)
			}
		}
	}

	result.IsConnected = len(result.Edges) == n-1

	return result, nil
}
