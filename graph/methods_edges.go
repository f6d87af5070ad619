// File: methods_edges.go
// Role: Edge lifecycle, neighbor queries, and dynamic-multiplier mutation.
package graph

// AddEdge inserts a new edge (from, to, weight) with Multiplier 1. It fails
// with ErrSelfLoop if from == to, ErrInvalidEdge if either endpoint is
// unknown to the graph, or ErrDuplicateEdge if an edge already exists for
// (from, to) in that direction. For an undirected graph, the symmetric
// (to, from) entry is added atomically alongside the forward entry.
// Complexity: O(deg(from)) to check for a duplicate.
func (g *WeightedGraph) AddEdge(from, to uint32, weight float32) error {
	if from == to {
		return ErrSelfLoop
	}

	g.muNodes.RLock()
	_, fromOK := g.nodes[from]
	_, toOK := g.nodes[to]
	g.muNodes.RUnlock()
	if !fromOK || !toOK {
		return ErrInvalidEdge
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if hasEdgeLocked(g, from, to) {
		return ErrDuplicateEdge
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Multiplier: 1})
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Multiplier: 1})
	}

	return nil
}

func hasEdgeLocked(g *WeightedGraph, from, to uint32) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether an edge from -> to exists.
// Complexity: O(deg(from)).
func (g *WeightedGraph) HasEdge(from, to uint32) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return hasEdgeLocked(g, from, to)
}

// GetEdge returns the edge from -> to and true, or the zero Edge and false
// if no such edge exists.
// Complexity: O(deg(from)).
func (g *WeightedGraph) GetEdge(from, to uint32) (Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// GetNeighbors returns the outgoing adjacency sequence for id, in insertion
// order, as a copy. It returns an empty (non-nil) slice for an unknown id.
// Complexity: O(deg(id)).
func (g *WeightedGraph) GetNeighbors(id uint32) []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	edges := g.adjacency[id]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// GetAllEdges returns every edge in the graph. For a directed graph, every
// stored edge is returned once. For an undirected graph, each logical edge
// is returned once, in its canonical (from < to) direction.
// Complexity: O(V + E).
func (g *WeightedGraph) GetAllEdges() []Edge {
	g.muNodes.RLock()
	order := make([]uint32, len(g.order))
	copy(order, g.order)
	g.muNodes.RUnlock()

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]Edge, 0, len(order))
	for _, id := range order {
		for _, e := range g.adjacency[id] {
			if g.directed || e.From < e.To {
				out = append(out, e)
			}
		}
	}

	return out
}

// NumEdges returns the number of logical edges in the graph: for an
// undirected graph, a symmetric pair counts once.
// Complexity: O(V + E).
func (g *WeightedGraph) NumEdges() int {
	return len(g.GetAllEdges())
}

// Density returns num_edges / (n(n-1)) for a directed graph, or
// num_edges / (n(n-1)/2) for an undirected graph. Returns 0 for n < 2.
// Complexity: O(V + E).
func (g *WeightedGraph) Density() float64 {
	n := g.NumNodes()
	if n < 2 {
		return 0
	}

	e := float64(g.NumEdges())
	maxEdges := float64(n) * float64(n-1)
	if !g.directed {
		maxEdges /= 2
	}

	return e / maxEdges
}

// SetEdgeMultiplier updates the dynamic multiplier on the edge from -> to
// (and, for an undirected graph, its symmetric twin), without touching the
// static base Weight. Returns ErrInvalidEdge if no such edge exists.
// Complexity: O(deg(from) + deg(to)).
func (g *WeightedGraph) SetEdgeMultiplier(from, to uint32, multiplier float32) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	found := false
	for i := range g.adjacency[from] {
		if g.adjacency[from][i].To == to {
			g.adjacency[from][i].Multiplier = multiplier
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidEdge
	}

	if !g.directed {
		for i := range g.adjacency[to] {
			if g.adjacency[to][i].To == from {
				g.adjacency[to][i].Multiplier = multiplier
				break
			}
		}
	}

	return nil
}
