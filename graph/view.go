// File: view.go
// Role: Read-only summary views over a WeightedGraph, for diagnostics and
// tests. No algorithmic logic lives here.
package graph

// Stats is a point-in-time, read-only summary of a WeightedGraph's size and
// configuration.
type Stats struct {
	Directed  bool
	NumNodes  int
	NumEdges  int
	Density   float64
}

// Stats produces an O(V+E) snapshot of the graph's configuration and size.
// Complexity: O(V+E).
func (g *WeightedGraph) Stats() Stats {
	return Stats{
		Directed: g.Directed(),
		NumNodes: g.NumNodes(),
		NumEdges: g.NumEdges(),
		Density:  g.Density(),
	}
}
