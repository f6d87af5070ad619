package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for WeightedGraph operations.
var (
	// ErrUnknownNode names the condition of a node ID that is not present in
	// the graph. No WeightedGraph method returns it: AddEdge reports an
	// unknown endpoint as ErrInvalidEdge.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateNode indicates AddNode was called with an ID already
	// present in the graph.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrSelfLoop indicates AddEdge was called with from == to, which is
	// never a valid edge.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrInvalidEdge indicates AddEdge referenced an endpoint that does not
	// exist in the graph.
	ErrInvalidEdge = errors.New("graph: edge endpoint not found")

	// ErrDuplicateEdge indicates AddEdge was called for a (from, to) pair
	// that already has an edge in that direction.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
)

// Node is a geographically located vertex. ID is assigned by the caller and
// must be unique within a graph; 0 is not reserved but is conventionally
// "invalid/unset".
type Node struct {
	ID  uint32
	Lat float64
	Lon float64
}

// Edge is a directed (from, to, weight) triple. Weight is the static base
// weight; Multiplier scales it to produce EffectiveWeight, defaulting to 1.
// An undirected logical edge is represented as two Edge values, one per
// adjacency list, with From/To swapped.
type Edge struct {
	From       uint32
	To         uint32
	Weight     float32
	Multiplier float32
}

// EffectiveWeight returns the edge's weight after applying its dynamic
// multiplier. Algorithms always read this, never Weight directly.
// Complexity: O(1).
func (e Edge) EffectiveWeight() float32 {
	return e.Weight * e.Multiplier
}

// GraphOption configures a WeightedGraph at construction time.
type GraphOption func(*WeightedGraph)

// WithDirected sets the graph's directedness (true = directed, false =
// undirected). Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(g *WeightedGraph) { g.directed = directed }
}

// WeightedGraph is a directed-or-undirected graph of geo-located Nodes with
// float-weighted Edges. Directedness is fixed for the lifetime of the graph.
//
// Zero value is not usable; construct with NewWeightedGraph.
type WeightedGraph struct {
	muNodes sync.RWMutex // guards nodes
	muEdges sync.RWMutex // guards edges/adjacency

	directed bool

	nodes map[uint32]Node

	// order records node IDs in insertion order, for deterministic
	// enumeration by GetAllNodeIDs.
	order []uint32

	// adjacency[from] is the ordered sequence of outgoing edges from `from`,
	// in insertion order.
	adjacency map[uint32][]Edge
}

// NewWeightedGraph constructs an empty WeightedGraph. By default the graph
// is undirected; pass WithDirected(true) for a directed graph.
// Complexity: O(1).
func NewWeightedGraph(opts ...GraphOption) *WeightedGraph {
	g := &WeightedGraph{
		nodes:     make(map[uint32]Node),
		adjacency: make(map[uint32][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
// Complexity: O(1).
func (g *WeightedGraph) Directed() bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return g.directed
}
