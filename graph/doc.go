// Package graph defines WeightedGraph, the geo-located, weighted graph type
// that Dijkstra, A*, and the MST algorithms all operate on.
//
// Overview:
//
//	A WeightedGraph owns a set of Nodes (identified by a caller-assigned
//	uint32 ID, each carrying a latitude/longitude pair) and, for each node,
//	an ordered adjacency list of outgoing Edges. Edges carry a static base
//	Weight plus an independently mutable dynamic multiplier; algorithms
//	always read EffectiveWeight(), never Weight directly.
//
// Directed vs. undirected:
//
//	Directedness is fixed at construction (WithDirected). In an undirected
//	graph, AddEdge installs the symmetric (to, from) entry atomically, and
//	GetAllEdges reports each logical edge once, in its canonical (from < to)
//	direction.
//
// Concurrency:
//
//	Node and edge/adjacency state are guarded by independent sync.RWMutex
//	locks, so read-only queries from multiple goroutines never contend with
//	each other, and a single writer's AddNode/AddEdge never blocks behind an
//	unrelated reader for longer than the read itself takes. Concurrent
//	mutation of a graph that an algorithm is actively reading is a caller
//	contract, not a runtime-checked one — the locks exist to keep the
//	graph's own internal bookkeeping consistent, not to make concurrent
//	read/write safe.
//
// Determinism:
//
//	GetAllNodeIDs and GetNeighbors return results in caller insertion order;
//	GetAllEdges returns one entry per logical edge in canonical order. Given
//	identical construction calls in identical order, two WeightedGraphs
//	produce byte-identical algorithm Results.
package graph
