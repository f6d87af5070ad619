// Package mst computes minimum spanning trees over a graph.WeightedGraph
// using Kruskal's and Prim's algorithms.
//
// Both algorithms treat the graph as undirected: directed input is
// accepted, and each directed edge is treated as if it also ran in the
// opposite direction. This is not a well-defined reduction for every
// directed graph (arborescence problems are not MST problems), but it
// matches the convention this package's graph representation otherwise
// follows for undirected algorithms, and callers that need arborescence
// semantics should reject directed graphs before calling in.
//
// Kruskal sorts every edge by effective weight and grows a forest with a
// unionfind.UnionFind, accepting an edge whenever it joins two different
// components. Prim grows a single tree from a seed node (or the
// minimum-degree node, for the auto-start variant), using a
// heap.IndexedMinHeap of candidate edges with lazy deletion: edges whose
// far endpoint has since joined the tree are discarded on pop rather than
// removed eagerly.
//
// A graph with more than one connected component yields a Result with
// IsConnected == false and a partial forest (or partial tree, for Prim),
// not an error: disconnection is a property of the input, not a failure
// of the algorithm.
//
// Complexity: O(E log E + α(V)·E) for Kruskal; O(E log V) for Prim.
package mst
