// Package astar implements A* best-first search on a graph.WeightedGraph,
// with a pluggable, admissible Heuristic.
//
// Overview:
//
//   - FindPath runs A* from source to target using an indexed min-heap
//     ordered primarily by f-score (g + h), tie-broken by lower g-score
//     (closer to the start).
//   - Three built-in heuristics operate on node coordinates: Haversine
//     (great-circle distance, for real geography), Euclidean (planar), and
//     Manhattan (L1 / taxicab distance).
//
// Admissibility and the no-reopen choice:
//
//   - A heuristic is admissible if it never overestimates the true
//     remaining cost; A* is optimal when it is. This implementation never
//     reopens a Closed vertex once it has been expanded. With a merely
//     admissible (not consistent) heuristic, classical A* requires
//     reopening to guarantee optimality; this implementation deliberately
//     trades that corner of optimality for simpler bookkeeping. Haversine,
//     Euclidean, and Manhattan are all consistent
//     on the coordinate systems they are declared for, so in practice this
//     does not cost optimality for the built-in heuristics.
//
// Complexity: O((V + E) log V) worst case; typically much less, since A*
// only expands vertices the heuristic judges promising.
package astar
