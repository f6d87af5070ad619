// Package dijkstra computes single-source shortest paths on a
// graph.WeightedGraph with non-negative effective edge weights.
//
// Overview:
//
//   - FindShortestPaths explores every vertex reachable from a source,
//     using an indexed min-heap to always expand the next-closest vertex.
//   - FindShortestPathTo is the early-termination variant: it stops as soon
//     as the target is extracted from the heap, which is correct because
//     non-negative weights guarantee the target's distance is already
//     optimal at that point.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Negative weights are never fatal here: any edge whose effective weight is
// negative is silently skipped during relaxation, so a caller wanting
// strict validation should run ValidateNonNegativeWeights first.
//
// Missing source or an unreachable target are not failures: FindShortestPaths
// on an unknown source returns an empty Result, and distances for
// unreached vertices are simply absent from Result.Distances.
package dijkstra
