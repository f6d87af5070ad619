// Package unionfind implements a disjoint-set forest (union-find) over node
// identifiers, with path compression and union by rank.
//
// Overview:
//
//   - MakeSet installs an element as its own singleton set.
//   - Find returns the representative (root) of an element's set, flattening
//     the lookup chain it walks (path compression).
//   - Union merges two sets, attaching the lower-rank root under the
//     higher-rank one to keep trees shallow.
//
// Elements are lazily initialized: calling Find or Union on an id that was
// never explicitly installed with MakeSet creates a singleton set for it
// first, so callers never have to special-case "have I seen this id yet."
//
// When to use:
//
//   - Kruskal's MST algorithm uses UnionFind to detect, in near-O(1)
//     amortized time, whether adding a candidate edge would close a cycle.
//
// Complexity: O(α(n)) amortized per operation, where α is the inverse
// Ackermann function — effectively constant for any n that fits in memory.
package unionfind
