package dijkstra

import (
	"math"

	"github.com/JoshDount/routingcore/graph"
	"github.com/JoshDount/routingcore/heap"
)

// distItem is the payload stored in the indexed heap: a candidate distance
// to a vertex from the source.
type distItem struct {
	node uint32
	dist float64
}

func distLess(a, b distItem) bool { return a.dist < b.dist }

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g      *graph.WeightedGraph
	result *Result
	pq     *heap.IndexedMinHeap[distItem]
	// handles maps a vertex currently InQueue to its live heap handle.
	handles map[uint32]heap.Handle
}

// FindShortestPaths computes shortest distances from source to every
// vertex reachable in g via non-negative effective-weight edges.
//
// If source is not a node of g, it returns an empty Result (Source set,
// all maps empty) rather than an error, per the MissingEndpoint outcome.
// Edges with negative effective weight are silently skipped.
//
// Tie-breaking: when two paths to the same vertex have equal total
// distance, the first one discovered (by heap insertion order) wins,
// producing deterministic parent pointers for a given construction order.
//
// Complexity: O((V + E) log V).
func FindShortestPaths(g *graph.WeightedGraph, source uint32) *Result {
	return run(g, source, nil)
}

// FindShortestPathTo is the early-termination variant of FindShortestPaths:
// it stops as soon as target is extracted from the heap. Because all
// traversed weights are non-negative, target's distance is already optimal
// at that point, so Result.GetDistance(target) matches
// FindShortestPaths(g, source).GetDistance(target), but NodesProcessed may
// be smaller.
//
// Complexity: O((V + E) log V) worst case; typically less.
func FindShortestPathTo(g *graph.WeightedGraph, source, target uint32) *Result {
	return run(g, source, &target)
}

func run(g *graph.WeightedGraph, source uint32, target *uint32) *Result {
	result := newResult(source)
	if g == nil || !g.HasNode(source) {
		return result
	}

	r := &runner{
		g:       g,
		result:  result,
		pq:      heap.New[distItem](distLess),
		handles: make(map[uint32]heap.Handle),
	}

	r.result.Distances[source] = 0
	r.result.State[source] = InQueue
	h := r.pq.Push(distItem{node: source, dist: 0})
	r.handles[source] = h

	for r.pq.Len() > 0 {
		item, err := r.pq.Pop()
		if err != nil {
			break // unreachable: loop condition guards Len() > 0
		}

		u, d := item.node, item.dist
		delete(r.handles, u)

		// Stale-entry guard for the lazy-insertion fallback: a vertex may
		// have been pushed more than once if DecreaseKey ever failed.
		if best, ok := r.result.Distances[u]; ok && d > best {
			continue
		}
		if r.result.State[u] == Visited {
			continue
		}

		r.result.State[u] = Visited
		r.result.NodesProcessed++

		if target != nil && u == *target {
			break
		}

		r.relax(u, d)
	}

	return result
}

func (r *runner) relax(u uint32, du float64) {
	for _, e := range r.g.GetNeighbors(u) {
		w := float64(e.EffectiveWeight())
		if w < 0 {
			continue // NegativeWeight outcome: silently skipped, never fatal
		}

		v := e.To
		newDist := du + w
		current, reached := r.result.Distances[v]
		if reached && newDist >= current {
			continue
		}

		r.result.Distances[v] = newDist
		r.result.Parent[v] = u

		if handle, inQueue := r.handles[v]; inQueue {
			if err := r.pq.DecreaseKey(handle, distItem{node: v, dist: newDist}); err != nil {
				// Lazy-insertion fallback: the stored payload no longer
				// strictly dominates (or the handle went stale); push a
				// fresh entry and let the stale-skip check above filter
				// the old one out when it eventually surfaces.
				r.handles[v] = r.pq.Push(distItem{node: v, dist: newDist})
			}
		} else {
			r.result.State[v] = InQueue
			r.handles[v] = r.pq.Push(distItem{node: v, dist: newDist})
		}
	}
}

// infinity is exposed for callers that want an explicit sentinel for
// "unreached" rather than checking map membership via GetDistance.
const infinity = math.MaxFloat64

// Infinity returns the sentinel distance value used to represent an
// unreached vertex when a caller prefers a concrete float over checking
// map membership.
func Infinity() float64 { return infinity }
