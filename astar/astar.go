package astar

import (
	"github.com/JoshDount/routingcore/graph"
	"github.com/JoshDount/routingcore/heap"
)

// openItem is the payload stored in the indexed heap: a candidate vertex
// ordered by f-score, tie-broken by g-score so that, among equally
// promising vertices, the one closer to the source is expanded first.
type openItem struct {
	node   uint32
	fScore float64
	gScore float64
}

func openLess(a, b openItem) bool {
	if a.fScore != b.fScore {
		return a.fScore < b.fScore
	}
	return a.gScore < b.gScore
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g      *graph.WeightedGraph
	h      Heuristic
	target uint32
	result *Result
	open   *heap.IndexedMinHeap[openItem]
	// handles maps a vertex currently Open to its live heap handle.
	handles map[uint32]heap.Handle
}

// FindPath runs A* search from source to target over g, using h to
// estimate remaining cost. If source or target is not a node of g, or
// target is unreachable from source, it returns a Result with
// PathFound == false rather than an error.
//
// If source equals target, the result is a zero-cost, single-node path
// without expanding any edges.
//
// Complexity: O((V + E) log V) worst case; in practice A* expands only the
// vertices h judges promising, so NodesExpanded is typically much smaller
// than V.
func FindPath(g *graph.WeightedGraph, source, target uint32, h Heuristic) *Result {
	result := newResult(source, target, h.Name())
	if g == nil || !g.HasNode(source) || !g.HasNode(target) {
		return result
	}

	if source == target {
		result.PathFound = true
		result.GScore[source] = 0
		result.FScore[source] = 0
		result.State[source] = Closed
		result.NodesExpanded = 1
		result.NodesGenerated = 1
		return result
	}

	targetNode, _ := g.GetNode(target)

	r := &runner{
		g:       g,
		h:       h,
		target:  target,
		result:  result,
		open:    heap.New[openItem](openLess),
		handles: make(map[uint32]heap.Handle),
	}

	sourceNode, _ := g.GetNode(source)
	startF := h.Estimate(sourceNode.Lat, sourceNode.Lon, targetNode.Lat, targetNode.Lon)

	result.GScore[source] = 0
	result.FScore[source] = startF
	result.State[source] = Open
	result.NodesGenerated = 1
	r.handles[source] = r.open.Push(openItem{node: source, fScore: startF, gScore: 0})

	for r.open.Len() > 0 {
		item, err := r.open.Pop()
		if err != nil {
			break // unreachable: loop condition guards Len() > 0
		}

		u := item.node
		delete(r.handles, u)

		// Stale-entry guard for the lazy-insertion fallback below.
		if r.result.State[u] == Closed {
			continue
		}

		r.result.State[u] = Closed
		r.result.NodesExpanded++

		if u == target {
			result.PathFound = true
			break
		}

		r.expand(u, item.gScore, targetNode)
	}

	return result
}

func (r *runner) expand(u uint32, gu float64, targetNode graph.Node) {
	for _, e := range r.g.GetNeighbors(u) {
		w := float64(e.EffectiveWeight())
		if w < 0 {
			continue // negative effective weight: skipped, never fatal
		}

		v := e.To
		if r.result.State[v] == Closed {
			continue // no-reopen: Closed vertices are never revisited
		}

		tentativeG := gu + w
		currentG, seen := r.result.GScore[v]
		if seen && tentativeG >= currentG {
			continue
		}

		vNode, _ := r.g.GetNode(v)
		f := tentativeG + r.h.Estimate(vNode.Lat, vNode.Lon, targetNode.Lat, targetNode.Lon)

		r.result.GScore[v] = tentativeG
		r.result.FScore[v] = f
		r.result.Parent[v] = u

		if handle, inOpen := r.handles[v]; inOpen {
			if err := r.open.DecreaseKey(handle, openItem{node: v, fScore: f, gScore: tentativeG}); err != nil {
				// Lazy-insertion fallback, mirroring dijkstra's relax: push
				// a fresh entry and let the stale-skip check filter the old
				// one out when it eventually surfaces.
				r.handles[v] = r.open.Push(openItem{node: v, fScore: f, gScore: tentativeG})
			}
		} else {
			if !seen {
				r.result.NodesGenerated++
			}
			r.result.State[v] = Open
			r.handles[v] = r.open.Push(openItem{node: v, fScore: f, gScore: tentativeG})
		}
	}
}
