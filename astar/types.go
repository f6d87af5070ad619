package astar

// VertexState tracks a vertex's position in A*'s open/closed lifecycle.
type VertexState int

const (
	// Unvisited means the vertex has not yet been discovered.
	Unvisited VertexState = iota
	// Open means the vertex sits in the heap awaiting expansion.
	Open
	// Closed means the vertex has been expanded and will not be reopened.
	Closed
)

// Result holds the outcome of a single A* run from Source to Target. All
// maps hold copies of node IDs and scores, so a Result may be retained
// after the source graph is dropped.
type Result struct {
	Source    uint32
	Target    uint32
	Heuristic string
	PathFound bool

	GScore map[uint32]float64
	FScore map[uint32]float64
	Parent map[uint32]uint32
	State  map[uint32]VertexState

	NodesExpanded  int
	NodesGenerated int
}

func newResult(source, target uint32, heuristicName string) *Result {
	return &Result{
		Source:    source,
		Target:    target,
		Heuristic: heuristicName,
		GScore:    make(map[uint32]float64),
		FScore:    make(map[uint32]float64),
		Parent:    make(map[uint32]uint32),
		State:     make(map[uint32]VertexState),
	}
}

// Path reconstructs the path from Source to Target by walking Parent
// pointers and reversing the result. Returns nil unless PathFound.
// Complexity: O(path length).
func (r *Result) Path() []uint32 {
	if !r.PathFound {
		return nil
	}

	var rev []uint32
	cur := r.Target
	for {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}

	path := make([]uint32, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
