package unionfind

// UnionFind is a disjoint-set forest keyed by node identifier (uint32, to
// match graph.Node.ID). Zero value is ready to use.
type UnionFind struct {
	parent map[uint32]uint32
	rank   map[uint32]int
}

// New constructs an empty UnionFind.
// Complexity: O(1).
func New() *UnionFind {
	return &UnionFind{
		parent: make(map[uint32]uint32),
		rank:   make(map[uint32]int),
	}
}

// MakeSet installs x as a singleton root of rank 0. Re-making an existing
// set is a no-op.
// Complexity: O(1).
func (u *UnionFind) MakeSet(x uint32) {
	if u.parent == nil {
		u.parent = make(map[uint32]uint32)
		u.rank = make(map[uint32]int)
	}
	if _, ok := u.parent[x]; ok {
		return
	}
	u.parent[x] = x
	u.rank[x] = 0
}

// Find returns the root of x's set, compressing the path walked to get
// there so future lookups are O(1). x is lazily installed as a singleton
// if it has not been seen before.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Find(x uint32) uint32 {
	u.MakeSet(x)
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// Path compression: repoint every node on the chain directly to root.
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y. It returns false if x and y
// were already in the same set (no merge performed), true otherwise.
// The lower-rank root is attached under the higher-rank root; on a rank
// tie, y's root is attached under x's root and x's root's rank increments.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Union(x, y uint32) bool {
	rootX := u.Find(x)
	rootY := u.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
	default:
		u.parent[rootY] = rootX
		u.rank[rootX]++
	}

	return true
}
