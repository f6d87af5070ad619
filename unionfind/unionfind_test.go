package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoshDount/routingcore/unionfind"
)

func TestUnionFind_LazyInit(t *testing.T) {
	u := unionfind.New()
	assert.Equal(t, uint32(1), u.Find(1))
	assert.Equal(t, uint32(2), u.Find(2))
}

func TestUnionFind_UnionReturnsFalseWhenAlreadyJoined(t *testing.T) {
	u := unionfind.New()
	assert.True(t, u.Union(1, 2))
	assert.False(t, u.Union(1, 2))
	assert.Equal(t, u.Find(1), u.Find(2))
}

func TestUnionFind_UnionByRank(t *testing.T) {
	u := unionfind.New()
	assert.True(t, u.Union(1, 2)) // rank tie: root(2) under root(1), rank(1)=1
	root12 := u.Find(1)
	assert.Equal(t, root12, u.Find(2))

	assert.True(t, u.Union(3, 4)) // rank tie: root(4) under root(3), rank(3)=1
	root34 := u.Find(3)
	assert.Equal(t, root34, u.Find(4))

	// Merging two rank-1 trees: tie again, root(34) attaches under root(12).
	assert.True(t, u.Union(1, 3))
	assert.Equal(t, root12, u.Find(1))
	assert.Equal(t, root12, u.Find(2))
	assert.Equal(t, root12, u.Find(3))
	assert.Equal(t, root12, u.Find(4))
}

func TestUnionFind_PathCompression(t *testing.T) {
	u := unionfind.New()
	// Union 1..5 sequentially; union by rank hangs each new element under
	// root 1, and after Find(5) all of 1..5 should report that same root.
	for i := uint32(1); i < 5; i++ {
		u.Union(i, i+1)
	}
	root := u.Find(5)
	for i := uint32(1); i <= 5; i++ {
		assert.Equal(t, root, u.Find(i))
	}
}
