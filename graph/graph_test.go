package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshDount/routingcore/graph"
)

func mustAddNodes(t *testing.T, g *graph.WeightedGraph, ids ...uint32) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id, Lat: float64(id), Lon: float64(id)}))
	}
}

func TestAddNode_DuplicateRejected(t *testing.T) {
	g := graph.NewWeightedGraph()
	require.NoError(t, g.AddNode(graph.Node{ID: 1}))
	assert.ErrorIs(t, g.AddNode(graph.Node{ID: 1}), graph.ErrDuplicateNode)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1)
	assert.ErrorIs(t, g.AddEdge(1, 1, 5), graph.ErrSelfLoop)
}

func TestAddEdge_RejectsUnknownEndpoint(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1)
	assert.ErrorIs(t, g.AddEdge(1, 2, 5), graph.ErrInvalidEdge)
}

func TestAddEdge_RejectsDuplicate(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 5))
	assert.ErrorIs(t, g.AddEdge(1, 2, 7), graph.ErrDuplicateEdge)
}

func TestAddEdge_UndirectedAddsSymmetricEntry(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 3))

	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))

	e, ok := g.GetEdge(2, 1)
	require.True(t, ok)
	assert.Equal(t, float32(3), e.Weight)
}

func TestAddEdge_DirectedHasNoSymmetricEntry(t *testing.T) {
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	mustAddNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 3))

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
}

func TestGetAllEdges_UndirectedCanonicalDirectionOnlyOnce(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2, 3)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	edges := g.GetAllEdges()
	assert.Len(t, edges, 2)
	for _, e := range edges {
		assert.Less(t, e.From, e.To)
	}
}

func TestEffectiveWeight_DefaultMultiplierIsOne(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 10))

	e, ok := g.GetEdge(1, 2)
	require.True(t, ok)
	assert.Equal(t, float32(10), e.EffectiveWeight())
}

func TestSetEdgeMultiplier_ScalesEffectiveWeightNotBase(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.SetEdgeMultiplier(1, 2, 2.5))

	e, ok := g.GetEdge(1, 2)
	require.True(t, ok)
	assert.Equal(t, float32(10), e.Weight)
	assert.Equal(t, float32(25), e.EffectiveWeight())

	// Undirected twin is updated too.
	rev, ok := g.GetEdge(2, 1)
	require.True(t, ok)
	assert.Equal(t, float32(25), rev.EffectiveWeight())
}

func TestDensity(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 1, 2, 3, 4)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	// 4 nodes undirected: max edges = 4*3/2 = 6; 2 edges present.
	assert.InDelta(t, 2.0/6.0, g.Density(), 1e-9)
}

func TestGetAllNodeIDs_InsertionOrder(t *testing.T) {
	g := graph.NewWeightedGraph()
	mustAddNodes(t, g, 5, 1, 3)
	assert.Equal(t, []uint32{5, 1, 3}, g.GetAllNodeIDs())
}

func TestRandomConnected_IsConnectedAndDeterministic(t *testing.T) {
	g1 := graph.RandomConnected(20, 10, 42)
	g2 := graph.RandomConnected(20, 10, 42)

	assert.Equal(t, g1.GetAllNodeIDs(), g2.GetAllNodeIDs())
	assert.Equal(t, len(g1.GetAllEdges()), len(g2.GetAllEdges()))
	assert.Equal(t, 20, g1.NumNodes())

	// The connecting chain 1-2-...-20 spans every node.
	for id := uint32(1); id < 20; id++ {
		assert.True(t, g1.HasEdge(id, id+1))
	}
}
