package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshDount/routingcore/dijkstra"
	"github.com/JoshDount/routingcore/graph"
)

func addNodes(t *testing.T, g *graph.WeightedGraph, ids ...uint32) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
}

// buildDiamond is a directed diamond graph with two routes of differing
// cost from 1 to 5.
func buildDiamond(t *testing.T) *graph.WeightedGraph {
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	addNodes(t, g, 1, 2, 3, 4, 5)
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddEdge(2, 4, 1))
	require.NoError(t, g.AddEdge(2, 5, 4))
	require.NoError(t, g.AddEdge(3, 4, 2))
	require.NoError(t, g.AddEdge(4, 5, 1))

	return g
}

func TestDijkstra_DiamondGraph(t *testing.T) {
	g := buildDiamond(t)
	result := dijkstra.FindShortestPaths(g, 1)

	want := map[uint32]float64{1: 0, 2: 2, 3: 3, 4: 3, 5: 4}
	for node, dist := range want {
		got, ok := result.GetDistance(node)
		require.True(t, ok, "node %d should be reached", node)
		assert.Equal(t, dist, got)
	}

	assert.Equal(t, []uint32{1, 2, 4, 5}, result.Path(5))
}

func TestDijkstra_IsolatedNode(t *testing.T) {
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	addNodes(t, g, 7)

	result := dijkstra.FindShortestPaths(g, 7)
	dist, ok := result.GetDistance(7)
	require.True(t, ok)
	assert.Equal(t, 0.0, dist)

	_, ok = result.GetDistance(99)
	assert.False(t, ok)
}

func TestDijkstra_NegativeEdgeIsSkipped(t *testing.T) {
	// A triangle where the direct edge is negative and must be ignored.
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	addNodes(t, g, 1, 2, 3)
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(1, 3, -1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	result := dijkstra.FindShortestPaths(g, 1)
	dist, ok := result.GetDistance(3)
	require.True(t, ok)
	assert.Equal(t, 3.0, dist)
}

func TestDijkstra_MissingSourceReturnsEmptyResult(t *testing.T) {
	g := graph.NewWeightedGraph()
	addNodes(t, g, 1)

	result := dijkstra.FindShortestPaths(g, 42)
	assert.Empty(t, result.Distances)
	assert.Nil(t, result.Path(1))
}

func TestDijkstra_UnreachableTargetHasEmptyPath(t *testing.T) {
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	addNodes(t, g, 1, 2)

	result := dijkstra.FindShortestPaths(g, 1)
	assert.Nil(t, result.Path(2))
}

func TestDijkstra_EarlyTerminationMatchesFullRun(t *testing.T) {
	g := buildDiamond(t)

	full := dijkstra.FindShortestPaths(g, 1)
	early := dijkstra.FindShortestPathTo(g, 1, 5)

	fullDist, _ := full.GetDistance(5)
	earlyDist, _ := early.GetDistance(5)
	assert.Equal(t, fullDist, earlyDist)
	assert.LessOrEqual(t, early.NodesProcessed, full.NodesProcessed)
}

func TestDijkstra_RoundTripPathCost(t *testing.T) {
	g := buildDiamond(t)
	result := dijkstra.FindShortestPaths(g, 1)

	path := result.Path(5)
	require.NotEmpty(t, path)

	var total float64
	for i := 1; i < len(path); i++ {
		e, ok := g.GetEdge(path[i-1], path[i])
		require.True(t, ok)
		total += float64(e.EffectiveWeight())
	}
	want, _ := result.GetDistance(5)
	assert.Equal(t, want, total)
}

func TestValidateNonNegativeWeights(t *testing.T) {
	g := graph.NewWeightedGraph(graph.WithDirected(true))
	addNodes(t, g, 1, 2)
	require.NoError(t, g.AddEdge(1, 2, 5))
	assert.True(t, dijkstra.ValidateNonNegativeWeights(g))

	require.NoError(t, g.SetEdgeMultiplier(1, 2, -1))
	assert.False(t, dijkstra.ValidateNonNegativeWeights(g))
}
