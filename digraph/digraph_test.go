package digraph_test

import (
	"testing"

	"github.com/katalvlaran/chrouter/digraph"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeMaintainsSymmetry(t *testing.T) {
	g := digraph.NewEmpty(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 2))

	out := g.OutEdges(0)
	require.Len(t, out, 1)
	require.Equal(t, uint32(1), out[0].Other)

	in := g.InEdges(1)
	require.Len(t, in, 1)
	require.Equal(t, uint32(0), in[0].Other)
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g := digraph.NewEmpty(2)
	err := g.AddEdge(0, 5, 1)
	require.Error(t, err)
}

func TestRemoveVertexDetachesBothViews(t *testing.T) {
	g := digraph.NewEmpty(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	g.RemoveVertex(1)

	require.Empty(t, g.OutEdges(1))
	require.Empty(t, g.InEdges(1))
	require.Empty(t, g.OutEdges(0), "edge 0->1 must be detached from 0's out view too")
	require.Empty(t, g.InEdges(2), "edge 2->1 removed, but 1->2 also removed so in[2] is empty")
}

func TestCleanRemovesSelfLoopsAndParallelEdges(t *testing.T) {
	// S3: parallel edges 0->1:5 and 0->1:2 collapse to weight 2.
	// S4: self-loop 2->2:7 is dropped entirely.
	g, err := digraph.FromEdges(3, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 5},
		{Tail: 0, Head: 1, Weight: 2},
		{Tail: 2, Head: 2, Weight: 7},
	})
	require.NoError(t, err)

	dropped := digraph.Clean(g)
	require.Equal(t, 2, dropped)

	out := g.OutEdges(0)
	require.Len(t, out, 1)
	require.Equal(t, uint32(2), out[0].Weight)

	require.Empty(t, g.OutEdges(2))
}

func TestNeighborhoodTwoHop(t *testing.T) {
	g, err := digraph.FromEdges(5, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 2, Head: 3, Weight: 1},
		{Tail: 3, Head: 4, Weight: 1},
	})
	require.NoError(t, err)

	nbh := g.Neighborhood(0, 2)
	require.Contains(t, nbh, uint32(0))
	require.Contains(t, nbh, uint32(1))
	require.Contains(t, nbh, uint32(2))
	require.NotContains(t, nbh, uint32(3))
	require.NotContains(t, nbh, uint32(4))
}

func TestValidatePath(t *testing.T) {
	g, err := digraph.FromEdges(4, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 0, Head: 2, Weight: 3},
		{Tail: 2, Head: 3, Weight: 1},
	})
	require.NoError(t, err)

	require.True(t, g.ValidatePath([]uint32{0, 1, 2, 3}, 3))
	require.False(t, g.ValidatePath([]uint32{0, 1, 2, 3}, 4))
	require.False(t, g.ValidatePath([]uint32{0, 3}, 1), "no direct edge 0->3")
}

func TestInstallShortcutKeepsMinimumOnReinstall(t *testing.T) {
	g := digraph.NewEmpty(2)
	require.NoError(t, g.InstallShortcut(0, 1, 10))
	require.NoError(t, g.InstallShortcut(0, 1, 3))
	require.NoError(t, g.InstallShortcut(0, 1, 7))

	out := g.OutEdges(0)
	require.Len(t, out, 1)
	require.Equal(t, uint32(3), out[0].Weight)

	in := g.InEdges(1)
	require.Len(t, in, 1)
	require.Equal(t, uint32(3), in[0].Weight)
}
