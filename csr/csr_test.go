package csr_test

import (
	"testing"

	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/digraph"
	"github.com/stretchr/testify/require"
)

func TestFromEdgesOffsets(t *testing.T) {
	edges := []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 0, Head: 2, Weight: 3},
		{Tail: 2, Head: 3, Weight: 1},
	}
	g := csr.FromEdges(4, edges)

	out0 := g.OutEdges(0)
	require.Len(t, out0, 2)

	require.Empty(t, g.OutEdges(1), "vertex 1 has no out-edges; offset must copy forward")

	out2 := g.InEdges(2)
	require.Len(t, out2, 1)
	require.Equal(t, uint32(0), out2[0].Other)
}

func TestFromAdjacencyMatchesFromEdges(t *testing.T) {
	dg, err := digraph.FromEdges(3, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 2},
		{Tail: 1, Head: 2, Weight: 4},
	})
	require.NoError(t, err)

	viaAdj := csr.FromAdjacency(adjOf(dg, true), adjOf(dg, false))
	viaEdges := csr.FromEdges(3, dg.Edges())

	require.Equal(t, viaEdges.OutEdges(0), viaAdj.OutEdges(0))
	require.Equal(t, viaEdges.OutEdges(1), viaAdj.OutEdges(1))
}

func adjOf(g *digraph.Graph, out bool) [][]digraph.HalfEdge {
	n := g.N()
	adj := make([][]digraph.HalfEdge, n)
	for v := 0; v < n; v++ {
		if out {
			adj[v] = g.OutEdges(uint32(v))
		} else {
			adj[v] = g.InEdges(uint32(v))
		}
	}

	return adj
}
