package hublabel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chrouter/contractor"
	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/hublabel"
	"github.com/katalvlaran/chrouter/ptconfig"
	"github.com/katalvlaran/chrouter/shortcut"
)

// buildS1Square hand-assembles the contracted graph spec.md's S6
// scenario names explicitly: square-with-diagonal (0,1,2,3), contraction
// order 0,1,3,2 so vertex 2 ends up at the top of the hierarchy. This
// mirrors exactly what contractor.Build would produce under that order,
// without depending on the priority queue choosing it (the queue's
// scoring is not guaranteed to reproduce a specific literal order).
func buildS1Square(t *testing.T) *contractor.ContractedGraph {
	t.Helper()
	level := []uint32{0, 1, 3, 2} // vertex -> level: 0:0, 1:1, 2:3, 3:2

	// Contracting 0, then 1, then 3 introduces no shortcuts (each has
	// either no in-edges or no out-edges at contraction time); only the
	// upward-edge filter over the four original edges remains.
	outEdges := []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 0, Head: 2, Weight: 3},
		{Tail: 1, Head: 2, Weight: 1},
	}
	inEdges := []digraph.EdgeTuple{
		{Tail: 2, Head: 3, Weight: 1},
	}

	return &contractor.ContractedGraph{
		CSR:          csr.FromDirectedSets(4, outEdges, inEdges),
		Level:        level,
		LevelsByRank: [][]uint32{{0}, {1}, {3}, {2}},
		Shortcuts:    shortcut.NewTable(),
	}
}

func TestBuildDiscoversCoverEntryS6(t *testing.T) {
	cg := buildS1Square(t)

	labels, err := hublabel.Build(context.Background(), cg)
	require.NoError(t, err)

	lf0 := labels.Forward[0]
	require.Len(t, lf0, 3)
	want := map[uint32]uint32{0: 0, 1: 1, 2: 2}
	for _, e := range lf0 {
		require.Equal(t, want[e.Hub], e.Weight, "hub %d", e.Hub)
	}

	lb3 := labels.Backward[3]
	gotB := map[uint32]uint32{}
	for _, e := range lb3 {
		gotB[e.Hub] = e.Weight
	}
	require.Equal(t, uint32(0), gotB[3])
	require.Equal(t, uint32(1), gotB[2])

	dist, ok, err := hublabel.Query(labels, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(3), dist, "true shortest 0->1->2->3 is weight 3")
}

func TestQuerySourceEqualsTarget(t *testing.T) {
	cg := buildS1Square(t)
	labels, err := hublabel.Build(context.Background(), cg)
	require.NoError(t, err)

	dist, ok, err := hublabel.Query(labels, 2, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(0), dist)
}

func TestQueryOutOfRange(t *testing.T) {
	cg := buildS1Square(t)
	labels, err := hublabel.Build(context.Background(), cg)
	require.NoError(t, err)

	_, _, err = hublabel.Query(labels, 0, 99)
	require.Error(t, err)
}

func TestBuildFromCappedSearchAgreesOnShortPairs(t *testing.T) {
	cg := buildS1Square(t)
	cfg := ptconfig.New(ptconfig.WithHLDepthLimit(0))

	labels, err := hublabel.BuildFromCappedSearch(context.Background(), cg, cfg)
	require.NoError(t, err)

	dist, ok, err := hublabel.Query(labels, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(3), dist)
}
