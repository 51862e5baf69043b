package witness_test

import (
	"testing"

	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/witness"
	"github.com/stretchr/testify/require"
)

// TestWitnessAvoidsForbiddenVertex reproduces spec.md S2: contracting
// vertex 2 first must find no witness from 1 to 4 avoiding 2 cheaper than
// cost 3 (2+1), so the shortcut (1,4,3) is required.
func TestWitnessAvoidsForbiddenVertex(t *testing.T) {
	g, err := digraph.FromEdges(5, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 2},
		{Tail: 1, Head: 2, Weight: 2},
		{Tail: 0, Head: 3, Weight: 5},
		{Tail: 3, Head: 2, Weight: 1},
		{Tail: 2, Head: 4, Weight: 1},
	})
	require.NoError(t, err)

	result := witness.Search(g, 1, 2, 3, witness.DefaultHopLimit)
	cost, reached := result[4]
	require.False(t, reached && cost <= 3, "no witness to 4 avoiding 2 within cost 3 must exist")
}

func TestWitnessFindsCheaperAlternative(t *testing.T) {
	// 0->2:1, 2->1:1, 0->1:2 (shortcut 0->1 via 2 would be cost 2, but the
	// direct edge 0->1 also costs 2, so no shortcut is needed: ties must not
	// shortcut).
	g, err := digraph.FromEdges(3, []digraph.EdgeTuple{
		{Tail: 0, Head: 2, Weight: 1},
		{Tail: 2, Head: 1, Weight: 1},
		{Tail: 0, Head: 1, Weight: 2},
	})
	require.NoError(t, err)

	result := witness.Search(g, 0, 2, 2, witness.DefaultHopLimit)
	cost, reached := result[1]
	require.True(t, reached)
	require.Equal(t, uint32(2), cost, "witness cost equal to proposed shortcut cost means no shortcut")
}

func TestWitnessHopLimit(t *testing.T) {
	g, err := digraph.FromEdges(4, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 2, Head: 3, Weight: 1},
	})
	require.NoError(t, err)

	result := witness.Search(g, 0, 99, 100, 1)
	_, reached := result[3]
	require.False(t, reached, "vertex 3 is 3 hops away, beyond hopLimit=1")
	_, reached = result[1]
	require.True(t, reached)
}
