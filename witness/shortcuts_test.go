package witness_test

import (
	"testing"

	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/witness"
	"github.com/stretchr/testify/require"
)

// TestRequiredShortcutsS2 reproduces spec.md scenario S2 exactly.
func TestRequiredShortcutsS2(t *testing.T) {
	g, err := digraph.FromEdges(5, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 2},
		{Tail: 1, Head: 2, Weight: 2},
		{Tail: 0, Head: 3, Weight: 5},
		{Tail: 3, Head: 2, Weight: 1},
		{Tail: 2, Head: 4, Weight: 1},
	})
	require.NoError(t, err)

	got := witness.RequiredShortcuts(g, 2, witness.DefaultHopLimit)
	require.Len(t, got, 2)

	byTail := map[uint32]witness.Shortcut{}
	for _, sc := range got {
		byTail[sc.Tail] = sc
	}

	sc1, ok := byTail[1]
	require.True(t, ok, "shortcut (1,4,3) must be emitted")
	require.Equal(t, uint32(4), sc1.Head)
	require.Equal(t, uint32(3), sc1.Weight)

	sc3, ok := byTail[3]
	require.True(t, ok, "shortcut (3,4,2) must be emitted")
	require.Equal(t, uint32(4), sc3.Head)
	require.Equal(t, uint32(2), sc3.Weight)

	_, ok = byTail[0]
	require.False(t, ok, "0 has no direct in-edge to 2, so no (0,4) shortcut")
}
