package cpq_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/chrouter/cpq"
	"github.com/katalvlaran/chrouter/digraph"
	"github.com/stretchr/testify/require"
)

func buildQueue(t *testing.T, g *digraph.Graph) *cpq.Queue {
	t.Helper()
	terms := []cpq.WeightedTerm{
		{Weight: 1, Term: cpq.EdgeDifferenceTerm{HopLimit: 10}},
		{Weight: 1, Term: cpq.NewDeletedNeighborTerm()},
	}
	q, err := cpq.NewQueue(context.Background(), g, terms)
	require.NoError(t, err)

	return q
}

func TestPopExhaustsExactlyN(t *testing.T) {
	g, err := digraph.FromEdges(4, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 2, Head: 3, Weight: 1},
	})
	require.NoError(t, err)
	q := buildQueue(t, g)

	seen := make(map[uint32]bool)
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		require.False(t, seen[v], "each vertex popped at most once")
		seen[v] = true
		q.NotifyContract(v)
		g.RemoveVertex(v)
	}
	require.Len(t, seen, 4)
}

func TestPopBatchIsIndependent(t *testing.T) {
	// A path graph: 0-1-2-3-4. Any two popped-in-one-batch vertices must
	// not be within 2 hops of each other.
	g, err := digraph.FromEdges(5, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 1, Head: 2, Weight: 1},
		{Tail: 2, Head: 3, Weight: 1},
		{Tail: 3, Head: 4, Weight: 1},
	})
	require.NoError(t, err)
	q := buildQueue(t, g)

	batch := q.PopBatch()
	require.NotEmpty(t, batch)

	for _, v := range batch {
		for _, w := range batch {
			if v == w {
				continue
			}
			nbh := g.Neighborhood(v, 2)
			_, within := nbh[w]
			require.False(t, within, "batch members %d and %d must not be within 2 hops", v, w)
		}
	}
}

func TestVoronoiTermRedistributesOnContract(t *testing.T) {
	g, err := digraph.FromEdges(3, []digraph.EdgeTuple{
		{Tail: 0, Head: 1, Weight: 1},
		{Tail: 0, Head: 2, Weight: 1},
	})
	require.NoError(t, err)

	vt := cpq.NewVoronoiTerm(3)
	require.Equal(t, int64(1), vt.Score(0, g))
	vt.OnContract(0, g)
	require.Equal(t, int64(2), vt.Score(1, g))
	require.Equal(t, int64(2), vt.Score(2, g))
}
