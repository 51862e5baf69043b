package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/chrouter/search"
	"github.com/stretchr/testify/require"
)

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, uint32(5), search.SaturatingAdd(2, 3))
	require.Equal(t, uint32(math.MaxUint32), search.SaturatingAdd(math.MaxUint32-1, 5))
}

func TestStateRelaxAndPop(t *testing.T) {
	s := search.NewState(4)
	s.Push(0, 0)

	require.True(t, s.Relax(0, 1, 5))
	require.False(t, s.Relax(0, 1, 9), "9 is not cheaper than the existing 5")
	require.True(t, s.Relax(1, 2, 1))

	v, key, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(0), v)
	require.Equal(t, uint32(0), key)

	v, _, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(1), v)

	path, ok := s.ReconstructPath(2)
	require.True(t, ok)
	require.Equal(t, []uint32{0, 1, 2}, path)
}

func TestStateUnreachable(t *testing.T) {
	s := search.NewState(3)
	s.Push(0, 0)
	_, ok := s.ReconstructPath(2)
	require.False(t, ok)
}

func TestStateResetReusesAllocation(t *testing.T) {
	s := search.NewState(3)
	s.Push(0, 0)
	s.Relax(0, 1, 1)
	s.Pop()

	s.Reset()
	require.Equal(t, uint32(search.Inf), s.BestCost(1))
	require.False(t, s.Expanded(0))
	require.True(t, s.Empty())
}
