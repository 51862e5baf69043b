package ptconfig_test

import (
	"testing"

	"github.com/katalvlaran/chrouter/ptconfig"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := ptconfig.New()
	require.Equal(t, 10, cfg.WitnessHopLimit)
	require.Equal(t, 0, cfg.HLDepthLimit)
	require.Equal(t, ptconfig.BuilderModeLevelSweep, cfg.Mode)
}

func TestOptionsOverrideInOrder(t *testing.T) {
	cfg := ptconfig.New(
		ptconfig.WithWitnessHopLimit(4),
		ptconfig.WithHLDepthLimit(6),
		ptconfig.WithBuilderMode(ptconfig.BuilderModeCappedSearch),
	)
	require.Equal(t, 4, cfg.WitnessHopLimit)
	require.Equal(t, 6, cfg.HLDepthLimit)
	require.Equal(t, ptconfig.BuilderModeCappedSearch, cfg.Mode)
}

func TestWithWitnessHopLimitPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { ptconfig.WithWitnessHopLimit(0) })
}
