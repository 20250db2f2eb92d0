package netfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/model"
)

// Four nodes where only A and B reach degree 2: A-B, A-C, B-D.
func fourNodeGraph(t *testing.T) model.Graph {
	t.Helper()
	g, err := graphbuild.Build([]model.InteractionEdge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "A", Target: "C", Weight: 1},
		{Source: "B", Target: "D", Weight: 1},
	})
	require.NoError(t, err)
	return g
}

func TestApply_MinConnectionsScenario(t *testing.T) {
	sub, stats, err := Apply(fourNodeGraph(t), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, sub.Nodes())
	assert.Equal(t, 2, stats.NodeCount)
	assert.Equal(t, 1, stats.EdgeCount)
	assert.Equal(t, 1.0, stats.Density)
	assert.Equal(t, 1.0, stats.AvgDegree)
}

func TestApply_NoDanglingEdges(t *testing.T) {
	sub, _, err := Apply(fourNodeGraph(t), 2)
	require.NoError(t, err)

	for _, e := range sub.Edges() {
		assert.True(t, sub.HasNode(e.Source))
		assert.True(t, sub.HasNode(e.Target))
	}
}

func TestApply_ZeroThresholdKeepsEverything(t *testing.T) {
	g := fourNodeGraph(t)
	sub, stats, err := Apply(g, 0)
	require.NoError(t, err)
	assert.True(t, g.Equal(sub))
	assert.Equal(t, 4, stats.NodeCount)
	assert.Equal(t, 3, stats.EdgeCount)
}

func TestApply_Monotone(t *testing.T) {
	g := fourNodeGraph(t)
	prevNodes, prevEdges := g.NodeCount()+1, g.EdgeCount()+1
	for min := 0; min <= 5; min++ {
		_, stats, err := Apply(g, min)
		require.NoError(t, err)
		assert.LessOrEqual(t, stats.NodeCount, prevNodes, "min_connections=%d", min)
		assert.LessOrEqual(t, stats.EdgeCount, prevEdges, "min_connections=%d", min)
		prevNodes, prevEdges = stats.NodeCount, stats.EdgeCount
	}
}

func TestApply_NegativeThreshold(t *testing.T) {
	_, _, err := Apply(fourNodeGraph(t), -1)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestStats_DensityBoundsAndGuards(t *testing.T) {
	empty, err := graphbuild.Build(nil)
	require.NoError(t, err)
	stats := Stats(empty)
	assert.Equal(t, 0.0, stats.Density)
	assert.Equal(t, 0.0, stats.AvgDegree)

	single, err := graphbuild.Build(nil, "only")
	require.NoError(t, err)
	stats = Stats(single)
	assert.Equal(t, 1, stats.NodeCount)
	assert.Equal(t, 0.0, stats.Density)
	assert.Equal(t, 0.0, stats.AvgDegree)

	g := fourNodeGraph(t)
	for min := 0; min <= 4; min++ {
		_, stats, err := Apply(g, min)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.Density, 0.0)
		assert.LessOrEqual(t, stats.Density, 1.0)
	}
}
