package centrality

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/model"
)

func buildGraph(t *testing.T, edges []model.InteractionEdge, isolates ...string) model.Graph {
	t.Helper()
	g, err := graphbuild.Build(edges, isolates...)
	require.NoError(t, err)
	return g
}

func TestRank_TopSpreaderScenario(t *testing.T) {
	// A has weighted degree 6 (5 to B, 1 to C), B has 5, C has 1.
	g := buildGraph(t, []model.InteractionEdge{
		{Source: "A", Target: "B", Weight: 3},
		{Source: "B", Target: "A", Weight: 2},
		{Source: "A", Target: "C", Weight: 1},
	})

	top, err := NewRanker().Rank(g, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].NodeID)
	assert.Equal(t, 2, top[0].Degree)
	assert.Equal(t, 6.0, top[0].WeightedDegree)
}

func TestRank_OrderingAndTieBreaks(t *testing.T) {
	// x and y tie on weighted degree 4; y has more distinct neighbors.
	// w and z tie on both counts; node id decides.
	g := buildGraph(t, []model.InteractionEdge{
		{Source: "x", Target: "hub", Weight: 4},
		{Source: "y", Target: "hub", Weight: 2},
		{Source: "y", Target: "aux", Weight: 2},
		{Source: "z", Target: "hub", Weight: 1},
		{Source: "w", Target: "hub", Weight: 1},
	})

	entries, err := NewRanker().Rank(g, 10)
	require.NoError(t, err)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.NodeID
	}
	assert.Equal(t, []string{"hub", "y", "x", "aux", "w", "z"}, ids)
}

func TestRank_Deterministic(t *testing.T) {
	g := buildGraph(t, []model.InteractionEdge{
		{Source: "u1", Target: "u2", Weight: 2},
		{Source: "u2", Target: "u3", Weight: 2},
		{Source: "u3", Target: "u4", Weight: 2},
		{Source: "u4", Target: "u1", Weight: 2},
	})

	ranker := NewRanker()
	first, err := ranker.Rank(g, 4)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ranker.Rank(g, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRank_TopNLargerThanGraph(t *testing.T) {
	g := buildGraph(t, []model.InteractionEdge{{Source: "A", Target: "B", Weight: 1}})
	entries, err := NewRanker().Rank(g, 50)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRank_InvalidTopN(t *testing.T) {
	g := buildGraph(t, nil)
	for _, n := range []int{0, -3} {
		_, err := NewRanker().Rank(g, n)
		assert.ErrorIs(t, err, model.ErrInvalidParameter)
	}
}

func TestRank_InvalidQuantiles(t *testing.T) {
	g := buildGraph(t, []model.InteractionEdge{{Source: "A", Target: "B", Weight: 1}})
	for _, r := range []*Ranker{
		{HighQuantile: 1.5, MediumQuantile: 0.7},
		{HighQuantile: 0.9, MediumQuantile: -0.1},
		{HighQuantile: 0.5, MediumQuantile: 0.7},
	} {
		_, err := r.Rank(g, 10)
		assert.ErrorIs(t, err, model.ErrInvalidParameter)
	}
}

func TestRank_EmptyGraph(t *testing.T) {
	g := buildGraph(t, nil)
	entries, err := NewRanker().Rank(g, 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRank_DecileTiersAdaptToPopulation(t *testing.T) {
	// 20 spoke nodes with weights 1..20 around nothing (chain pairs), so
	// the weighted-degree distribution is spread out. The heaviest nodes
	// land High, the tail Low.
	var edges []model.InteractionEdge
	for i := 1; i <= 20; i++ {
		edges = append(edges, model.InteractionEdge{
			Source: fmt.Sprintf("a%02d", i),
			Target: fmt.Sprintf("b%02d", i),
			Weight: float64(i),
		})
	}
	g := buildGraph(t, edges)

	entries, err := NewRanker().Rank(g, 40)
	require.NoError(t, err)
	require.Len(t, entries, 40)

	// a20/b20 carry the max weighted degree and must be High; a01/b01
	// the min and must be Low.
	byID := make(map[string]model.RankingEntry)
	high, medium, low := 0, 0, 0
	for _, e := range entries {
		byID[e.NodeID] = e
		switch e.Tier {
		case model.TierHigh:
			high++
		case model.TierMedium:
			medium++
		case model.TierLow:
			low++
		}
	}
	assert.Equal(t, model.TierHigh, byID["a20"].Tier)
	assert.Equal(t, model.TierLow, byID["a01"].Tier)
	assert.Greater(t, low, medium, "bulk of the population stays Low")
	assert.Greater(t, medium, 0)
	assert.Greater(t, high, 0)
}
