package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/model"
)

func testGraph(t *testing.T) model.Graph {
	t.Helper()
	g, err := graphbuild.Build([]model.InteractionEdge{
		{Source: "u1", Target: "u2", Weight: 5},
		{Source: "u2", Target: "u3", Weight: 2},
		{Source: "u3", Target: "u4", Weight: 1},
		{Source: "u4", Target: "u1", Weight: 3},
		{Source: "u1", Target: "u3", Weight: 1},
	}, "loner")
	require.NoError(t, err)
	return g
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]Algorithm{
		"force-directed":      ForceDirected,
		"circular":            Circular,
		"random":              Random,
		"stress-majorization": StressMajorization,
		" Circular ":          Circular,
	} {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("spring")
	assert.ErrorIs(t, err, model.ErrUnsupportedLayout)
}

func TestCompute_UnknownAlgorithm(t *testing.T) {
	_, err := Compute(testGraph(t), Algorithm("hexagonal"), Options{Seed: Seed(1)})
	assert.ErrorIs(t, err, model.ErrUnsupportedLayout)
}

func TestCompute_SeedRequired(t *testing.T) {
	g := testGraph(t)
	for _, algo := range []Algorithm{ForceDirected, Random, StressMajorization} {
		_, err := Compute(g, algo, Options{})
		assert.ErrorIs(t, err, model.ErrInvalidParameter, string(algo))
	}

	// Circular has no seed dependency at all.
	_, err := Compute(g, Circular, Options{})
	assert.NoError(t, err)
}

func TestCompute_EmptyGraph(t *testing.T) {
	g, err := graphbuild.Build(nil)
	require.NoError(t, err)

	for _, algo := range []Algorithm{ForceDirected, Circular, Random, StressMajorization} {
		pos, err := Compute(g, algo, Options{Seed: Seed(42)})
		require.NoError(t, err, string(algo))
		assert.Empty(t, pos)
	}
}

func TestCompute_CoversAllNodes(t *testing.T) {
	g := testGraph(t)
	for _, algo := range []Algorithm{ForceDirected, Circular, Random, StressMajorization} {
		pos, err := Compute(g, algo, Options{Seed: Seed(42)})
		require.NoError(t, err, string(algo))
		require.Len(t, pos, g.NodeCount())
		for id, p := range pos {
			assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "%s: NaN position for %s", algo, id)
			assert.False(t, math.IsInf(p.X, 0) || math.IsInf(p.Y, 0), "%s: infinite position for %s", algo, id)
		}
	}
}

func TestCompute_SameSeedSameResult(t *testing.T) {
	g := testGraph(t)
	for _, algo := range []Algorithm{ForceDirected, Random, StressMajorization} {
		first, err := Compute(g, algo, Options{Seed: Seed(1234)})
		require.NoError(t, err, string(algo))
		second, err := Compute(g, algo, Options{Seed: Seed(1234)})
		require.NoError(t, err, string(algo))
		assert.Equal(t, first, second, string(algo))
	}
}

func TestCompute_DifferentSeedsDiffer(t *testing.T) {
	g := testGraph(t)
	a, err := Compute(g, Random, Options{Seed: Seed(1)})
	require.NoError(t, err)
	b, err := Compute(g, Random, Options{Seed: Seed(2)})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCircular_UnitCircle(t *testing.T) {
	pos, err := Compute(testGraph(t), Circular, Options{})
	require.NoError(t, err)
	for id, p := range pos {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-9, id)
	}
}

func TestRandom_UnitSquare(t *testing.T) {
	pos, err := Compute(testGraph(t), Random, Options{Seed: Seed(99)})
	require.NoError(t, err)
	for id, p := range pos {
		assert.GreaterOrEqual(t, p.X, 0.0, id)
		assert.Less(t, p.X, 1.0, id)
		assert.GreaterOrEqual(t, p.Y, 0.0, id)
		assert.Less(t, p.Y, 1.0, id)
	}
}

func TestStress_NeighborsCloserThanStrangers(t *testing.T) {
	// Path graph a-b-c-d: after stress majorization, adjacent nodes
	// should end up closer than the path endpoints.
	g, err := graphbuild.Build([]model.InteractionEdge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "b", Target: "c", Weight: 1},
		{Source: "c", Target: "d", Weight: 1},
	})
	require.NoError(t, err)

	pos, err := Compute(g, StressMajorization, Options{Seed: Seed(7)})
	require.NoError(t, err)

	distance := func(u, v string) float64 {
		return math.Hypot(pos[u].X-pos[v].X, pos[u].Y-pos[v].Y)
	}
	assert.Less(t, distance("a", "b"), distance("a", "d"))
	assert.Less(t, distance("c", "d"), distance("a", "d"))
}
