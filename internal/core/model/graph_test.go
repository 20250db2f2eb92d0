package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairOf_Canonical(t *testing.T) {
	assert.Equal(t, PairOf("a", "b"), PairOf("b", "a"))
	assert.Equal(t, "a", PairOf("b", "a").A)
}

func TestNewGraph_EndpointsJoinNodeSet(t *testing.T) {
	g := NewGraph(
		map[string]struct{}{"isolated": {}},
		map[NodePair]float64{PairOf("a", "b"): 2},
	)

	assert.Equal(t, []string{"a", "b", "isolated"}, g.Nodes())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Accessors(t *testing.T) {
	g := NewGraph(nil, map[NodePair]float64{
		PairOf("b", "a"): 2,
		PairOf("a", "c"): 3,
	})

	assert.Equal(t, 2.0, g.Weight("a", "b"))
	assert.Equal(t, 2.0, g.Weight("b", "a"))
	assert.Equal(t, 0.0, g.Weight("b", "c"))
	assert.Equal(t, []string{"b", "c"}, g.Neighbors("a"))
	assert.Equal(t, 2, g.Degree("a"))
	assert.Equal(t, 5.0, g.WeightedDegree("a"))
	assert.Equal(t, 1, g.Degree("c"))

	edges := g.Edges()
	assert.Equal(t, []WeightedEdge{
		{Source: "a", Target: "b", Weight: 2},
		{Source: "a", Target: "c", Weight: 3},
	}, edges)
}

func TestGraph_Equal(t *testing.T) {
	a := NewGraph(nil, map[NodePair]float64{PairOf("x", "y"): 1})
	b := NewGraph(nil, map[NodePair]float64{PairOf("y", "x"): 1})
	c := NewGraph(nil, map[NodePair]float64{PairOf("x", "y"): 2})
	d := NewGraph(map[string]struct{}{"z": {}}, map[NodePair]float64{PairOf("x", "y"): 1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestVerificationStatus_Valid(t *testing.T) {
	for _, s := range VerificationStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, VerificationStatus("Gospel").Valid())
}
