// Package netfilter derives filtered subgraph views and their aggregate
// network statistics.
package netfilter

import (
	"fmt"

	"github.com/healthguard/vigil/internal/core/model"
)

// Apply retains only nodes whose degree in g is at least minConnections,
// then keeps exactly the edges whose both endpoints survived. Filtering
// is node-first so the result can never contain a dangling edge. The
// returned statistics describe the filtered view.
func Apply(g model.Graph, minConnections int) (model.Graph, model.NetworkStats, error) {
	if minConnections < 0 {
		return model.Graph{}, model.NetworkStats{}, fmt.Errorf(
			"%w: min_connections must be >= 0, got %d", model.ErrInvalidParameter, minConnections)
	}

	degree := make(map[string]int)
	for _, e := range g.Edges() {
		degree[e.Source]++
		degree[e.Target]++
	}

	kept := make(map[string]struct{})
	for _, id := range g.Nodes() {
		if degree[id] >= minConnections {
			kept[id] = struct{}{}
		}
	}

	weights := make(map[model.NodePair]float64)
	for _, e := range g.Edges() {
		if _, ok := kept[e.Source]; !ok {
			continue
		}
		if _, ok := kept[e.Target]; !ok {
			continue
		}
		weights[model.PairOf(e.Source, e.Target)] = e.Weight
	}

	sub := model.NewGraph(kept, weights)
	return sub, Stats(sub), nil
}

// Stats computes the aggregate snapshot for a graph view. Density and
// average degree fall back to 0 where their denominators vanish.
func Stats(g model.Graph) model.NetworkStats {
	n := g.NodeCount()
	m := g.EdgeCount()

	density := 0.0
	if n >= 2 {
		density = float64(m) / (float64(n) * float64(n-1) / 2)
	}

	avgDegree := 0.0
	if n > 0 {
		avgDegree = 2 * float64(m) / float64(n)
	}

	return model.NetworkStats{
		NodeCount: n,
		EdgeCount: m,
		Density:   density,
		AvgDegree: avgDegree,
	}
}
