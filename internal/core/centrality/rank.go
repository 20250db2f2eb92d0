// Package centrality identifies super-spreader accounts by degree and
// weighted-degree centrality over a graph snapshot.
package centrality

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/healthguard/vigil/internal/core/model"
)

// Ranker computes deterministic super-spreader rankings. The quantile
// cut points classify nodes against the weighted-degree distribution of
// the current graph, so classification adapts to graph size.
type Ranker struct {
	// HighQuantile and MediumQuantile bound the High and Medium tiers.
	// Nodes at or above the HighQuantile weighted degree are High, at
	// or above MediumQuantile are Medium, the remainder Low.
	HighQuantile   float64
	MediumQuantile float64
}

// NewRanker returns a ranker with the default decile policy: top decile
// High, next two deciles Medium.
func NewRanker() *Ranker {
	return &Ranker{HighQuantile: 0.9, MediumQuantile: 0.7}
}

// Rank returns up to topN ranking entries ordered by weighted degree
// descending, degree descending, then node id ascending. The tie-break
// chain yields a strict total order, so identical graphs always produce
// identical output. A graph with fewer than topN nodes returns all of
// its nodes ranked.
func (r *Ranker) Rank(g model.Graph, topN int) ([]model.RankingEntry, error) {
	if topN < 1 {
		return nil, fmt.Errorf("%w: top_n must be >= 1, got %d", model.ErrInvalidParameter, topN)
	}
	if r.MediumQuantile < 0 || r.MediumQuantile > r.HighQuantile || r.HighQuantile > 1 {
		return nil, fmt.Errorf("%w: quantile cuts must satisfy 0 <= medium <= high <= 1, got high=%v medium=%v",
			model.ErrInvalidParameter, r.HighQuantile, r.MediumQuantile)
	}

	degree := make(map[string]int)
	weighted := make(map[string]float64)
	for _, e := range g.Edges() {
		degree[e.Source]++
		degree[e.Target]++
		weighted[e.Source] += e.Weight
		weighted[e.Target] += e.Weight
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}

	highCut, mediumCut := r.cuts(nodes, weighted)

	entries := make([]model.RankingEntry, 0, len(nodes))
	for _, id := range nodes {
		wd := weighted[id]
		tier := model.TierLow
		switch {
		case wd >= highCut:
			tier = model.TierHigh
		case wd >= mediumCut:
			tier = model.TierMedium
		}
		entries = append(entries, model.RankingEntry{
			NodeID:         id,
			Degree:         degree[id],
			WeightedDegree: wd,
			Tier:           tier,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.WeightedDegree != b.WeightedDegree {
			return a.WeightedDegree > b.WeightedDegree
		}
		if a.Degree != b.Degree {
			return a.Degree > b.Degree
		}
		return a.NodeID < b.NodeID
	})

	if topN < len(entries) {
		entries = entries[:topN]
	}
	return entries, nil
}

// cuts derives the tier boundaries from the empirical weighted-degree
// distribution of all nodes in the graph.
func (r *Ranker) cuts(nodes []string, weighted map[string]float64) (high, medium float64) {
	dist := make([]float64, 0, len(nodes))
	for _, id := range nodes {
		dist = append(dist, weighted[id])
	}
	sort.Float64s(dist)
	high = stat.Quantile(r.HighQuantile, stat.Empirical, dist, nil)
	medium = stat.Quantile(r.MediumQuantile, stat.Empirical, dist, nil)
	return high, medium
}
