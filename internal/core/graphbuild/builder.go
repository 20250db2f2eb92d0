// Package graphbuild turns raw interaction records into immutable graph
// snapshots.
package graphbuild

import (
	"fmt"

	"github.com/healthguard/vigil/internal/core/model"
)

// Validate checks a single interaction record against the edge rules:
// both endpoints named, no self-loops, weight >= 1.
func Validate(e model.InteractionEdge) error {
	if e.Source == "" || e.Target == "" {
		return fmt.Errorf("%w: empty endpoint (%q, %q)", model.ErrInvalidEdge, e.Source, e.Target)
	}
	if e.Source == e.Target {
		return fmt.Errorf("%w: self-loop on %q", model.ErrInvalidEdge, e.Source)
	}
	if e.Weight < 1 {
		return fmt.Errorf("%w: weight %v < 1 for (%q, %q)", model.ErrInvalidEdge, e.Weight, e.Source, e.Target)
	}
	return nil
}

// Build merges raw interaction records into a graph snapshot. Duplicate
// unordered pairs are merged by weight summation, so any permutation of
// the input yields the same graph. Isolated node ids (accounts seen in
// post data with no recorded interactions) may be passed as extras; they
// join the node set with zero degree. The first invalid record aborts
// the build.
func Build(edges []model.InteractionEdge, isolates ...string) (model.Graph, error) {
	nodes := make(map[string]struct{})
	weights := make(map[model.NodePair]float64)

	for _, e := range edges {
		if err := Validate(e); err != nil {
			return model.Graph{}, err
		}
		pair := model.PairOf(e.Source, e.Target)
		weights[pair] += e.Weight
		nodes[pair.A] = struct{}{}
		nodes[pair.B] = struct{}{}
	}

	for _, id := range isolates {
		if id == "" {
			continue
		}
		nodes[id] = struct{}{}
	}

	return model.NewGraph(nodes, weights), nil
}

// Merge combines independently built snapshots into one, summing weights
// on shared pairs. Build over a partition of the edge list followed by
// Merge is equivalent to a single Build over the whole list.
func Merge(parts ...model.Graph) model.Graph {
	nodes := make(map[string]struct{})
	weights := make(map[model.NodePair]float64)
	for _, g := range parts {
		for _, id := range g.Nodes() {
			nodes[id] = struct{}{}
		}
		for _, e := range g.Edges() {
			weights[model.PairOf(e.Source, e.Target)] += e.Weight
		}
	}
	return model.NewGraph(nodes, weights)
}
