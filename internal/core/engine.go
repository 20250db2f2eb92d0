// Package core orchestrates the context graph engine: it turns the raw
// edge records into immutable snapshots carrying the built graph, the
// super-spreader ranking, filtered network statistics, and a 2D layout.
package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthguard/vigil/internal/core/centrality"
	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/layout"
	"github.com/healthguard/vigil/internal/core/model"
	"github.com/healthguard/vigil/internal/core/netfilter"
	"github.com/healthguard/vigil/internal/core/risk"
	"github.com/healthguard/vigil/internal/store"
)

// Engine wires the edge store to the pure computation modules. It holds
// no mutable state of its own: every recomputation reads the store once
// and produces a fresh snapshot.
type Engine struct {
	Store  *store.EdgeStore
	Ranker *centrality.Ranker
	Scorer *risk.Scorer
}

// NewEngine builds an engine over an edge store with explicit ranking
// and scoring policies.
func NewEngine(edges *store.EdgeStore, ranker *centrality.Ranker, scorer *risk.Scorer) *Engine {
	return &Engine{Store: edges, Ranker: ranker, Scorer: scorer}
}

// NewDefaultEngine builds an engine with the default decile ranking and
// scoring policies.
func NewDefaultEngine(edges *store.EdgeStore) *Engine {
	return NewEngine(edges, centrality.NewRanker(), risk.NewDefaultScorer())
}

// RecomputeParams are the scalar knobs of one recomputation request.
type RecomputeParams struct {
	TopN           int              `json:"top_n"`
	MinConnections int              `json:"min_connections"`
	Algorithm      layout.Algorithm `json:"algorithm"`
	Seed           *int64           `json:"seed,omitempty"`
	Iterations     int              `json:"iterations,omitempty"`
	Isolates       []string         `json:"isolates,omitempty"`
}

// DefaultRecomputeParams mirrors the dashboard's defaults: ten top
// spreaders, a minimum of two connections, seeded force layout.
func DefaultRecomputeParams() RecomputeParams {
	return RecomputeParams{
		TopN:           10,
		MinConnections: 2,
		Algorithm:      layout.ForceDirected,
		Seed:           layout.Seed(42),
	}
}

// Recompute runs the full pipeline over the current edge records and
// returns a fresh snapshot. A failing call leaves nothing behind; prior
// snapshots are unaffected.
func (e *Engine) Recompute(params RecomputeParams) (Snapshot, error) {
	graph, err := graphbuild.Build(e.Store.Edges(), params.Isolates...)
	if err != nil {
		return Snapshot{}, err
	}

	rankings, err := e.Ranker.Rank(graph, params.TopN)
	if err != nil {
		return Snapshot{}, err
	}

	filtered, stats, err := netfilter.Apply(graph, params.MinConnections)
	if err != nil {
		return Snapshot{}, err
	}

	positions, err := layout.Compute(filtered, params.Algorithm, layout.Options{
		Seed:       params.Seed,
		Iterations: params.Iterations,
	})
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Params:    params,
		Graph:     graph,
		Rankings:  rankings,
		Filtered:  filtered,
		Stats:     stats,
		Positions: positions,
	}, nil
}

// ScorePost returns a scored copy of the record; the input is never
// mutated.
func (e *Engine) ScorePost(post model.PostRecord) model.PostRecord {
	score, tier := e.Scorer.Score(post)
	post.MisinfoScore = score
	post.RiskTier = tier
	return post
}

// ScorePosts scores a batch, preserving order.
func (e *Engine) ScorePosts(posts []model.PostRecord) []model.PostRecord {
	out := make([]model.PostRecord, len(posts))
	for i, p := range posts {
		out[i] = e.ScorePost(p)
	}
	return out
}
