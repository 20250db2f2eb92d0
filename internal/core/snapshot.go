package core

import (
	"time"

	"github.com/healthguard/vigil/internal/core/layout"
	"github.com/healthguard/vigil/internal/core/model"
)

// Snapshot is one immutable recomputation result. Everything the
// presentation layer renders comes from here; nothing in a snapshot is
// ever updated in place.
type Snapshot struct {
	ID        string                  `json:"id"`
	Timestamp time.Time               `json:"timestamp"`
	Params    RecomputeParams         `json:"params"`
	Graph     model.Graph             `json:"-"`
	Rankings  []model.RankingEntry    `json:"rankings"`
	Filtered  model.Graph             `json:"-"`
	Stats     model.NetworkStats      `json:"stats"`
	Positions map[string]layout.Point `json:"positions"`
}

// TierChange records a node whose spreader tier moved between two
// snapshots.
type TierChange struct {
	NodeID string         `json:"node_id"`
	From   model.RiskTier `json:"from"`
	To     model.RiskTier `json:"to"`
}

// SnapshotDiff is one event of the recomputation stream: the structural
// and ranking changes between two consecutive snapshots. The live-feed
// presentation consumes these instead of polling shared state.
type SnapshotDiff struct {
	FromID       string               `json:"from_id"`
	ToID         string               `json:"to_id"`
	Timestamp    time.Time            `json:"timestamp"`
	AddedNodes   []string             `json:"added_nodes,omitempty"`
	RemovedNodes []string             `json:"removed_nodes,omitempty"`
	AddedEdges   []model.WeightedEdge `json:"added_edges,omitempty"`
	RemovedEdges []model.WeightedEdge `json:"removed_edges,omitempty"`
	UpdatedEdges []model.WeightedEdge `json:"updated_edges,omitempty"`
	TierChanges  []TierChange         `json:"tier_changes,omitempty"`
}

// Empty reports whether the diff carries no change at all.
func (d SnapshotDiff) Empty() bool {
	return len(d.AddedNodes) == 0 && len(d.RemovedNodes) == 0 &&
		len(d.AddedEdges) == 0 && len(d.RemovedEdges) == 0 &&
		len(d.UpdatedEdges) == 0 && len(d.TierChanges) == 0
}

// Diff computes the change event between two snapshots over their full
// (unfiltered) graphs and rankings. Output ordering is deterministic:
// nodes ascending, edges by (source, target).
func Diff(prev, next Snapshot) SnapshotDiff {
	d := SnapshotDiff{
		FromID:    prev.ID,
		ToID:      next.ID,
		Timestamp: next.Timestamp,
	}

	for _, id := range next.Graph.Nodes() {
		if !prev.Graph.HasNode(id) {
			d.AddedNodes = append(d.AddedNodes, id)
		}
	}
	for _, id := range prev.Graph.Nodes() {
		if !next.Graph.HasNode(id) {
			d.RemovedNodes = append(d.RemovedNodes, id)
		}
	}

	for _, e := range next.Graph.Edges() {
		old := prev.Graph.Weight(e.Source, e.Target)
		switch {
		case old == 0:
			d.AddedEdges = append(d.AddedEdges, e)
		case old != e.Weight:
			d.UpdatedEdges = append(d.UpdatedEdges, e)
		}
	}
	for _, e := range prev.Graph.Edges() {
		if next.Graph.Weight(e.Source, e.Target) == 0 {
			d.RemovedEdges = append(d.RemovedEdges, e)
		}
	}

	prevTiers := make(map[string]model.RiskTier, len(prev.Rankings))
	for _, r := range prev.Rankings {
		prevTiers[r.NodeID] = r.Tier
	}
	for _, r := range next.Rankings {
		if from, ok := prevTiers[r.NodeID]; ok && from != r.Tier {
			d.TierChanges = append(d.TierChanges, TierChange{NodeID: r.NodeID, From: from, To: r.Tier})
		}
	}

	return d
}
