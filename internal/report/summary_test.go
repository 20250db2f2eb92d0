package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguard/vigil/internal/core"
	"github.com/healthguard/vigil/internal/core/layout"
	"github.com/healthguard/vigil/internal/core/model"
	"github.com/healthguard/vigil/internal/store"
)

func TestSummary(t *testing.T) {
	s := store.NewEdgeStore()
	require.Empty(t, s.AppendBatch([]model.InteractionEdge{
		{Source: "user_1", Target: "user_2", Weight: 8},
		{Source: "user_1", Target: "user_3", Weight: 2},
	}))
	engine := core.NewDefaultEngine(s)

	snap, err := engine.Recompute(core.RecomputeParams{
		TopN:           3,
		MinConnections: 1,
		Algorithm:      layout.Circular,
	})
	require.NoError(t, err)

	posts := engine.ScorePosts([]model.PostRecord{
		{PostID: "POST_0001", Platform: "Twitter", Category: "Vaccines", Shares: 10000, Status: model.StatusVerifiedFalse, Archived: true},
		{PostID: "POST_0002", Platform: "Reddit", Category: "Fake Cures", Shares: 5, Status: model.StatusUnderReview},
		{PostID: "POST_0003", Platform: "Twitter", Category: "Vaccines", Shares: 40, Status: model.StatusDisputed},
	})

	generated := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	text := Summary(snap, posts, generated)

	assert.Contains(t, text, "Generated: 2025-03-10 12:00:00")
	assert.Contains(t, text, "Total Posts Tracked: 3")
	assert.Contains(t, text, "High Risk Posts: 1")
	assert.Contains(t, text, "Archived Posts: 1")
	assert.Contains(t, text, "- Twitter: 2")
	assert.Contains(t, text, "1. user_1")

	// Identical inputs render the identical report.
	assert.Equal(t, text, Summary(snap, posts, generated))
}

func TestSummary_EmptyInputs(t *testing.T) {
	engine := core.NewDefaultEngine(store.NewEdgeStore())
	snap, err := engine.Recompute(core.RecomputeParams{TopN: 5, Algorithm: layout.Circular})
	require.NoError(t, err)

	text := Summary(snap, nil, time.Now())
	assert.Contains(t, text, "Total Posts Tracked: 0")
	assert.Contains(t, text, "- none")
}
