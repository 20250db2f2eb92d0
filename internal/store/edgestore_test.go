package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguard/vigil/internal/core/model"
)

func TestEdgeStore_AppendAndRead(t *testing.T) {
	s := NewEdgeStore()
	require.NoError(t, s.Append(model.InteractionEdge{Source: "a", Target: "b", Weight: 2}))
	require.NoError(t, s.Append(model.InteractionEdge{Source: "b", Target: "c", Weight: 1}))

	assert.Equal(t, 2, s.Len())
	edges := s.Edges()
	assert.Len(t, edges, 2)

	// Mutating the returned slice must not touch the store.
	edges[0].Weight = 99
	assert.Equal(t, 2.0, s.Edges()[0].Weight)
}

func TestEdgeStore_RejectsInvalid(t *testing.T) {
	s := NewEdgeStore()
	assert.ErrorIs(t, s.Append(model.InteractionEdge{Source: "a", Target: "a", Weight: 1}), model.ErrInvalidEdge)
	assert.ErrorIs(t, s.Append(model.InteractionEdge{Source: "a", Target: "b", Weight: 0}), model.ErrInvalidEdge)
	assert.Equal(t, 0, s.Len())
}

func TestEdgeStore_AppendBatchSkipsBadRows(t *testing.T) {
	s := NewEdgeStore()
	rejected := s.AppendBatch([]model.InteractionEdge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "x", Target: "x", Weight: 1},
		{Source: "b", Target: "c", Weight: 3},
		{Source: "c", Target: "d", Weight: -1},
	})

	assert.Len(t, rejected, 2)
	assert.Equal(t, 2, s.Len())
	for _, err := range rejected {
		assert.ErrorIs(t, err, model.ErrInvalidEdge)
	}

	// Rejections carry the position of the bad row in the input.
	assert.Contains(t, rejected[0].Error(), "row 1:")
	assert.Contains(t, rejected[1].Error(), "row 3:")
}

func TestEdgeStore_Reset(t *testing.T) {
	s := NewEdgeStore()
	require.NoError(t, s.Append(model.InteractionEdge{Source: "a", Target: "b", Weight: 1}))
	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestEdgeStore_ConcurrentAppend(t *testing.T) {
	s := NewEdgeStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Append(model.InteractionEdge{Source: "a", Target: "b", Weight: 1})
				_ = s.Edges()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, s.Len())
}
