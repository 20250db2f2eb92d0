// Package store keeps the raw weighted interaction records feeding the
// graph builder.
package store

import (
	"fmt"
	"sync"

	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/model"
)

// EdgeStore is an in-memory append-only collection of interaction
// records. Records are validated on entry, so everything handed to the
// builder is already well formed. Safe for concurrent use.
type EdgeStore struct {
	mu    sync.RWMutex
	edges []model.InteractionEdge
}

func NewEdgeStore() *EdgeStore {
	return &EdgeStore{}
}

// Append stores one record, rejecting self-loops and weights below 1.
func (s *EdgeStore) Append(e model.InteractionEdge) error {
	if err := graphbuild.Validate(e); err != nil {
		return err
	}
	s.mu.Lock()
	s.edges = append(s.edges, e)
	s.mu.Unlock()
	return nil
}

// AppendBatch stores every valid record and returns the validation
// errors of the rejected ones. Each error names the offending row's
// position in the input, so callers can match rejections back to
// their rows. A bad row never blocks the rows around it.
func (s *EdgeStore) AppendBatch(edges []model.InteractionEdge) []error {
	var rejected []error
	for i, e := range edges {
		if err := s.Append(e); err != nil {
			rejected = append(rejected, fmt.Errorf("row %d: %w", i, err))
		}
	}
	return rejected
}

// Edges returns a copy of the current records for snapshot builds.
func (s *EdgeStore) Edges() []model.InteractionEdge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InteractionEdge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Len reports the number of stored records.
func (s *EdgeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// Reset drops all stored records.
func (s *EdgeStore) Reset() {
	s.mu.Lock()
	s.edges = nil
	s.mu.Unlock()
}
