package driver

import (
	"context"

	"github.com/healthguard/vigil/internal/core/model"
)

// GraphStore persists raw interaction records outside the process. It
// sits on the ingestion side of the engine: the core itself never
// performs I/O and rebuilds its snapshots from the in-memory edge store.
type GraphStore interface {
	SaveEdges(ctx context.Context, edges []model.InteractionEdge) error
	LoadEdges(ctx context.Context) ([]model.InteractionEdge, error)
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
