package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/core/model"
)

// MemgraphStore checkpoints interaction records in a bolt-speaking graph
// database (Memgraph or Neo4j). Accounts become :Account nodes and each
// unordered pair one :SHARED_WITH relationship whose weight accumulates,
// matching the builder's merge rule.
type MemgraphStore struct {
	driver neo4j.DriverWithContext
	log    *zap.Logger
}

var _ GraphStore = (*MemgraphStore)(nil)

func NewMemgraphStore(uri, username, password string, log *zap.Logger) (*MemgraphStore, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Info("connected to graph database", zap.String("uri", uri))
	return &MemgraphStore{driver: d, log: log}, nil
}

func (s *MemgraphStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *MemgraphStore) execute(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// SaveEdges upserts records pair by pair. The pair key is canonical
// (smaller id first) so (A,B) and (B,A) land on the same relationship.
func (s *MemgraphStore) SaveEdges(ctx context.Context, edges []model.InteractionEdge) error {
	query := `
		MERGE (a:Account {id: $source})
		MERGE (b:Account {id: $target})
		MERGE (a)-[r:SHARED_WITH]->(b)
		ON CREATE SET r.weight = $weight
		ON MATCH SET r.weight = r.weight + $weight`

	for _, e := range edges {
		pair := model.PairOf(e.Source, e.Target)
		_, err := s.execute(ctx, query, map[string]any{
			"source": pair.A,
			"target": pair.B,
			"weight": e.Weight,
		})
		if err != nil {
			return fmt.Errorf("failed to save edge (%s, %s): %w", pair.A, pair.B, err)
		}
	}
	return nil
}

// LoadEdges returns every persisted interaction record.
func (s *MemgraphStore) LoadEdges(ctx context.Context) ([]model.InteractionEdge, error) {
	result, err := s.execute(ctx, `
		MATCH (a:Account)-[r:SHARED_WITH]->(b:Account)
		RETURN a.id AS source, b.id AS target, r.weight AS weight`, nil)
	if err != nil {
		return nil, err
	}

	edges := make([]model.InteractionEdge, 0, len(result.Records))
	for _, record := range result.Records {
		source, _, err := neo4j.GetRecordValue[string](record, "source")
		if err != nil {
			return nil, fmt.Errorf("malformed edge record: %w", err)
		}
		target, _, err := neo4j.GetRecordValue[string](record, "target")
		if err != nil {
			return nil, fmt.Errorf("malformed edge record: %w", err)
		}
		weight, _, err := neo4j.GetRecordValue[float64](record, "weight")
		if err != nil {
			return nil, fmt.Errorf("malformed edge record: %w", err)
		}
		edges = append(edges, model.InteractionEdge{Source: source, Target: target, Weight: weight})
	}
	return edges, nil
}

func (s *MemgraphStore) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Account(id);",
	}

	for _, q := range queries {
		if _, err := s.execute(ctx, q, nil); err != nil {
			// Index may already exist.
			s.log.Warn("failed to create index", zap.String("query", q), zap.Error(err))
		}
	}
	return nil
}
