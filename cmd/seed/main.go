// Command seed checkpoints an interaction edge feed into the graph
// database so server instances can hydrate from it at startup.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/driver"
	"github.com/healthguard/vigil/internal/ingest"
)

func main() {
	edgesPath := flag.String("edges", "data/network_edges.csv", "interaction edge feed to checkpoint")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using defaults")
	}

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		uri = "bolt://localhost:7687"
	}

	ctx := context.Background()
	gs, err := driver.NewMemgraphStore(uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"), log)
	if err != nil {
		log.Fatal("failed to connect to graph database", zap.Error(err))
	}
	defer gs.Close(ctx)

	if err := gs.BuildIndices(ctx); err != nil {
		log.Fatal("failed to build indices", zap.Error(err))
	}

	rows, skipped, err := ingest.NewLoader(log).LoadEdgesFile(*edgesPath)
	if err != nil {
		log.Fatal("failed to read edge feed", zap.Error(err))
	}

	if err := gs.SaveEdges(ctx, rows); err != nil {
		log.Fatal("failed to checkpoint edges", zap.Error(err))
	}

	log.Info("edge feed checkpointed",
		zap.String("feed", *edgesPath),
		zap.Int("saved", len(rows)),
		zap.Int("skipped", skipped))
}
