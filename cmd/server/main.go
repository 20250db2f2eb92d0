package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/config"
	"github.com/healthguard/vigil/internal/core"
	"github.com/healthguard/vigil/internal/core/centrality"
	"github.com/healthguard/vigil/internal/core/model"
	"github.com/healthguard/vigil/internal/core/risk"
	"github.com/healthguard/vigil/internal/driver"
	"github.com/healthguard/vigil/internal/ingest"
	"github.com/healthguard/vigil/internal/server"
	"github.com/healthguard/vigil/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/vigil.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("could not load config file, using defaults", zap.String("path", cfgPath), zap.Error(err))
		cfg = config.Default()
	}

	// Env overrides for deployment knobs.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		cfg.Memgraph.URI = uri
	}
	if user := os.Getenv("MEMGRAPH_USER"); user != "" {
		cfg.Memgraph.User = user
	}
	if pass := os.Getenv("MEMGRAPH_PASSWORD"); pass != "" {
		cfg.Memgraph.Password = pass
	}

	scorer, err := risk.NewScorer(cfg.Policy())
	if err != nil {
		log.Fatal("invalid risk policy", zap.Error(err))
	}
	ranker := &centrality.Ranker{
		HighQuantile:   cfg.Ranking.HighQuantile,
		MediumQuantile: cfg.Ranking.MediumQuantile,
	}

	edges := store.NewEdgeStore()
	engine := core.NewEngine(edges, ranker, scorer)

	posts := preload(cfg, edges, log)

	srv := server.New(cfg, engine, log)
	srv.Track(posts)
	r := srv.SetupRouter()

	log.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// preload hydrates the edge store from the configured CSV feeds or,
// when set, the graph database checkpoint, and returns the loaded post
// records for tracking. Everything is best-effort: the server starts
// empty if no source is reachable.
func preload(cfg *config.Config, edges *store.EdgeStore, log *zap.Logger) []model.PostRecord {
	loader := ingest.NewLoader(log)

	var posts []model.PostRecord
	if cfg.Ingest.PostsCSV != "" {
		rows, skipped, err := loader.LoadPostsFile(cfg.Ingest.PostsCSV)
		if err != nil {
			log.Warn("post feed preload failed", zap.Error(err))
		} else {
			posts = rows
			log.Info("post feed preloaded",
				zap.Int("loaded", len(rows)),
				zap.Int("skipped", skipped))
		}
	}

	if cfg.Ingest.EdgesCSV != "" {
		rows, skipped, err := loader.LoadEdgesFile(cfg.Ingest.EdgesCSV)
		if err != nil {
			log.Warn("edge feed preload failed", zap.Error(err))
		} else {
			rejected := edges.AppendBatch(rows)
			log.Info("edge feed preloaded",
				zap.Int("loaded", len(rows)-len(rejected)),
				zap.Int("skipped", skipped+len(rejected)))
		}
	}

	if cfg.Memgraph.URI != "" {
		ctx := context.Background()
		gs, err := driver.NewMemgraphStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			log.Warn("graph database unreachable, skipping hydrate", zap.Error(err))
			return posts
		}
		defer gs.Close(ctx)

		rows, err := gs.LoadEdges(ctx)
		if err != nil {
			log.Warn("graph database hydrate failed", zap.Error(err))
			return posts
		}
		rejected := edges.AppendBatch(rows)
		log.Info("graph database hydrated",
			zap.Int("loaded", len(rows)-len(rejected)),
			zap.Int("rejected", len(rejected)))
	}
	return posts
}
