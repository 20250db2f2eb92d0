package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/healthguard/vigil/internal/core/model"
	"github.com/healthguard/vigil/internal/core/risk"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type IngestConfig struct {
	PostsCSV string `toml:"posts_csv"`
	EdgesCSV string `toml:"edges_csv"`
}

type RankingConfig struct {
	HighQuantile   float64 `toml:"high_quantile"`
	MediumQuantile float64 `toml:"medium_quantile"`
}

type LayoutConfig struct {
	ForceIterations  int `toml:"force_iterations"`
	StressIterations int `toml:"stress_iterations"`
}

type RiskConfig struct {
	StatusWeight     float64 `toml:"status_weight"`
	EngagementWeight float64 `toml:"engagement_weight"`

	SeverityVerifiedFalse float64 `toml:"severity_verified_false"`
	SeverityDebunked      float64 `toml:"severity_debunked"`
	SeverityFactChecked   float64 `toml:"severity_fact_checked"`
	SeverityFlagged       float64 `toml:"severity_flagged"`
	SeverityDisputed      float64 `toml:"severity_disputed"`
	SeverityUnderReview   float64 `toml:"severity_under_review"`

	ShareWeight   float64 `toml:"share_weight"`
	ViewWeight    float64 `toml:"view_weight"`
	CommentWeight float64 `toml:"comment_weight"`
	LikeWeight    float64 `toml:"like_weight"`
	ShareScale    float64 `toml:"share_scale"`
	ViewScale     float64 `toml:"view_scale"`
	CommentScale  float64 `toml:"comment_scale"`
	LikeScale     float64 `toml:"like_scale"`

	HighThreshold   float64 `toml:"high_threshold"`
	MediumThreshold float64 `toml:"medium_threshold"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Ingest   IngestConfig   `toml:"ingest"`
	Ranking  RankingConfig  `toml:"ranking"`
	Layout   LayoutConfig   `toml:"layout"`
	Risk     RiskConfig     `toml:"risk"`
}

// Default returns the compiled-in configuration, mirroring
// risk.DefaultPolicy and the default decile ranking cuts.
func Default() *Config {
	policy := risk.DefaultPolicy()
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Ranking: RankingConfig{HighQuantile: 0.9, MediumQuantile: 0.7},
		Layout:  LayoutConfig{ForceIterations: 100, StressIterations: 50},
		Risk: RiskConfig{
			StatusWeight:          policy.StatusWeight,
			EngagementWeight:      policy.EngagementWeight,
			SeverityVerifiedFalse: policy.StatusSeverity[model.StatusVerifiedFalse],
			SeverityDebunked:      policy.StatusSeverity[model.StatusDebunked],
			SeverityFactChecked:   policy.StatusSeverity[model.StatusFactChecked],
			SeverityFlagged:       policy.StatusSeverity[model.StatusFlagged],
			SeverityDisputed:      policy.StatusSeverity[model.StatusDisputed],
			SeverityUnderReview:   policy.StatusSeverity[model.StatusUnderReview],
			ShareWeight:           policy.ShareWeight,
			ViewWeight:            policy.ViewWeight,
			CommentWeight:         policy.CommentWeight,
			LikeWeight:            policy.LikeWeight,
			ShareScale:            policy.ShareScale,
			ViewScale:             policy.ViewScale,
			CommentScale:          policy.CommentScale,
			LikeScale:             policy.LikeScale,
			HighThreshold:         policy.HighThreshold,
			MediumThreshold:       policy.MediumThreshold,
		},
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := cfg.Policy().Validate(); err != nil {
		return nil, fmt.Errorf("invalid risk policy in '%s': %w", path, err)
	}
	return cfg, nil
}

// Policy converts the risk section into a scoring policy.
func (c *Config) Policy() risk.Policy {
	return risk.Policy{
		StatusWeight:     c.Risk.StatusWeight,
		EngagementWeight: c.Risk.EngagementWeight,
		StatusSeverity: map[model.VerificationStatus]float64{
			model.StatusVerifiedFalse: c.Risk.SeverityVerifiedFalse,
			model.StatusDebunked:      c.Risk.SeverityDebunked,
			model.StatusFactChecked:   c.Risk.SeverityFactChecked,
			model.StatusFlagged:       c.Risk.SeverityFlagged,
			model.StatusDisputed:      c.Risk.SeverityDisputed,
			model.StatusUnderReview:   c.Risk.SeverityUnderReview,
		},
		ShareWeight:     c.Risk.ShareWeight,
		ViewWeight:      c.Risk.ViewWeight,
		CommentWeight:   c.Risk.CommentWeight,
		LikeWeight:      c.Risk.LikeWeight,
		ShareScale:      c.Risk.ShareScale,
		ViewScale:       c.Risk.ViewScale,
		CommentScale:    c.Risk.CommentScale,
		LikeScale:       c.Risk.LikeScale,
		HighThreshold:   c.Risk.HighThreshold,
		MediumThreshold: c.Risk.MediumThreshold,
	}
}
