// Package risk scores flagged posts for misinformation severity. The
// scorer is a pure function of the post record: identical input always
// yields the identical score and tier.
package risk

import (
	"fmt"
	"math"

	"github.com/healthguard/vigil/internal/core/model"
)

// Policy holds the scoring constants. Score = 100 * (StatusWeight *
// status_severity + EngagementWeight * engagement_blend), where the
// engagement blend is a weighted sum of each metric normalized against
// its reference scale and capped at 1. Both weight groups must sum to 1
// for the score to stay inside [0,100]; the score is clamped regardless.
type Policy struct {
	StatusWeight     float64
	EngagementWeight float64

	// StatusSeverity maps each verification status to [0,1]. Severity
	// must be non-increasing along model.VerificationStatuses (most
	// confirmed-false first) so a more confirmed-false status can never
	// lower the score.
	StatusSeverity map[model.VerificationStatus]float64

	// Relative weights and reference scales of the engagement signals.
	ShareWeight   float64
	ViewWeight    float64
	CommentWeight float64
	LikeWeight    float64
	ShareScale    float64
	ViewScale     float64
	CommentScale  float64
	LikeScale     float64

	// Tier thresholds partition [0,100]: score >= HighThreshold is
	// High, >= MediumThreshold is Medium, the rest Low.
	HighThreshold   float64
	MediumThreshold float64
}

// DefaultPolicy returns the production scoring constants.
func DefaultPolicy() Policy {
	return Policy{
		StatusWeight:     0.6,
		EngagementWeight: 0.4,
		StatusSeverity: map[model.VerificationStatus]float64{
			model.StatusVerifiedFalse: 1.0,
			model.StatusDebunked:      0.95,
			model.StatusFactChecked:   0.8,
			model.StatusFlagged:       0.6,
			model.StatusDisputed:      0.4,
			model.StatusUnderReview:   0.15,
		},
		ShareWeight:     0.5,
		ViewWeight:      0.3,
		CommentWeight:   0.15,
		LikeWeight:      0.05,
		ShareScale:      10000,
		ViewScale:       100000,
		CommentScale:    1000,
		LikeScale:       50000,
		HighThreshold:   70,
		MediumThreshold: 40,
	}
}

// Validate rejects policies that would break the scoring invariants.
func (p Policy) Validate() error {
	if p.MediumThreshold < 0 || p.HighThreshold > 100 || p.MediumThreshold >= p.HighThreshold {
		return fmt.Errorf("%w: tier thresholds must satisfy 0 <= medium < high <= 100", model.ErrInvalidParameter)
	}
	if p.ShareScale <= 0 || p.ViewScale <= 0 || p.CommentScale <= 0 || p.LikeScale <= 0 {
		return fmt.Errorf("%w: engagement reference scales must be positive", model.ErrInvalidParameter)
	}
	prev := math.Inf(1)
	for _, status := range model.VerificationStatuses {
		severity := p.StatusSeverity[status]
		if severity > prev {
			return fmt.Errorf("%w: status severity for %q breaks the confirmed-false ordering", model.ErrInvalidParameter, status)
		}
		prev = severity
	}
	return nil
}

// Scorer applies a fixed policy to post records.
type Scorer struct {
	policy Policy
}

// NewScorer builds a scorer for the given policy.
func NewScorer(policy Policy) (*Scorer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{policy: policy}, nil
}

// NewDefaultScorer builds a scorer with DefaultPolicy.
func NewDefaultScorer() *Scorer {
	return &Scorer{policy: DefaultPolicy()}
}

// Score returns the misinformation score in [0,100] and its tier. An
// unknown verification status contributes zero severity, leaving the
// engagement signal alone; engagement counts below zero count as zero.
func (s *Scorer) Score(post model.PostRecord) (float64, model.RiskTier) {
	p := s.policy

	engagement := p.ShareWeight*normalize(post.Shares, p.ShareScale) +
		p.ViewWeight*normalize(post.Views, p.ViewScale) +
		p.CommentWeight*normalize(post.Comments, p.CommentScale) +
		p.LikeWeight*normalize(post.Likes, p.LikeScale)

	score := 100 * (p.StatusWeight*p.StatusSeverity[post.Status] + p.EngagementWeight*engagement)
	score = math.Max(0, math.Min(100, score))

	return score, s.Tier(score)
}

// Tier classifies a score against the policy thresholds.
func (s *Scorer) Tier(score float64) model.RiskTier {
	switch {
	case score >= s.policy.HighThreshold:
		return model.TierHigh
	case score >= s.policy.MediumThreshold:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

func normalize(count int, scale float64) float64 {
	if count <= 0 {
		return 0
	}
	return math.Min(1, float64(count)/scale)
}
