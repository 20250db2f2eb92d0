package model

// RiskTier is the coarse High/Medium/Low classification used for both
// post scores and spreader rankings.
type RiskTier string

const (
	TierHigh   RiskTier = "High"
	TierMedium RiskTier = "Medium"
	TierLow    RiskTier = "Low"
)

// RankingEntry is one row of the super-spreader ranking, derived from a
// specific graph snapshot and recomputed on demand.
type RankingEntry struct {
	NodeID         string   `json:"node_id"`
	Degree         int      `json:"degree"`
	WeightedDegree float64  `json:"weighted_degree"`
	Tier           RiskTier `json:"risk_tier"`
}
