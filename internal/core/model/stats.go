package model

// NetworkStats is an aggregate view over one filtered graph snapshot.
// It has no identity of its own and is recomputed whenever the filter
// threshold changes.
type NetworkStats struct {
	NodeCount int     `json:"node_count"`
	EdgeCount int     `json:"edge_count"`
	Density   float64 `json:"density"`
	AvgDegree float64 `json:"avg_degree"`
}
