package model

// InteractionEdge is one raw weighted interaction record between two
// accounts that shared related content. The relation is undirected:
// (A,B) and (B,A) describe the same pair and are merged at build time.
type InteractionEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// NodePair is the canonical unordered key for an edge: A is always the
// lexicographically smaller endpoint.
type NodePair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// PairOf returns the canonical pair for two endpoints in either order.
func PairOf(u, v string) NodePair {
	if u > v {
		u, v = v, u
	}
	return NodePair{A: u, B: v}
}

// WeightedEdge is a merged edge as exposed by a built Graph, with
// Source < Target.
type WeightedEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}
