package model

import "sort"

// Graph is an immutable snapshot of the merged interaction network: a
// node set plus a map from unordered node pairs to summed weight.
// Every endpoint referenced by an edge is in the node set; isolated
// nodes are allowed and carry zero degree. All accessors that return
// collections return fresh, sorted copies so a snapshot can be shared
// across goroutines without coordination.
type Graph struct {
	nodes   map[string]struct{}
	weights map[NodePair]float64
}

// NewGraph assembles a graph snapshot from a node set and merged pair
// weights. Both maps are copied; endpoints missing from nodes are added
// so the edge/node invariant always holds.
func NewGraph(nodes map[string]struct{}, weights map[NodePair]float64) Graph {
	ns := make(map[string]struct{}, len(nodes))
	for id := range nodes {
		ns[id] = struct{}{}
	}
	ws := make(map[NodePair]float64, len(weights))
	for pair, w := range weights {
		ws[pair] = w
		ns[pair.A] = struct{}{}
		ns[pair.B] = struct{}{}
	}
	return Graph{nodes: ns, weights: ws}
}

func (g Graph) NodeCount() int { return len(g.nodes) }

func (g Graph) EdgeCount() int { return len(g.weights) }

func (g Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node ids in ascending order.
func (g Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns all merged edges ordered by (source, target).
func (g Graph) Edges() []WeightedEdge {
	edges := make([]WeightedEdge, 0, len(g.weights))
	for pair, w := range g.weights {
		edges = append(edges, WeightedEdge{Source: pair.A, Target: pair.B, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// Weight returns the merged weight between two nodes, or 0 when no edge
// exists.
func (g Graph) Weight(u, v string) float64 {
	return g.weights[PairOf(u, v)]
}

// Neighbors returns the distinct neighbors of a node in ascending order.
func (g Graph) Neighbors(id string) []string {
	var out []string
	for pair := range g.weights {
		switch id {
		case pair.A:
			out = append(out, pair.B)
		case pair.B:
			out = append(out, pair.A)
		}
	}
	sort.Strings(out)
	return out
}

// Degree is the count of distinct neighbors of a node.
func (g Graph) Degree(id string) int {
	n := 0
	for pair := range g.weights {
		if pair.A == id || pair.B == id {
			n++
		}
	}
	return n
}

// WeightedDegree is the sum of weights on edges incident to a node.
func (g Graph) WeightedDegree(id string) float64 {
	sum := 0.0
	for pair, w := range g.weights {
		if pair.A == id || pair.B == id {
			sum += w
		}
	}
	return sum
}

// Equal reports whether two snapshots have the same node set and the
// same pairwise weights.
func (g Graph) Equal(other Graph) bool {
	if len(g.nodes) != len(other.nodes) || len(g.weights) != len(other.weights) {
		return false
	}
	for id := range g.nodes {
		if _, ok := other.nodes[id]; !ok {
			return false
		}
	}
	for pair, w := range g.weights {
		if other.weights[pair] != w {
			return false
		}
	}
	return true
}
