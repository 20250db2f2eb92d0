package layout

import (
	"math"
	"math/rand"

	"github.com/healthguard/vigil/internal/core/model"
)

const defaultForceIterations = 100

// forceLayout is a Fruchterman-Reingold force simulation: all node
// pairs repel, edges attract proportionally to their merged weight, and
// a linearly cooling temperature caps per-step displacement. Nodes and
// edges are visited in sorted order so a seed fully determines the
// result.
func forceLayout(g model.Graph, seed int64, iterations int) map[string]Point {
	nodes := g.Nodes()
	n := len(nodes)
	rng := rand.New(rand.NewSource(seed))

	pos := make(map[string]Point, n)
	for _, id := range nodes {
		pos[id] = Point{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
	}
	if n == 1 {
		return pos
	}

	edges := g.Edges()
	maxWeight := 0.0
	for _, e := range edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	// Optimal pairwise distance for a unit-area frame.
	k := math.Sqrt(1.0 / float64(n))
	temp := 0.1

	for iter := 0; iter < iterations; iter++ {
		disp := make(map[string]Point, n)

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := nodes[i], nodes[j]
				dx := pos[u].X - pos[v].X
				dy := pos[u].Y - pos[v].Y
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					// Coincident nodes get nudged apart along a
					// seed-determined direction.
					angle := rng.Float64() * 2 * math.Pi
					dx, dy = math.Cos(angle), math.Sin(angle)
					dist = 1e-9
				}
				force := k * k / dist
				du, dv := disp[u], disp[v]
				du.X += dx / dist * force
				du.Y += dy / dist * force
				dv.X -= dx / dist * force
				dv.Y -= dy / dist * force
				disp[u], disp[v] = du, dv
			}
		}

		// Attraction along edges, scaled by relative weight so heavily
		// shared pairs sit closer.
		for _, e := range edges {
			dx := pos[e.Source].X - pos[e.Target].X
			dy := pos[e.Source].Y - pos[e.Target].Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				continue
			}
			force := dist * dist / k * (e.Weight / maxWeight)
			du, dv := disp[e.Source], disp[e.Target]
			du.X -= dx / dist * force
			du.Y -= dy / dist * force
			dv.X += dx / dist * force
			dv.Y += dy / dist * force
			disp[e.Source], disp[e.Target] = du, dv
		}

		// Apply displacements capped by the current temperature.
		for _, id := range nodes {
			d := disp[id]
			length := math.Hypot(d.X, d.Y)
			if length < 1e-9 {
				continue
			}
			limited := math.Min(length, temp)
			p := pos[id]
			p.X += d.X / length * limited
			p.Y += d.Y / length * limited
			pos[id] = p
		}

		temp *= 1 - (1 / float64(iterations))
	}

	return pos
}
