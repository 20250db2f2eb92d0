package layout

import (
	"math"
	"math/rand"

	"github.com/healthguard/vigil/internal/core/model"
)

const defaultStressIterations = 50

// stressLayout is a Kamada-Kawai style stress majorization: target
// pairwise distances are BFS hop counts, pair weights are 1/d^2, and
// each sweep moves every node to the weighted barycenter implied by the
// SMACOF update. Unreachable pairs are held at one hop beyond the graph
// diameter so disconnected components drift apart instead of collapsing.
func stressLayout(g model.Graph, seed int64, iterations int) map[string]Point {
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

	dist := hopDistances(g, nodes)

	for iter := 0; iter < iterations; iter++ {
		for i, u := range nodes {
			var sumX, sumY, sumW float64
			for j, v := range nodes {
				if i == j {
					continue
				}
				d := dist[i][j]
				w := 1 / (d * d)

				dx := pos[u].X - pos[v].X
				dy := pos[u].Y - pos[v].Y
				cur := math.Hypot(dx, dy)
				if cur < 1e-9 {
					angle := rng.Float64() * 2 * math.Pi
					dx, dy = math.Cos(angle), math.Sin(angle)
					cur = 1
				}

				// Position for u at the target distance from v along the
				// current direction.
				sumX += w * (pos[v].X + d*dx/cur)
				sumY += w * (pos[v].Y + d*dy/cur)
				sumW += w
			}
			pos[u] = Point{X: sumX / sumW, Y: sumY / sumW}
		}
	}

	return pos
}

// hopDistances runs a BFS from every node over the undirected edge set.
// Unreachable pairs are assigned maxHops+1.
func hopDistances(g model.Graph, nodes []string) [][]float64 {
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	adj := make([][]int, len(nodes))
	for _, e := range g.Edges() {
		s, t := index[e.Source], index[e.Target]
		adj[s] = append(adj[s], t)
		adj[t] = append(adj[t], s)
	}

	dist := make([][]float64, len(nodes))
	maxHops := 0.0
	for i := range nodes {
		row := make([]float64, len(nodes))
		for j := range row {
			row[j] = -1
		}
		row[i] = 0
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if row[next] < 0 {
					row[next] = row[cur] + 1
					if row[next] > maxHops {
						maxHops = row[next]
					}
					queue = append(queue, next)
				}
			}
		}
		dist[i] = row
	}

	for i := range dist {
		for j := range dist[i] {
			if dist[i][j] < 0 {
				dist[i][j] = maxHops + 1
			}
		}
	}
	return dist
}
