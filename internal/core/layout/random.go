package layout

import (
	"math/rand"

	"github.com/healthguard/vigil/internal/core/model"
)

// randomLayout scatters nodes uniformly over the unit square. Node
// order is fixed before drawing, so a seed fully determines the result.
func randomLayout(g model.Graph, seed int64) map[string]Point {
	rng := rand.New(rand.NewSource(seed))
	nodes := g.Nodes()
	pos := make(map[string]Point, len(nodes))
	for _, id := range nodes {
		pos[id] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return pos
}
