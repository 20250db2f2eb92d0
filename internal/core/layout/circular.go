package layout

import (
	"math"

	"github.com/healthguard/vigil/internal/core/model"
)

// circularLayout places nodes on the unit circle in ascending id order.
// It is seed-free and fully deterministic.
func circularLayout(g model.Graph) map[string]Point {
	nodes := g.Nodes()
	pos := make(map[string]Point, len(nodes))
	step := 2 * math.Pi / float64(len(nodes))
	for i, id := range nodes {
		angle := step * float64(i)
		pos[id] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pos
}
