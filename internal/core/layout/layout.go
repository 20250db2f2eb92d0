// Package layout computes 2D node positions for graph snapshots. The
// algorithm set is a closed enumeration; seeded algorithms reproduce
// identical coordinates for the same seed. Coordinates are unconstrained
// reals; the presentation layer rescales as it sees fit.
package layout

import (
	"fmt"
	"strings"

	"github.com/healthguard/vigil/internal/core/model"
)

// Algorithm names one of the four supported layout strategies.
type Algorithm string

const (
	ForceDirected      Algorithm = "force-directed"
	Circular           Algorithm = "circular"
	Random             Algorithm = "random"
	StressMajorization Algorithm = "stress-majorization"
)

// ParseAlgorithm maps an external algorithm name onto the enumeration.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case ForceDirected:
		return ForceDirected, nil
	case Circular:
		return Circular, nil
	case Random:
		return Random, nil
	case StressMajorization:
		return StressMajorization, nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedLayout, name)
	}
}

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options carries the scalar layout parameters. Seed is required by
// every algorithm except circular. Iterations <= 0 selects the
// per-algorithm default.
type Options struct {
	Seed       *int64
	Iterations int
}

// Seed is a convenience for building Options literals.
func Seed(v int64) *int64 { return &v }

// Compute returns a position for every node of g under the chosen
// algorithm. An empty graph yields an empty mapping.
func Compute(g model.Graph, algo Algorithm, opts Options) (map[string]Point, error) {
	if g.NodeCount() == 0 {
		return map[string]Point{}, nil
	}

	switch algo {
	case Circular:
		return circularLayout(g), nil
	case Random:
		seed, err := requireSeed(algo, opts)
		if err != nil {
			return nil, err
		}
		return randomLayout(g, seed), nil
	case ForceDirected:
		seed, err := requireSeed(algo, opts)
		if err != nil {
			return nil, err
		}
		return forceLayout(g, seed, iterationsOr(opts, defaultForceIterations)), nil
	case StressMajorization:
		seed, err := requireSeed(algo, opts)
		if err != nil {
			return nil, err
		}
		return stressLayout(g, seed, iterationsOr(opts, defaultStressIterations)), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedLayout, algo)
	}
}

func requireSeed(algo Algorithm, opts Options) (int64, error) {
	if opts.Seed == nil {
		return 0, fmt.Errorf("%w: %s layout requires a seed", model.ErrInvalidParameter, algo)
	}
	return *opts.Seed, nil
}

func iterationsOr(opts Options, fallback int) int {
	if opts.Iterations > 0 {
		return opts.Iterations
	}
	return fallback
}
