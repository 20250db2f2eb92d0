package model

import "errors"

// Error taxonomy for the engine. Callers are expected to test with
// errors.Is after unwrapping.
var (
	// ErrInvalidEdge marks interaction records that can never enter a
	// graph: self-loops and non-positive weights.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrUnsupportedLayout marks an unknown layout algorithm name.
	ErrUnsupportedLayout = errors.New("unsupported layout algorithm")

	// ErrInvalidParameter marks out-of-range scalar parameters
	// (top_n < 1, min_connections < 0, missing seed).
	ErrInvalidParameter = errors.New("invalid parameter")
)
