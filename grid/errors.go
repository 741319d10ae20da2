package grid

import "errors"

// Sentinel errors returned by grid construction. Search functions never
// return an error: "no path" and "invalid start" are normal outcomes
// represented by a false/empty return (see AStar and Dijkstra), matching
// a library whose callers should not need to unwrap an error just to learn
// a cell is unreachable.
var (
	// ErrInvalidBounds indicates a Neighborhood was constructed with a
	// non-positive width or height.
	ErrInvalidBounds = errors.New("grid: width and height must both be positive")
)
