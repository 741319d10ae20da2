package hpapath

import (
	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// NodeID and Point are re-exported from the lower layers so callers of
// this package rarely need to import grid or graph directly for the
// common inspection and query surface.
type (
	NodeID = graph.NodeID
	Point  = grid.Point
)

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
