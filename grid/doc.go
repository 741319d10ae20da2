// Package grid implements the leaf layer of the hierarchical pathfinding
// engine: points, neighborhood strategies, and the two search algorithms
// (A* and multi-goal Dijkstra) that operate directly on a caller-owned grid.
//
// Nothing in this package stores a grid. Callers pass a CostFunc closure
// that reports the walk cost of a cell (negative meaning wall) and a
// Neighborhood strategy that knows how cells connect. Both search functions
// are safe to call concurrently against the same closure as long as the
// closure itself is safe for concurrent reads.
//
// Cost convention: the cost of a returned Path includes the walk cost of
// every cell except the last one — equivalently, each step's cost is the
// walk cost of the cell being *left*, not the one being entered. This
// convention is what makes PathSegment reversal in package graph a cheap,
// symmetric adjustment instead of a full re-walk.
package grid
