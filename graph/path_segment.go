package graph

import "github.com/mich101mich/go-hpa/grid"

// PathSegment is an edge's payload: either a fully materialized grid path
// (Known) or just its endpoints, cost, and length (Summary), chosen per
// node list by the hpapath Config.CachePaths setting. A Summary segment
// must be rematerialized on demand (by running grid.AStar between its
// endpoints) before its points can be iterated.
//
// A segment and its reciprocal on the peer node share the same underlying
// point slice; only the reversed flag differs between them, so flipping
// direction is an O(1) flag flip rather than a copy.
type PathSegment struct {
	points   []grid.Point // nil for a pure Summary segment
	start    grid.Point
	end      grid.Point
	cost     int
	length   int
	reversed bool
}

// NewKnownSegment builds a materialized segment from an ordered, non-empty
// point sequence and its cost under the grid cost convention (see package
// grid's doc comment).
func NewKnownSegment(points []grid.Point, cost int) *PathSegment {
	return &PathSegment{
		points: points,
		start:  points[0],
		end:    points[len(points)-1],
		cost:   cost,
		length: len(points),
	}
}

// NewSummarySegment builds an unmaterialized segment: only its endpoints,
// cost, and length are known. Its points are produced lazily by
// rematerializing a grid search between start and end.
func NewSummarySegment(start, end grid.Point, cost, length int) *PathSegment {
	return &PathSegment{start: start, end: end, cost: cost, length: length}
}

// IsKnown reports whether this segment's points are already materialized.
func (s *PathSegment) IsKnown() bool { return s.points != nil }

// Cost returns the segment's cost in its current (possibly reversed)
// direction.
func (s *PathSegment) Cost() int { return s.cost }

// Length returns the number of cells the segment spans.
func (s *PathSegment) Length() int { return s.length }

// Start returns the segment's first cell in its current direction.
func (s *PathSegment) Start() grid.Point {
	if s.reversed {
		return s.end
	}
	return s.start
}

// End returns the segment's last cell in its current direction.
func (s *PathSegment) End() grid.Point {
	if s.reversed {
		return s.start
	}
	return s.end
}

// Points returns the segment's point sequence in its current direction.
// Returns nil if the segment is a Summary; callers needing its points must
// rematerialize it first (see the hpapath package's resolution helpers).
func (s *PathSegment) Points() []grid.Point {
	if !s.IsKnown() {
		return nil
	}
	if !s.reversed {
		return s.points
	}
	out := make([]grid.Point, len(s.points))
	for i, p := range s.points {
		out[len(s.points)-1-i] = p
	}
	return out
}

// Materialize replaces a Summary segment's contents with an already-known
// point sequence (e.g. one resolved by a caller via grid.AStar), without
// disturbing the segment's current direction or reciprocal relationship.
// No-op if the segment is already Known.
func (s *PathSegment) Materialize(points []grid.Point) {
	if s.IsKnown() {
		return
	}
	if s.reversed {
		rev := make([]grid.Point, len(points))
		for i, p := range points {
			rev[len(points)-1-i] = p
		}
		s.points = rev
	} else {
		s.points = points
	}
}

// reversedWith returns a new segment sharing this one's point buffer (if
// any) but walked in the opposite direction, with its cost adjusted for
// the asymmetric cost convention: a segment's cost includes the walk cost
// of its current start cell but not its current end cell. startWalkCost
// and endWalkCost are the walk costs of this segment's current start and
// end nodes, respectively.
//
// reversed_cost = cost − start_walk_cost + end_walk_cost
func (s *PathSegment) reversedWith(startWalkCost, endWalkCost int) *PathSegment {
	return &PathSegment{
		points:   s.points,
		start:    s.start,
		end:      s.end,
		cost:     s.cost - startWalkCost + endWalkCost,
		length:   s.length,
		reversed: !s.reversed,
	}
}
