package hpapath

import (
	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// AbstractPath is the result of a successful FindPath/FindPaths/
// FindClosestGoal query: an ordered list of path segments (attachment
// legs plus abstract-graph edges, already stitched end to end) with an
// iteration cursor over individual grid cells.
//
// Segments may be Summary (unmaterialized): iterating past one with Next
// panics, since rematerializing it requires a cost function the cursor
// doesn't carry on its own. Use SafeNext or Resolve, both of which accept
// one.
type AbstractPath struct {
	segments []*graph.PathSegment
	nb       grid.Neighborhood
	cost     int

	segIdx, ptIdx int
	done          bool
}

func newAbstractPath(segments []*graph.PathSegment, nb grid.Neighborhood) *AbstractPath {
	cost := 0
	for _, seg := range segments {
		cost += seg.Cost()
	}
	return &AbstractPath{segments: segments, nb: nb, cost: cost}
}

// Cost returns the path's total cost, computed once at construction.
func (p *AbstractPath) Cost() int { return p.cost }

// Length returns the number of distinct cells the path visits: the sum of
// each segment's length minus one shared cell per join between segments.
func (p *AbstractPath) Length() int {
	if len(p.segments) == 0 {
		return 0
	}
	total := p.segments[0].Length()
	for _, seg := range p.segments[1:] {
		total += seg.Length() - 1
	}
	return total
}

// Next returns the path's next cell, advancing the cursor. The second
// return is false once the path is exhausted. Panics if the segment the
// cursor is currently inside is a Summary — use SafeNext for paths that
// may contain unmaterialized segments.
func (p *AbstractPath) Next() (grid.Point, bool) {
	return p.advance(nil)
}

// SafeNext is Next, but rematerializes a Summary segment via grid A* (run
// with costFn and this path's neighborhood) the first time the cursor
// enters it, instead of panicking.
func (p *AbstractPath) SafeNext(costFn grid.CostFunc) (grid.Point, bool) {
	return p.advance(costFn)
}

func (p *AbstractPath) advance(costFn grid.CostFunc) (grid.Point, bool) {
	if p.done || p.segIdx >= len(p.segments) {
		return grid.Point{}, false
	}

	seg := p.segments[p.segIdx]
	if !seg.IsKnown() {
		if costFn == nil {
			panic("hpapath: Next called on an AbstractPath with an unmaterialized segment; use SafeNext")
		}
		materializeSegment(seg, costFn, p.nb)
	}

	points := seg.Points()
	pt := points[p.ptIdx]

	p.ptIdx++
	if p.ptIdx >= len(points) {
		p.segIdx++
		p.ptIdx = 1 // the next segment's first point duplicates this one's last
		if p.segIdx >= len(p.segments) {
			p.done = true
		}
	}
	return pt, true
}

// Resolve returns the path's full point sequence, materializing any
// Summary segments along the way via costFn. Unlike Next/SafeNext this
// does not consume the path's iteration cursor.
func (p *AbstractPath) Resolve(costFn grid.CostFunc) []grid.Point {
	var out []grid.Point
	for i, seg := range p.segments {
		if !seg.IsKnown() {
			materializeSegment(seg, costFn, p.nb)
		}
		pts := seg.Points()
		if i == 0 {
			out = append(out, pts...)
		} else {
			out = append(out, pts[1:]...)
		}
	}
	return out
}

// materializeSegment rematerializes a Summary segment in place by running
// grid A* between its endpoints. Panics if no path is found: a Summary
// segment was only ever created from a path that existed at build time,
// so its endpoints becoming disconnected without a TilesChanged rebuild
// is an invariant violation, not a normal "no path" outcome.
func materializeSegment(seg *graph.PathSegment, costFn grid.CostFunc, nb grid.Neighborhood) {
	path, found := grid.AStar(seg.Start(), seg.End(), costFn, nb)
	if !found {
		panic("hpapath: Impossible Path marked as Possible")
	}
	seg.Materialize(path.Points)
}
