package hpapath

import (
	"sort"

	"github.com/mich101mich/go-hpa/grid"
)

// side names one of a chunk's four rectangle edges, in clockwise
// top/right/bottom/left order.
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

func (s side) opposite() side { return (s + 2) % 4 }

// Chunk is a fixed-size square sub-region of the grid. It owns the set of
// entrance-node ids placed on its own border and, per side, whether that
// side borders another chunk (an "internal" border) or the outer edge of
// the grid.
type Chunk struct {
	Origin grid.Point
	Width  int
	Height int
	Shared [4]bool

	Nodes map[NodeID]struct{}
}

func newChunk(origin grid.Point, width, height, gridWidth, gridHeight int) *Chunk {
	c := &Chunk{
		Origin: origin,
		Width:  width,
		Height: height,
		Nodes:  make(map[NodeID]struct{}),
	}
	c.Shared[sideTop] = origin.Y > 0
	c.Shared[sideBottom] = origin.Y+height < gridHeight
	c.Shared[sideLeft] = origin.X > 0
	c.Shared[sideRight] = origin.X+width < gridWidth
	return c
}

// contains reports whether p lies within this chunk's rectangle.
func (c *Chunk) contains(p grid.Point) bool {
	return p.X >= c.Origin.X && p.X < c.Origin.X+c.Width &&
		p.Y >= c.Origin.Y && p.Y < c.Origin.Y+c.Height
}

// sideLength returns the number of cells along side s.
func (c *Chunk) sideLength(s side) int {
	if s == sideTop || s == sideBottom {
		return c.Width
	}
	return c.Height
}

// sideCell returns the i-th cell (0-indexed) of side s, the border cell
// itself (inside this chunk).
func (c *Chunk) sideCell(s side, i int) grid.Point {
	switch s {
	case sideTop:
		return grid.Point{X: c.Origin.X + i, Y: c.Origin.Y}
	case sideBottom:
		return grid.Point{X: c.Origin.X + i, Y: c.Origin.Y + c.Height - 1}
	case sideLeft:
		return grid.Point{X: c.Origin.X, Y: c.Origin.Y + i}
	case sideRight:
		return grid.Point{X: c.Origin.X + c.Width - 1, Y: c.Origin.Y + i}
	}
	panic("hpapath: invalid side")
}

// sideMirrorCell returns the cell one step outward from sideCell(s, i),
// i.e. in the neighboring chunk across the border.
func (c *Chunk) sideMirrorCell(s side, i int) grid.Point {
	switch s {
	case sideTop:
		return grid.Point{X: c.Origin.X + i, Y: c.Origin.Y - 1}
	case sideBottom:
		return grid.Point{X: c.Origin.X + i, Y: c.Origin.Y + c.Height}
	case sideLeft:
		return grid.Point{X: c.Origin.X - 1, Y: c.Origin.Y + i}
	case sideRight:
		return grid.Point{X: c.Origin.X + c.Width, Y: c.Origin.Y + i}
	}
	panic("hpapath: invalid side")
}

// sideIndexOf returns the index along side s that p occupies, if p lies
// exactly on that side's strip.
func (c *Chunk) sideIndexOf(s side, p grid.Point) (int, bool) {
	switch s {
	case sideTop:
		if p.Y != c.Origin.Y {
			return 0, false
		}
		return p.X - c.Origin.X, true
	case sideBottom:
		if p.Y != c.Origin.Y+c.Height-1 {
			return 0, false
		}
		return p.X - c.Origin.X, true
	case sideLeft:
		if p.X != c.Origin.X {
			return 0, false
		}
		return p.Y - c.Origin.Y, true
	case sideRight:
		if p.X != c.Origin.X+c.Width-1 {
			return 0, false
		}
		return p.Y - c.Origin.Y, true
	}
	return 0, false
}

// borderGap is a maximal run of non-solid indices along a side's 1-D
// strip, inclusive of both endpoints.
type borderGap struct {
	start, end int
}

// findGaps scans a side's 1-D strip of the given length and returns its
// maximal non-solid runs.
func findGaps(length int, solid func(i int) bool) []borderGap {
	var gaps []borderGap
	i := 0
	for i < length {
		if solid(i) {
			i++
			continue
		}
		start := i
		for i < length && !solid(i) {
			i++
		}
		gaps = append(gaps, borderGap{start: start, end: i - 1})
	}
	return gaps
}

// candidateIndices picks entrance-node indices within a single gap: always
// the two endpoints, then a greedy monotonically-decreasing interior scan,
// then a midpoint node for long gaps — or, under PerfectPaths, every index
// in the gap.
func candidateIndices(g borderGap, combinedCost func(i int) int, perfectPaths bool) []int {
	if perfectPaths {
		out := make([]int, 0, g.end-g.start+1)
		for i := g.start; i <= g.end; i++ {
			out = append(out, i)
		}
		return out
	}

	out := []int{g.start, g.end}
	if g.end > g.start {
		min := combinedCost(g.start)
		if c := combinedCost(g.end); c < min {
			min = c
		}
		for i := g.start + 1; i < g.end; i++ {
			if c := combinedCost(i); c < min {
				out = append(out, i)
				min = c
			}
		}
	}

	if gapLen := g.end - g.start + 1; gapLen > 6 {
		out = append(out, (g.start+g.end)/2)
	}

	return dedupSortInts(out)
}

func dedupSortInts(in []int) []int {
	sort.Ints(in)
	out := in[:0]
	var last int
	for i, v := range in {
		if i == 0 || v != last {
			out = append(out, v)
			last = v
		}
	}
	return out
}
