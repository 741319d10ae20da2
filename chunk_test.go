package hpapath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mich101mich/go-hpa/grid"
)

func TestFindGapsSplitsOnSolidRuns(t *testing.T) {
	solid := func(i int) bool { return i == 2 || i == 5 }
	gaps := findGaps(8, solid)
	assert.Equal(t, []borderGap{{start: 0, end: 1}, {start: 3, end: 4}, {start: 6, end: 7}}, gaps)
}

func TestFindGapsAllSolidYieldsNoGaps(t *testing.T) {
	gaps := findGaps(4, func(i int) bool { return true })
	assert.Empty(t, gaps)
}

func TestCandidateIndicesAlwaysIncludesEndpoints(t *testing.T) {
	g := borderGap{start: 0, end: 2}
	flatCost := func(i int) int { return 2 }
	got := candidateIndices(g, flatCost, false)
	assert.Equal(t, []int{0, 2}, got)
}

func TestCandidateIndicesGreedyInterior(t *testing.T) {
	g := borderGap{start: 0, end: 4}
	costs := []int{5, 4, 6, 2, 5}
	fn := func(i int) int { return costs[i] }
	got := candidateIndices(g, fn, false)
	// endpoints 0,4 plus every interior index whose cost is a new minimum
	// scanning left to right: idx 1 (4<5), idx 3 (2<4).
	assert.Equal(t, []int{0, 1, 3, 4}, got)
}

func TestCandidateIndicesMidpointOnLongGap(t *testing.T) {
	g := borderGap{start: 0, end: 7}
	flat := func(i int) int { return 1 }
	got := candidateIndices(g, flat, false)
	assert.Contains(t, got, 3) // midpoint of a length-8 gap
}

func TestCandidateIndicesPerfectPathsTakesEveryIndex(t *testing.T) {
	g := borderGap{start: 2, end: 5}
	got := candidateIndices(g, func(int) int { return 0 }, true)
	assert.Equal(t, []int{2, 3, 4, 5}, got)
}

func TestDedupSortInts(t *testing.T) {
	got := dedupSortInts([]int{3, 1, 1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSideIndexOfMatchesSideCell(t *testing.T) {
	c := newChunk(grid.Point{X: 3, Y: 3}, 4, 4, 10, 10)
	for s := sideTop; s <= sideLeft; s++ {
		length := c.sideLength(s)
		for i := 0; i < length; i++ {
			p := c.sideCell(s, i)
			got, ok := c.sideIndexOf(s, p)
			assert.True(t, ok)
			assert.Equal(t, i, got)
		}
	}
}

func TestSideIndexOfRejectsOffSidePoint(t *testing.T) {
	c := newChunk(grid.Point{X: 0, Y: 0}, 4, 4, 10, 10)
	_, ok := c.sideIndexOf(sideTop, grid.Point{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, sideBottom, sideTop.opposite())
	assert.Equal(t, sideTop, sideBottom.opposite())
	assert.Equal(t, sideLeft, sideRight.opposite())
	assert.Equal(t, sideRight, sideLeft.opposite())
}
