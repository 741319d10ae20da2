package hpapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mich101mich/go-hpa/grid"
)

func TestClassifySideMarkSingleInterior(t *testing.T) {
	level, corner := classifySideMark(sideTouch{2: {}}, 6)
	assert.Equal(t, markInner, level)
	assert.Equal(t, -1, corner)
}

func TestClassifySideMarkSingleCorner(t *testing.T) {
	level, corner := classifySideMark(sideTouch{0: {}}, 6)
	assert.Equal(t, markCorner, level)
	assert.Equal(t, 0, corner)
}

func TestClassifySideMarkTwoDistinctCornersIsAll(t *testing.T) {
	level, _ := classifySideMark(sideTouch{0: {}, 5: {}}, 6)
	assert.Equal(t, markAll, level)
}

func TestClassifySideMarkInnerPlusCornerIsAll(t *testing.T) {
	level, _ := classifySideMark(sideTouch{0: {}, 3: {}}, 6)
	assert.Equal(t, markAll, level)
}

func TestClassifySideMarkRepeatedHitOnSameCornerStaysCorner(t *testing.T) {
	// A set never holds duplicate keys; this documents that collapsing
	// repeated hits to the same index keeps the mark at Corner rather
	// than escalating to All.
	touch := sideTouch{}
	touch[0] = struct{}{}
	touch[0] = struct{}{}
	level, corner := classifySideMark(touch, 6)
	assert.Equal(t, markCorner, level)
	assert.Equal(t, 0, corner)
}

func TestClassifySideMarkEmptyIsNone(t *testing.T) {
	level, _ := classifySideMark(sideTouch{}, 6)
	assert.Equal(t, markNone, level)
}

func gapGridCache(t *testing.T) (*PathCache, *[100]int, grid.CostFunc) {
	t.Helper()
	const width, height = 10, 10
	var costs [100]int
	for i := range costs {
		costs[i] = 1
	}
	idx := func(p grid.Point) int { return p.Y*width + p.X }
	for y := 0; y < height; y++ {
		if y != 5 {
			costs[idx(grid.Point{X: 5, Y: y})] = -1
		}
	}
	costFn := func(p grid.Point) int {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return -1
		}
		return costs[idx(p)]
	}
	nb, err := grid.NewManhattan(width, height)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, err := New(width, height, costFn, nb, cfg)
	require.NoError(t, err)
	return cache, &costs, costFn
}

func TestTilesChangedClosingTheOnlyGapRemovesPath(t *testing.T) {
	cache, costs, costFn := gapGridCache(t)
	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 9, Y: 9}

	_, ok := cache.FindPath(start, goal, costFn)
	require.True(t, ok)

	gap := grid.Point{X: 5, Y: 5}
	costs[gap.Y*10+gap.X] = -1
	cache.TilesChanged([]grid.Point{gap}, costFn)

	_, ok = cache.FindPath(start, goal, costFn)
	assert.False(t, ok)
}

func TestTilesChangedReopeningTheGapRestoresPath(t *testing.T) {
	cache, costs, costFn := gapGridCache(t)
	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 9, Y: 9}
	gap := grid.Point{X: 5, Y: 5}

	costs[gap.Y*10+gap.X] = -1
	cache.TilesChanged([]grid.Point{gap}, costFn)
	_, ok := cache.FindPath(start, goal, costFn)
	require.False(t, ok)

	costs[gap.Y*10+gap.X] = 1
	cache.TilesChanged([]grid.Point{gap}, costFn)

	path, ok := cache.FindPath(start, goal, costFn)
	require.True(t, ok)
	// 18 is the Manhattan-optimal cost through the reopened gap; the
	// abstraction may approximate above it but never below.
	assert.GreaterOrEqual(t, path.Cost(), 18)
}
