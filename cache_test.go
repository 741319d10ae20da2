package hpapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mich101mich/go-hpa/grid"
)

func gridACostFunc() grid.CostFunc {
	layout := []string{
		". # . . .",
		". # # # #",
		". s . . .",
		". s . # .",
		". . . # .",
	}
	return func(p grid.Point) int {
		if p.X < 0 || p.X >= 5 || p.Y < 0 || p.Y >= 5 {
			return -1
		}
		switch string([]rune(layout[p.Y])[p.X*2]) {
		case "#":
			return -1
		case "s":
			return 10
		default:
			return 1
		}
	}
}

func newGridACache(t *testing.T, cfg Config) (*PathCache, grid.Neighborhood, grid.CostFunc) {
	t.Helper()
	nb, err := grid.NewManhattan(5, 5)
	require.NoError(t, err)
	cost := gridACostFunc()
	cache, err := New(5, 5, cost, nb, cfg)
	require.NoError(t, err)
	return cache, nb, cost
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	nb, err := grid.NewManhattan(1, 1)
	require.NoError(t, err)
	_, err = New(0, 5, func(grid.Point) int { return 1 }, nb, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewRejectsInvalidChunkSize(t *testing.T) {
	nb, err := grid.NewManhattan(5, 5)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.ChunkSize = 0
	_, err = New(5, 5, func(grid.Point) int { return 1 }, nb, cfg)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestNewPartitionsIntoChunks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, _ := newGridACache(t, cfg)
	assert.Equal(t, 2, cache.chunksWide)
	assert.Equal(t, 2, cache.chunksHigh)
	assert.Len(t, cache.chunks, 4)
}

func TestNewPlacesEntranceNodesOnSharedBorders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, _ := newGridACache(t, cfg)
	assert.NotEmpty(t, cache.Nodes())
}

func TestFindPathGridA(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	path, ok := cache.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4}, cost)
	require.True(t, ok)
	assert.Equal(t, 12, path.Cost())

	want := []grid.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4},
		{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 2},
		{X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4},
	}
	assert.Equal(t, want, path.Resolve(cost))
}

func TestFindPathGridBUnreachableGoal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	_, ok := cache.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0}, cost)
	assert.False(t, ok)
}

func TestFindPathWallStartFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	_, ok := cache.FindPath(grid.Point{X: 1, Y: 0}, grid.Point{X: 4, Y: 4}, cost)
	assert.False(t, ok)
}

func TestFindPathDegenerateStartEqualsGoal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	path, ok := cache.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 0}, cost)
	require.True(t, ok)
	assert.Equal(t, 0, path.Cost())
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, path.Resolve(cost))
}

func TestFindClosestGoalPrefersCheapest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	goals := []grid.Point{{X: 4, Y: 4}, {X: 0, Y: 4}}
	closest, path, ok := cache.FindClosestGoal(grid.Point{X: 0, Y: 0}, goals, cost)
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 0, Y: 4}, closest)
	assert.Equal(t, 4, path.Cost())
}

func TestFindPathsSkipsUnreachableGoals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 3
	cache, _, cost := newGridACache(t, cfg)

	goals := []grid.Point{{X: 4, Y: 4}, {X: 2, Y: 0}}
	results := cache.FindPaths(grid.Point{X: 0, Y: 0}, goals, cost)
	assert.Contains(t, results, grid.Point{X: 4, Y: 4})
	assert.NotContains(t, results, grid.Point{X: 2, Y: 0})
}

func TestPerfectPathsMatchesGridOptimal(t *testing.T) {
	cfg := FastConfig()
	cfg.ChunkSize = 3
	cfg.PerfectPaths = true
	cfg.AStarFallback = false
	cache, nb, cost := newGridACache(t, cfg)

	abstract, ok := cache.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4}, cost)
	require.True(t, ok)

	optimal, found := grid.AStar(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4}, cost, nb)
	require.True(t, found)

	assert.Equal(t, optimal.Cost, abstract.Cost())
}
