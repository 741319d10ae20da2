package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridALayout is the 5x5 scenario used across the grid and abstract-graph
// test suites: rows are y=0..4 top to bottom, '.'=1, 's'=10, '#'=wall.
var gridALayout = []string{
	". # . . .",
	". # # # #",
	". s . . .",
	". s . # .",
	". . . # .",
}

func gridACost(p Point) int {
	return layoutCost(gridALayout, p)
}

func layoutCost(layout []string, p Point) int {
	if p.Y < 0 || p.Y >= len(layout) {
		return -1
	}
	row := layout[p.Y]
	// each cell is one rune separated by spaces: ". # . . ."
	cells := make([]byte, 0, len(row))
	for i := 0; i < len(row); i += 2 {
		cells = append(cells, row[i])
	}
	if p.X < 0 || p.X >= len(cells) {
		return -1
	}
	switch cells[p.X] {
	case '.':
		return 1
	case 's':
		return 10
	case '#':
		return -1
	default:
		return -1
	}
}

func TestAStarGridA(t *testing.T) {
	nb, err := NewManhattan(5, 5)
	require.NoError(t, err)

	path, found := AStar(Point{0, 0}, Point{4, 4}, gridACost, nb)
	require.True(t, found)
	assert.Equal(t, 12, path.Cost)

	want := []Point{
		{0, 0},
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 4}, {2, 4},
		{2, 3}, {2, 2},
		{3, 2}, {4, 2},
		{4, 3}, {4, 4},
	}
	assert.Equal(t, want, path.Points)
}

func TestAStarGridBUnreachable(t *testing.T) {
	nb, err := NewManhattan(5, 5)
	require.NoError(t, err)

	_, found := AStar(Point{0, 0}, Point{2, 0}, gridACost, nb)
	assert.False(t, found)
}

func TestAStarDegenerateStartEqualsGoal(t *testing.T) {
	nb, err := NewManhattan(5, 5)
	require.NoError(t, err)

	path, found := AStar(Point{2, 2}, Point{2, 2}, gridACost, nb)
	require.True(t, found)
	assert.Equal(t, 0, path.Cost)
	assert.Equal(t, []Point{{2, 2}, {2, 2}}, path.Points)
}

func TestAStarWallStartFails(t *testing.T) {
	nb, err := NewManhattan(5, 5)
	require.NoError(t, err)

	_, found := AStar(Point{1, 0}, Point{4, 4}, gridACost, nb)
	assert.False(t, found)
}

func TestAStarGoalMayBeWall(t *testing.T) {
	nb, err := NewManhattan(5, 5)
	require.NoError(t, err)

	// (1,1) is a wall but is reachable as a terminal cell from (0,1).
	path, found := AStar(Point{0, 0}, Point{1, 1}, gridACost, nb)
	require.True(t, found)
	assert.Equal(t, Point{1, 1}, path.End())
}
