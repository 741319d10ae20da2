package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattanHeuristic(t *testing.T) {
	m, err := NewManhattan(10, 10)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Heuristic(Point{3, 1}, Point{0, 0}))
	assert.Equal(t, 18, m.MaxHeuristic())
}

func TestChebyshevHeuristic(t *testing.T) {
	c, err := NewChebyshev(10, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Heuristic(Point{3, 1}, Point{0, 0}))
	assert.Equal(t, 9, c.MaxHeuristic())
}

func TestManhattanNeighborsBounds(t *testing.T) {
	m, err := NewManhattan(3, 3)
	require.NoError(t, err)

	corners := m.Neighbors(Point{0, 0}, nil)
	assert.ElementsMatch(t, []Point{{1, 0}, {0, 1}}, corners)

	center := m.Neighbors(Point{1, 1}, nil)
	assert.ElementsMatch(t, []Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, center)
}

func TestChebyshevNeighborsBounds(t *testing.T) {
	c, err := NewChebyshev(3, 3)
	require.NoError(t, err)

	corner := c.Neighbors(Point{0, 0}, nil)
	assert.ElementsMatch(t, []Point{{1, 0}, {0, 1}, {1, 1}}, corner)

	center := c.Neighbors(Point{1, 1}, nil)
	assert.Len(t, center, 8)
}

func TestInvalidBounds(t *testing.T) {
	_, err := NewManhattan(0, 5)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewChebyshev(5, -1)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
