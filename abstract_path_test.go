package hpapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

func straightCost(grid.Point) int { return 1 }

func straightNeighborhood(t *testing.T) grid.Neighborhood {
	t.Helper()
	nb, err := grid.NewManhattan(20, 20)
	require.NoError(t, err)
	return nb
}

func TestAbstractPathNextWalksEveryCellOnce(t *testing.T) {
	segA := graph.NewKnownSegment([]grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 2)
	segB := graph.NewKnownSegment([]grid.Point{{X: 2, Y: 0}, {X: 2, Y: 1}}, 1)
	path := newAbstractPath([]*graph.PathSegment{segA, segB}, straightNeighborhood(t))

	var got []grid.Point
	for {
		p, ok := path.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, got)
	assert.Equal(t, 3, path.Cost())
}

func TestAbstractPathNextPanicsOnUnmaterializedSegment(t *testing.T) {
	seg := graph.NewSummarySegment(grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 0}, 3, 4)
	path := newAbstractPath([]*graph.PathSegment{seg}, straightNeighborhood(t))
	assert.Panics(t, func() { path.Next() })
}

func TestAbstractPathSafeNextMaterializes(t *testing.T) {
	seg := graph.NewSummarySegment(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0}, 2, 3)
	path := newAbstractPath([]*graph.PathSegment{seg}, straightNeighborhood(t))

	p, ok := path.SafeNext(straightCost)
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, p)
	assert.True(t, seg.IsKnown())
}

func TestAbstractPathResolveDoesNotConsumeCursor(t *testing.T) {
	seg := graph.NewKnownSegment([]grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	path := newAbstractPath([]*graph.PathSegment{seg}, straightNeighborhood(t))

	pts := path.Resolve(straightCost)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, pts)

	// cursor is unaffected by Resolve; Next still starts from the beginning.
	p, ok := path.Next()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, p)
}

func TestAbstractPathLengthSubtractsJoins(t *testing.T) {
	segA := graph.NewKnownSegment([]grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 2)
	segB := graph.NewKnownSegment([]grid.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, 2)
	path := newAbstractPath([]*graph.PathSegment{segA, segB}, straightNeighborhood(t))
	assert.Equal(t, 5, path.Length())
}
