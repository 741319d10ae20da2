package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mich101mich/go-hpa/grid"
)

func TestAbstractDijkstraMultiGoal(t *testing.T) {
	nl, start, mid1, _, goal := buildDiamond(t)

	result := Dijkstra(nl, start, []NodeID{goal, mid1})
	require.Contains(t, result, goal)
	require.Contains(t, result, mid1)
	assert.Equal(t, 7, result[goal].Cost)
	assert.Equal(t, 3, result[mid1].Cost)
}

func TestAbstractDijkstraOnlyClosest(t *testing.T) {
	nl, start, mid1, _, goal := buildDiamond(t)

	result := Dijkstra(nl, start, []NodeID{goal, mid1}, WithOnlyClosest())
	assert.Len(t, result, 1)
	assert.Contains(t, result, mid1)
}

func TestAbstractDijkstraUnreachableGoalSkipped(t *testing.T) {
	nl, start, _, _, goal := buildDiamond(t)
	isolated := nl.AddNode(grid.Point{X: 9, Y: 9}, 1) // no edges: unreachable from start

	result := Dijkstra(nl, start, []NodeID{goal, isolated})
	assert.Contains(t, result, goal)
	assert.NotContains(t, result, isolated)
}
