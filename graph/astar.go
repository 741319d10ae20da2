package graph

import (
	"container/heap"

	"github.com/mich101mich/go-hpa/grid"
)

// AStar finds a minimum-cost path from start to goal over nl's abstract
// graph, using nb's heuristic on node positions to guide the search. This
// mirrors grid.AStar exactly — same lazy decrease-key discipline, same
// stale-entry invariant — one layer up, where edges are PathSegments
// between entrance nodes instead of grid steps.
//
// Returns found == false if goal is unreachable from start; a normal
// outcome, not an error.
func AStar(nl *NodeList, nb grid.Neighborhood, start, goal NodeID) (path Path, found bool) {
	if start == goal {
		return Path{Nodes: []NodeID{start, goal}, Cost: 0}, true
	}

	nl.mu.RLock()
	defer nl.mu.RUnlock()

	capHint := estimateCapacity(nl, nb, start, goal)

	gScore := make(map[NodeID]int, capHint)
	parent := make(map[NodeID]NodeID, capHint)
	gScore[start] = 0

	startPos := nl.slots[start].node.Pos
	goalPos := nl.slots[goal].node.Pos

	open := make(astarPQ, 0, capHint)
	heap.Push(&open, &astarItem{id: start, g: 0, f: nb.Heuristic(startPos, goalPos)})

	for open.Len() > 0 {
		item := heap.Pop(&open).(*astarItem)

		switch best := gScore[item.id]; {
		case item.g > best:
			continue
		case item.g < best:
			panic("graph: astar heap invariant violated: popped cost below recorded best")
		}

		if item.id == goal {
			return reconstructPath(parent, start, goal, item.g), true
		}

		for peer, seg := range nl.slots[item.id].node.Edges {
			newG := item.g + seg.Cost()
			if best, ok := gScore[peer]; ok && newG >= best {
				continue
			}
			gScore[peer] = newG
			parent[peer] = item.id
			peerPos := nl.slots[peer].node.Pos
			heap.Push(&open, &astarItem{id: peer, g: newG, f: newG + nb.Heuristic(peerPos, goalPos)})
		}
	}

	return Path{}, false
}

func reconstructPath(parent map[NodeID]NodeID, start, goal NodeID, cost int) Path {
	ids := []NodeID{goal}
	cur := goal
	for cur != start {
		cur = parent[cur]
		ids = append(ids, cur)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return Path{Nodes: ids, Cost: cost}
}

// estimateCapacity sizes search scratch structures using the same
// heuristic-ratio heuristic as grid.estimateCapacity, scaled by the
// number of live nodes rather than grid cells.
func estimateCapacity(nl *NodeList, nb grid.Neighborhood, start, goal NodeID) int {
	total := len(nl.posIndex)
	maxH := nb.MaxHeuristic()
	if maxH <= 0 || total == 0 {
		return 16
	}
	h := nb.Heuristic(nl.slots[start].node.Pos, nl.slots[goal].node.Pos)
	hint := h * total / maxH
	if hint < 16 {
		hint = 16
	}
	if hint > total {
		hint = total
	}
	return hint
}

// astarItem is a single open-set entry in the abstract-graph search.
type astarItem struct {
	id   NodeID
	g, f int
}

// astarPQ is a binary min-heap of *astarItem ordered by f, identical in
// discipline to grid's astarPQ.
type astarPQ []*astarItem

func (pq astarPQ) Len() int            { return len(pq) }
func (pq astarPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq astarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(*astarItem)) }
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
