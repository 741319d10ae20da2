package grid

import "container/heap"

// AStar finds a minimum-cost path from start to goal directly on the grid,
// using nb for connectivity and cost for per-cell walk cost.
//
// Complexity:
//
//   - Time:  O(E log V), V = width*height, E = V * branching factor
//   - Space: O(V) for the visited map and open heap
//
// Rules (see package doc for the cost convention):
//
//   - A cell with cost < 0 is impassable, except goal itself may be a
//     wall: AStar still returns a path ending on it as long as some
//     walkable neighbor of goal was reached.
//   - If cost(start) < 0, AStar fails immediately (found == false);
//     standing on a wall is never valid.
//   - If start == goal, AStar returns a degenerate two-point path of cost
//     0 (the caller is already there).
//
// Returns found == false if goal is unreachable; this is a normal outcome,
// not an error.
func AStar(start, goal Point, cost CostFunc, nb Neighborhood) (path Path, found bool) {
	if cost(start) < 0 {
		return Path{}, false
	}
	if start == goal {
		return Path{Points: []Point{start, goal}, Cost: 0}, true
	}

	width, height := nb.Bounds()
	capHint := estimateCapacity(nb, start, goal, width*height)

	gScore := make(map[Point]int, capHint)
	parent := make(map[Point]Point, capHint)
	gScore[start] = 0

	open := make(astarPQ, 0, capHint)
	heap.Push(&open, &astarItem{p: start, g: 0, f: nb.Heuristic(start, goal)})

	neighbors := make([]Point, 0, 8)

	for open.Len() > 0 {
		item := heap.Pop(&open).(*astarItem)

		switch best := gScore[item.p]; {
		case item.g > best:
			continue // stale entry: a better cost was already found
		case item.g < best:
			panic("grid: astar heap invariant violated: popped cost below recorded best")
		}

		if item.p == goal {
			return reconstructPath(parent, start, goal, item.g), true
		}

		neighbors = nb.Neighbors(item.p, neighbors[:0])
		for _, n := range neighbors {
			if n != goal && cost(n) < 0 {
				continue // wall, and not the goal exception
			}

			newG := item.g + cost(item.p) // cost of leaving item.p
			if best, ok := gScore[n]; ok && newG >= best {
				continue
			}

			gScore[n] = newG
			parent[n] = item.p
			heap.Push(&open, &astarItem{p: n, g: newG, f: newG + nb.Heuristic(n, goal)})
		}
	}

	return Path{}, false
}

// astarItem is a single open-set entry: a candidate cell with its known
// cost-so-far (g) and estimated total cost (f = g + heuristic).
type astarItem struct {
	p    Point
	g, f int
}

// astarPQ is a binary min-heap of *astarItem ordered by f. Lazy
// decrease-key: a cheaper route to an already-queued cell is pushed as a
// new entry rather than updating the old one in place; the stale entry is
// discarded when popped (see AStar's gScore comparison).
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
