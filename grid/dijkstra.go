package grid

import "container/heap"

// Option configures a Dijkstra call.
type Option func(*options)

type options struct {
	onlyClosest bool
}

// WithOnlyClosest stops the search as soon as the first goal is reached,
// instead of continuing until every goal is found or the frontier is
// exhausted.
func WithOnlyClosest() Option {
	return func(o *options) { o.onlyClosest = true }
}

// Dijkstra finds minimum-cost paths from start to every reachable goal in
// goals, using nb for connectivity and cost for per-cell walk cost.
//
// Complexity:
//
//   - Time:  O(E log V), V = width*height, E = V * branching factor
//   - Space: O(V) for the visited map and open heap
//
// Rules mirror AStar: a cell with cost < 0 is impassable except when it is
// itself one of goals, in which case Dijkstra still reaches and reports it
// but never expands past it (a wall has no outgoing edges). If
// cost(start) < 0, Dijkstra returns an empty result.
//
// Returns a map from each reached goal to its path; unreachable goals are
// simply absent, which is a normal outcome, not an error. With
// WithOnlyClosest, at most one entry is returned.
func Dijkstra(start Point, goals []Point, cost CostFunc, nb Neighborhood, opts ...Option) map[Point]Path {
	var cfg options
	for _, o := range opts {
		o(&cfg)
	}

	result := make(map[Point]Path, len(goals))
	if cost(start) < 0 || len(goals) == 0 {
		return result
	}

	remaining := make(map[Point]struct{}, len(goals))
	for _, g := range goals {
		if g == start {
			result[g] = Path{Points: []Point{start, g}, Cost: 0}
			continue
		}
		remaining[g] = struct{}{}
	}
	if len(remaining) == 0 || (cfg.onlyClosest && len(result) > 0) {
		return result
	}

	width, height := nb.Bounds()
	capHint := maxInt(16, (width*height)/4)

	gScore := make(map[Point]int, capHint)
	parent := make(map[Point]Point, capHint)
	gScore[start] = 0

	open := make(dijkstraPQ, 0, capHint)
	heap.Push(&open, &dijkstraItem{p: start, g: 0})

	neighbors := make([]Point, 0, 8)

	for open.Len() > 0 {
		item := heap.Pop(&open).(*dijkstraItem)

		switch best := gScore[item.p]; {
		case item.g > best:
			continue // stale entry
		case item.g < best:
			panic("grid: dijkstra heap invariant violated: popped cost below recorded best")
		}

		if _, isGoal := remaining[item.p]; isGoal {
			result[item.p] = reconstructPath(parent, start, item.p, item.g)
			delete(remaining, item.p)
			if cfg.onlyClosest || len(remaining) == 0 {
				return result
			}
		}

		if cost(item.p) < 0 {
			continue // reached cell is a wall goal: no outgoing edges
		}

		neighbors = nb.Neighbors(item.p, neighbors[:0])
		for _, n := range neighbors {
			if _, nIsGoal := remaining[n]; !nIsGoal && cost(n) < 0 {
				continue
			}

			newG := item.g + cost(item.p)
			if best, ok := gScore[n]; ok && newG >= best {
				continue
			}

			gScore[n] = newG
			parent[n] = item.p
			heap.Push(&open, &dijkstraItem{p: n, g: newG})
		}
	}

	return result
}

// dijkstraItem is a single open-set entry: a candidate cell and its
// known cost-so-far.
type dijkstraItem struct {
	p Point
	g int
}

// dijkstraPQ is a binary min-heap of *dijkstraItem ordered by g. Lazy
// decrease-key, identical discipline to astarPQ.
type dijkstraPQ []*dijkstraItem

func (pq dijkstraPQ) Len() int            { return len(pq) }
func (pq dijkstraPQ) Less(i, j int) bool  { return pq[i].g < pq[j].g }
func (pq dijkstraPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *dijkstraPQ) Push(x interface{}) { *pq = append(*pq, x.(*dijkstraItem)) }
func (pq *dijkstraPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
