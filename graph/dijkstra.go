package graph

import "container/heap"

// Option configures a Dijkstra call.
type Option func(*options)

type options struct {
	onlyClosest bool
}

// WithOnlyClosest stops the search as soon as the first goal is reached.
func WithOnlyClosest() Option {
	return func(o *options) { o.onlyClosest = true }
}

// Dijkstra finds minimum-cost paths from start to every reachable node in
// goals over nl's abstract graph. Mirrors grid.Dijkstra one layer up.
//
// Returns a map from each reached goal to its path; unreachable goals are
// simply absent. With WithOnlyClosest, at most one entry is returned.
func Dijkstra(nl *NodeList, start NodeID, goals []NodeID, opts ...Option) map[NodeID]Path {
	var cfg options
	for _, o := range opts {
		o(&cfg)
	}

	result := make(map[NodeID]Path, len(goals))
	remaining := make(map[NodeID]struct{}, len(goals))
	for _, g := range goals {
		if g == start {
			result[g] = Path{Nodes: []NodeID{start, g}, Cost: 0}
			continue
		}
		remaining[g] = struct{}{}
	}
	if len(remaining) == 0 || (cfg.onlyClosest && len(result) > 0) {
		return result
	}

	nl.mu.RLock()
	defer nl.mu.RUnlock()

	capHint := len(nl.posIndex)
	if capHint < 16 {
		capHint = 16
	}

	gScore := make(map[NodeID]int, capHint)
	parent := make(map[NodeID]NodeID, capHint)
	gScore[start] = 0

	open := make(dijkstraPQ, 0, capHint)
	heap.Push(&open, &dijkstraItem{id: start, g: 0})

	for open.Len() > 0 {
		item := heap.Pop(&open).(*dijkstraItem)

		switch best := gScore[item.id]; {
		case item.g > best:
			continue
		case item.g < best:
			panic("graph: dijkstra heap invariant violated: popped cost below recorded best")
		}

		if _, isGoal := remaining[item.id]; isGoal {
			result[item.id] = reconstructPath(parent, start, item.id, item.g)
			delete(remaining, item.id)
			if cfg.onlyClosest || len(remaining) == 0 {
				return result
			}
		}

		for peer, seg := range nl.slots[item.id].node.Edges {
			newG := item.g + seg.Cost()
			if best, ok := gScore[peer]; ok && newG >= best {
				continue
			}
			gScore[peer] = newG
			parent[peer] = item.id
			heap.Push(&open, &dijkstraItem{id: peer, g: newG})
		}
	}

	return result
}

// dijkstraItem is a single open-set entry in the abstract-graph search.
type dijkstraItem struct {
	id NodeID
	g  int
}

// dijkstraPQ is a binary min-heap of *dijkstraItem ordered by g.
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
