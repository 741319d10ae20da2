package hpapath

import (
	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// FindPath resolves a single start/goal query into an AbstractPath.
//
// Returns false if start sits on a wall, if goal is unreachable, or if
// start's chunk is an isolated cave that cannot reach goal directly.
func (pc *PathCache) FindPath(start, goal grid.Point, costFn grid.CostFunc) (*AbstractPath, bool) {
	if costFn(start) < 0 {
		return nil, false
	}
	if start == goal {
		return newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment([]grid.Point{start}, 0)}, pc.neighborhood), true
	}

	startID, startAttach, startOK := pc.attach(start, costFn, false)
	if !startOK {
		return pc.caveEscape(start, goal, pc.chunkAt1(start), costFn)
	}

	goalID, goalAttach, goalOK := pc.attach(goal, costFn, true)
	if !goalOK {
		return pc.caveEscape(start, goal, pc.chunkAt1(goal), costFn)
	}

	abstract, found := graph.AStar(pc.nodes, pc.neighborhood, startID, goalID)
	if !found {
		return nil, false
	}

	if pc.config.AStarFallback && len(abstract.Nodes) <= 4 {
		if path, found := grid.AStar(start, goal, costFn, pc.neighborhood); found {
			return newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment(path.Points, path.Cost)}, pc.neighborhood), true
		}
	}

	return pc.stitch(start, goal, costFn, startAttach, goalAttach, abstract.Nodes), true
}

// chunkAt1 is chunkAt without the index, for callers that only need the
// chunk itself.
func (pc *PathCache) chunkAt1(p grid.Point) *Chunk {
	c, _ := pc.chunkAt(p)
	return c
}

// caveEscape handles the cave-isolation fallback: when start
// or goal has no border-node connectivity within its own chunk, the only
// remaining option is a direct chunk-bounded A* between start and goal,
// restricted to the chunk that produced the isolation.
func (pc *PathCache) caveEscape(start, goal grid.Point, c *Chunk, costFn grid.CostFunc) (*AbstractPath, bool) {
	path, found := grid.AStar(start, goal, restrictToChunk(c, costFn), pc.neighborhood)
	if !found {
		return nil, false
	}
	return newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment(path.Points, path.Cost)}, pc.neighborhood), true
}

// attach resolves p to an entrance-node id. If a node already sits at p,
// it is returned with no attachment path. Otherwise a chunk-bounded
// Dijkstra finds the nearest border node; ok is false if none is
// reachable (p sits in an isolated cave within its chunk).
//
// reverse selects the goal-side variant: the attachment path must read
// border→p rather than p→border, so the chunk-bounded Dijkstra still runs
// forward from p (cost direction is asymmetric and only defined that
// way), and the resulting path/cost is flipped with the same reversal
// formula PathSegment.reversedWith uses.
func (pc *PathCache) attach(p grid.Point, costFn grid.CostFunc, reverse bool) (NodeID, *grid.Path, bool) {
	if id, ok := pc.nodes.IDAt(p); ok {
		return id, nil, true
	}

	c, _ := pc.chunkAt(p)
	restricted := restrictToChunk(c, costFn)
	ids := sortedNodeIDs(c.Nodes)

	goals := make([]grid.Point, 0, len(ids))
	idByPos := make(map[grid.Point]NodeID, len(ids))
	for _, id := range ids {
		node, ok := pc.nodes.Node(id)
		if !ok {
			continue
		}
		goals = append(goals, node.Pos)
		idByPos[node.Pos] = id
	}

	for pos, path := range grid.Dijkstra(p, goals, restricted, pc.neighborhood, grid.WithOnlyClosest()) {
		id := idByPos[pos]
		if reverse {
			rev := reversePath(path, costFn(p), costFn(pos))
			return id, &rev, true
		}
		return id, &path, true
	}
	return 0, nil, false
}

// reversePath reverses a grid.Path's point order and adjusts its cost by
// the same start/end walk-cost formula PathSegment.reversedWith applies
// to a single edge.
func reversePath(path grid.Path, startWalk, endWalk int) grid.Path {
	pts := make([]grid.Point, len(path.Points))
	for i, p := range path.Points {
		pts[len(path.Points)-1-i] = p
	}
	return grid.Path{Points: pts, Cost: path.Cost - startWalk + endWalk}
}

// stitch assembles the final AbstractPath from the resolved attachment
// legs and the abstract-graph node sequence, applying the
// skip optimization at either end when the adjacent abstract edge already
// passes through start/goal.
func (pc *PathCache) stitch(start, goal grid.Point, costFn grid.CostFunc, startAttach, goalAttach *grid.Path, nodes []NodeID) *AbstractPath {
	n := len(nodes)
	var segments []*graph.PathSegment

	skipStartPrefix := false
	skipGoalSuffix := false

	if n >= 2 {
		a, b := nodes[0], nodes[1]
		nodeA, _ := pc.nodes.Node(a)
		nodeB, _ := pc.nodes.Node(b)
		seg := nodeA.Edges[b]
		if startAttach != nil && seg.IsKnown() {
			ca, _ := pc.chunkAt(nodeA.Pos)
			if ca.contains(nodeB.Pos) {
				pts := seg.Points()
				if len(pts) >= 2 && pts[1] == start {
					skipStartPrefix = true
				}
			}
		}

		a, b = nodes[n-2], nodes[n-1]
		nodeA, _ = pc.nodes.Node(a)
		nodeB, _ = pc.nodes.Node(b)
		seg = nodeA.Edges[b]
		if goalAttach != nil && seg.IsKnown() {
			cb, _ := pc.chunkAt(nodeB.Pos)
			if cb.contains(nodeA.Pos) {
				pts := seg.Points()
				if len(pts) >= 2 && pts[len(pts)-2] == goal {
					skipGoalSuffix = true
				}
			}
		}
	}

	if startAttach != nil && !skipStartPrefix {
		segments = append(segments, graph.NewKnownSegment(startAttach.Points, startAttach.Cost))
	}

	for i := 0; i < n-1; i++ {
		a, b := nodes[i], nodes[i+1]
		nodeA, _ := pc.nodes.Node(a)
		seg := nodeA.Edges[b]

		switch {
		case i == 0 && skipStartPrefix:
			pts := seg.Points()
			segments = append(segments, graph.NewKnownSegment(pts[1:], seg.Cost()-costFn(nodeA.Pos)))
		case i == n-2 && skipGoalSuffix:
			pts := seg.Points()
			segments = append(segments, graph.NewKnownSegment(pts[:len(pts)-1], seg.Cost()-costFn(goal)))
		default:
			segments = append(segments, seg)
		}
	}

	if goalAttach != nil && !skipGoalSuffix {
		segments = append(segments, graph.NewKnownSegment(goalAttach.Points, goalAttach.Cost))
	}

	return newAbstractPath(segments, pc.neighborhood)
}

// FindPaths resolves start against every reachable goal, returning a
// mapping from goal position to its AbstractPath. Unreachable goals are
// simply absent from the result. Unlike FindPath, there is no A* fallback
// smoothing: callers querying many goals at once accept the HPA*
// approximation in exchange for a single shared search.
func (pc *PathCache) FindPaths(start grid.Point, goals []grid.Point, costFn grid.CostFunc) map[grid.Point]*AbstractPath {
	result := make(map[grid.Point]*AbstractPath, len(goals))
	if costFn(start) < 0 {
		return result
	}

	startID, startAttach, startOK := pc.attach(start, costFn, false)

	type resolved struct {
		pos    grid.Point
		id     NodeID
		attach *grid.Path
	}
	var targets []resolved
	for _, g := range goals {
		if g == start {
			result[g] = newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment([]grid.Point{g}, 0)}, pc.neighborhood)
			continue
		}
		if !startOK {
			if path, found := grid.AStar(start, g, restrictToChunk(pc.chunkAt1(start), costFn), pc.neighborhood); found {
				result[g] = newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment(path.Points, path.Cost)}, pc.neighborhood)
			}
			continue
		}
		id, attach, ok := pc.attach(g, costFn, true)
		if !ok {
			if path, found := grid.AStar(start, g, restrictToChunk(pc.chunkAt1(g), costFn), pc.neighborhood); found {
				result[g] = newAbstractPath([]*graph.PathSegment{graph.NewKnownSegment(path.Points, path.Cost)}, pc.neighborhood)
			}
			continue
		}
		targets = append(targets, resolved{pos: g, id: id, attach: attach})
	}
	if !startOK || len(targets) == 0 {
		return result
	}

	goalIDs := make([]NodeID, len(targets))
	byID := make(map[NodeID]resolved, len(targets))
	for i, t := range targets {
		goalIDs[i] = t.id
		byID[t.id] = t
	}

	for id, abstract := range graph.Dijkstra(pc.nodes, startID, goalIDs) {
		t := byID[id]
		result[t.pos] = pc.stitch(start, t.pos, costFn, startAttach, t.attach, abstract.Nodes)
	}
	return result
}

// FindClosestGoal resolves start once, resolves every goal, and runs the
// abstract-graph Dijkstra with early termination at the first goal
// reached — cheaper than FindPaths when only the nearest goal matters.
func (pc *PathCache) FindClosestGoal(start grid.Point, goals []grid.Point, costFn grid.CostFunc) (grid.Point, *AbstractPath, bool) {
	if costFn(start) < 0 {
		return grid.Point{}, nil, false
	}

	startID, startAttach, startOK := pc.attach(start, costFn, false)

	type resolvedGoal struct {
		pos    grid.Point
		id     NodeID
		attach *grid.Path
	}
	var targets []resolvedGoal
	for _, g := range goals {
		if g == start {
			seg := graph.NewKnownSegment([]grid.Point{g}, 0)
			return g, newAbstractPath([]*graph.PathSegment{seg}, pc.neighborhood), true
		}
		if !startOK {
			if path, found := grid.AStar(start, g, restrictToChunk(pc.chunkAt1(start), costFn), pc.neighborhood); found {
				seg := graph.NewKnownSegment(path.Points, path.Cost)
				return g, newAbstractPath([]*graph.PathSegment{seg}, pc.neighborhood), true
			}
			continue
		}
		id, attach, ok := pc.attach(g, costFn, true)
		if !ok {
			if path, found := grid.AStar(start, g, restrictToChunk(pc.chunkAt1(g), costFn), pc.neighborhood); found {
				seg := graph.NewKnownSegment(path.Points, path.Cost)
				return g, newAbstractPath([]*graph.PathSegment{seg}, pc.neighborhood), true
			}
			continue
		}
		targets = append(targets, resolvedGoal{pos: g, id: id, attach: attach})
	}
	if !startOK || len(targets) == 0 {
		return grid.Point{}, nil, false
	}

	goalIDs := make([]NodeID, len(targets))
	byID := make(map[NodeID]resolvedGoal, len(targets))
	for i, t := range targets {
		goalIDs[i] = t.id
		byID[t.id] = t
	}

	for id, abstract := range graph.Dijkstra(pc.nodes, startID, goalIDs, graph.WithOnlyClosest()) {
		t := byID[id]
		return t.pos, pc.stitch(start, t.pos, costFn, startAttach, t.attach, abstract.Nodes), true
	}
	return grid.Point{}, nil, false
}
