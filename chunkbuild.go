package hpapath

import (
	"sort"

	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// buildChunkNodes places entrance nodes on every shared side of c,
// following the gap-detection and candidate-placement rules, and
// inserts them into local (a worker-private node list during New's
// parallel build, or the shared list directly during a TilesChanged
// rebuild).
func buildChunkNodes(c *Chunk, cfg Config, costFn grid.CostFunc, local *graph.NodeList) {
	for s := sideTop; s <= sideLeft; s++ {
		if !c.Shared[s] {
			continue
		}

		length := c.sideLength(s)
		solid := func(i int) bool {
			return costFn(c.sideCell(s, i)) < 0 || costFn(c.sideMirrorCell(s, i)) < 0
		}
		combined := func(i int) int {
			return costFn(c.sideCell(s, i)) + costFn(c.sideMirrorCell(s, i))
		}

		for _, g := range findGaps(length, solid) {
			for _, i := range candidateIndices(g, combined, cfg.PerfectPaths) {
				p := c.sideCell(s, i)
				if id, ok := local.IDAt(p); ok {
					c.Nodes[id] = struct{}{}
					continue
				}
				id := local.AddNode(p, costFn(p))
				c.Nodes[id] = struct{}{}
			}
		}
	}
}

// connectChunkNodes runs a chunk-restricted Dijkstra from every border
// node of c to every other border node of c, installing a reciprocal edge
// for each reachable pair.
func connectChunkNodes(c *Chunk, cfg Config, costFn grid.CostFunc, nb grid.Neighborhood, nl *graph.NodeList) {
	restricted := restrictToChunk(c, costFn)

	ids := sortedNodeIDs(c.Nodes)
	for _, id := range ids {
		node, ok := nl.Node(id)
		if !ok {
			continue
		}

		goals := make([]grid.Point, 0, len(ids)-1)
		idByPos := make(map[grid.Point]NodeID, len(ids))
		for _, other := range ids {
			if other == id {
				continue
			}
			peer, ok := nl.Node(other)
			if !ok {
				continue
			}
			goals = append(goals, peer.Pos)
			idByPos[peer.Pos] = other
		}

		for pos, path := range grid.Dijkstra(node.Pos, goals, restricted, nb) {
			nl.AddEdge(id, idByPos[pos], segmentFromPath(path, cfg.CachePaths))
		}
	}
}

// crossChunkLink connects every pair of adjacent chunks by a single-step
// edge between mirrored border nodes, after all chunks' intra-chunk edges
// have been installed. Only each chunk's right and bottom sides are
// walked, since a chunk's left/top side is some neighbor's right/bottom
// side — walking both would just repeat the same (idempotent) AddEdge.
func crossChunkLink(chunks []*Chunk, nl *graph.NodeList, costFn grid.CostFunc) {
	for _, c := range chunks {
		if c.Shared[sideRight] {
			linkSide(c, sideRight, nl, costFn)
		}
		if c.Shared[sideBottom] {
			linkSide(c, sideBottom, nl, costFn)
		}
	}
}

func linkSide(c *Chunk, s side, nl *graph.NodeList, costFn grid.CostFunc) {
	for id := range c.Nodes {
		node, ok := nl.Node(id)
		if !ok || !onEdge(c, s, node.Pos) {
			continue
		}
		mirror := mirrorAcross(s, node.Pos)
		peerID, ok := nl.IDAt(mirror)
		if !ok {
			continue
		}
		seg := graph.NewKnownSegment([]grid.Point{node.Pos, mirror}, costFn(node.Pos))
		nl.AddEdge(id, peerID, seg)
	}
}

func onEdge(c *Chunk, s side, p grid.Point) bool {
	switch s {
	case sideRight:
		return p.X == c.Origin.X+c.Width-1
	case sideBottom:
		return p.Y == c.Origin.Y+c.Height-1
	}
	return false
}

func mirrorAcross(s side, p grid.Point) grid.Point {
	switch s {
	case sideRight:
		return grid.Point{X: p.X + 1, Y: p.Y}
	case sideBottom:
		return grid.Point{X: p.X, Y: p.Y + 1}
	}
	return p
}

func restrictToChunk(c *Chunk, costFn grid.CostFunc) grid.CostFunc {
	return func(p grid.Point) int {
		if !c.contains(p) {
			return -1
		}
		return costFn(p)
	}
}

func segmentFromPath(path grid.Path, cachePaths bool) *graph.PathSegment {
	if cachePaths {
		return graph.NewKnownSegment(path.Points, path.Cost)
	}
	return graph.NewSummarySegment(path.Start(), path.End(), path.Cost, path.Len())
}

func sortedNodeIDs(set map[NodeID]struct{}) []NodeID {
	ids := make([]NodeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
