package hpapath

import (
	"runtime"
	"sort"
	"sync"

	"github.com/mich101mich/go-hpa/grid"
)

// markLevel is how strongly a single chunk side was affected by a batch
// of cell changes, per the four-level lattice: no effect, an interior
// cell changed, exactly one corner changed, or the side needs a full
// rebuild.
type markLevel int

const (
	markNone markLevel = iota
	markInner
	markCorner
	markAll
)

// sideTouch is the set of border-strip indices (deduplicated) touched on
// one chunk side by a batch of changes, from both direct hits and
// propagation from the peer chunk across that border.
type sideTouch map[int]struct{}

// classifySideMark derives a side's mark level from its touched indices.
// Two distinct corner indices, or any interior index alongside a corner
// index, both produce All; a single corner index alone produces
// Corner(index); any interior index alone (with no corner) produces
// Inner. A repeated hit on the same index collapses naturally since
// indices is already a set — this is the reconciliation of the "Inner
// upgrades Corner only on equality collision" rule with "All is stronger
// than Inner+Corner": the collision in question is two marks landing on
// the very same index, not a coordinate collision in space.
func classifySideMark(indices sideTouch, length int) (level markLevel, cornerIdx int) {
	hasInner := false
	corners := map[int]struct{}{}
	for i := range indices {
		if i == 0 || i == length-1 {
			corners[i] = struct{}{}
		} else {
			hasInner = true
		}
	}
	switch {
	case hasInner && len(corners) > 0:
		return markAll, -1
	case hasInner:
		return markInner, -1
	case len(corners) >= 2:
		return markAll, -1
	case len(corners) == 1:
		for i := range corners {
			return markCorner, i
		}
	}
	return markNone, -1
}

// TilesChanged incrementally rebuilds the abstract graph after a batch of
// grid cells changed cost, leaving it equivalent to a cache built fresh
// over the mutated grid without re-running New. Affected sides
// are classified, their border nodes dropped (preserving an untouched
// corner where the marking allows it), candidate nodes are recomputed and
// reconnected chunk by chunk, and cross-chunk linking runs once at the
// end.
func (pc *PathCache) TilesChanged(changed []grid.Point, costFn grid.CostFunc) {
	if len(changed) == 0 {
		return
	}

	touched := make(map[int]map[side]sideTouch)
	markTouch := func(chunkIdx int, s side, i int) {
		bySide, ok := touched[chunkIdx]
		if !ok {
			bySide = make(map[side]sideTouch)
			touched[chunkIdx] = bySide
		}
		t, ok := bySide[s]
		if !ok {
			t = make(sideTouch)
			bySide[s] = t
		}
		t[i] = struct{}{}
	}

	for _, p := range changed {
		c, idx := pc.chunkAt(p)
		for s := sideTop; s <= sideLeft; s++ {
			if !c.Shared[s] {
				continue
			}
			if i, ok := c.sideIndexOf(s, p); ok {
				markTouch(idx, s, i)
			}
		}
	}
	if len(touched) == 0 {
		return
	}

	// A marked side's peer border must be re-evaluated too, since its own
	// gap detection reads these same mirrored cells.
	for idx, bySide := range touched {
		for s, indices := range bySide {
			peerIdx := pc.neighborChunkIndex(idx, s)
			if peerIdx < 0 {
				continue
			}
			for i := range indices {
				markTouch(peerIdx, s.opposite(), i)
			}
		}
	}

	dirty := make([]int, 0, len(touched))
	for idx := range touched {
		dirty = append(dirty, idx)
	}
	sort.Ints(dirty)

	for _, idx := range dirty {
		c := pc.chunks[idx]
		for s, indices := range touched[idx] {
			level, cornerIdx := classifySideMark(indices, c.sideLength(s))
			if level == markNone {
				continue
			}
			pc.dropSideNodes(c, s, level, cornerIdx)
		}
	}

	pc.rebuildDirtyChunks(dirty, costFn)

	crossChunkLink(pc.chunks, pc.nodes, costFn)
}

// dropSideNodes removes every border node on side s of c, except that a
// Corner(cornerIdx) marking preserves the node at the side's other
// corner — the one that was not itself touched.
func (pc *PathCache) dropSideNodes(c *Chunk, s side, level markLevel, cornerIdx int) {
	length := c.sideLength(s)
	preserve := -1
	if level == markCorner && length > 1 {
		if cornerIdx == 0 {
			preserve = length - 1
		} else {
			preserve = 0
		}
	}
	for i := 0; i < length; i++ {
		if i == preserve {
			continue
		}
		p := c.sideCell(s, i)
		id, ok := pc.nodes.IDAt(p)
		if !ok {
			continue
		}
		pc.nodes.RemoveNode(id)
		delete(c.Nodes, id)
	}
}

// rebuildDirtyChunks clears every surviving node's outgoing edges in each
// dirty chunk (its intra-chunk edges are now stale even if the node
// itself wasn't dropped), then regenerates candidate border nodes and
// intra-chunk connections for every dirty chunk concurrently.
func (pc *PathCache) rebuildDirtyChunks(dirty []int, costFn grid.CostFunc) {
	for _, idx := range dirty {
		c := pc.chunks[idx]
		for id := range c.Nodes {
			pc.nodes.ClearEdges(id)
		}
	}

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(dirty) {
		nWorkers = len(dirty)
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	jobs := make(chan int, len(dirty))
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := pc.chunks[idx]
				buildChunkNodes(c, pc.config, costFn, pc.nodes)
				connectChunkNodes(c, pc.config, costFn, pc.neighborhood, pc.nodes)
			}
		}()
	}
	for _, idx := range dirty {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
}

// neighborChunkIndex returns the chunk index adjacent to idx across side
// s, or -1 if idx has no neighbor there.
func (pc *PathCache) neighborChunkIndex(idx int, s side) int {
	cx := idx % pc.chunksWide
	cy := idx / pc.chunksWide
	switch s {
	case sideTop:
		cy--
	case sideBottom:
		cy++
	case sideLeft:
		cx--
	case sideRight:
		cx++
	}
	if cx < 0 || cx >= pc.chunksWide || cy < 0 || cy >= pc.chunksHigh {
		return -1
	}
	return cy*pc.chunksWide + cx
}
