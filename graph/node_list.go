package graph

import (
	"sync"

	"github.com/mich101mich/go-hpa/grid"
)

// nodeSlot is one slab slot: either a live node, or a free slot linked
// into NodeList.freeList.
type nodeSlot struct {
	node Node
	used bool
}

// NodeList holds every entrance node in a PathCache: a slab of nodes
// addressed by stable NodeID, plus a position index for O(1) id-at-point
// lookup. Ids freed by RemoveNode are reused by later AddNode calls,
// exactly as a slab allocator promises; NodeList itself guarantees no two
// live nodes ever share an id.
//
// Mutation is guarded by an internal RWMutex so that concurrent queries
// (pure readers) never race a PathCache.TilesChanged rebuild, though
// callers are expected to serialize writers themselves (see the
// concurrency notes on PathCache).
type NodeList struct {
	mu       sync.RWMutex
	slots    []nodeSlot
	freeList []NodeID
	posIndex map[grid.Point]NodeID
}

// NewNodeList returns an empty node list.
func NewNodeList() *NodeList {
	return &NodeList{posIndex: make(map[grid.Point]NodeID)}
}

// Len returns the number of live nodes.
func (nl *NodeList) Len() int {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	return len(nl.posIndex)
}

// AddNode inserts a new node at pos with the given walk cost and returns
// its id. If a slot was freed by a prior RemoveNode, it is reused.
func (nl *NodeList) AddNode(pos grid.Point, walkCost int) NodeID {
	nl.mu.Lock()
	defer nl.mu.Unlock()
	return nl.addNodeLocked(pos, walkCost)
}

func (nl *NodeList) addNodeLocked(pos grid.Point, walkCost int) NodeID {
	node := Node{Pos: pos, WalkCost: walkCost, Edges: make(map[NodeID]*PathSegment)}

	var id NodeID
	if n := len(nl.freeList); n > 0 {
		id = nl.freeList[n-1]
		nl.freeList = nl.freeList[:n-1]
		node.ID = id
		nl.slots[id] = nodeSlot{node: node, used: true}
	} else {
		id = NodeID(len(nl.slots))
		node.ID = id
		nl.slots = append(nl.slots, nodeSlot{node: node, used: true})
	}
	nl.posIndex[pos] = id
	return id
}

// AddEdge installs a directed edge from a to b carrying seg, and — unless
// b is a wall node — a reciprocal reversed edge from b to a. Panics if a
// is itself a wall: a wall node has no outgoing edges, so asking to add
// one is a programmer error, not a recoverable condition. If an edge to b
// of equal cost already exists on a, the call is a no-op.
func (nl *NodeList) AddEdge(a, b NodeID, seg *PathSegment) {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	srcNode := &nl.slots[a].node
	if srcNode.IsWall() {
		panic("graph: AddEdge source node is a wall")
	}
	if existing, ok := srcNode.Edges[b]; ok && existing.Cost() == seg.Cost() {
		return
	}

	tgtNode := &nl.slots[b].node
	srcNode.Edges[b] = seg
	if !tgtNode.IsWall() {
		tgtNode.Edges[a] = seg.reversedWith(srcNode.WalkCost, tgtNode.WalkCost)
	}
}

// RemoveNode deletes the node with the given id, clearing every peer's
// reverse edge to it and freeing the id for reuse.
func (nl *NodeList) RemoveNode(id NodeID) {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	node := nl.slots[id].node
	for peer := range node.Edges {
		delete(nl.slots[peer].node.Edges, id)
	}
	delete(nl.posIndex, node.Pos)
	nl.slots[id] = nodeSlot{}
	nl.freeList = append(nl.freeList, id)
}

// ClearEdges removes every outgoing edge of id along with each peer's
// reverse edge back to it, without removing id itself. Used when a
// node's surroundings changed and its connectivity must be recomputed
// from scratch rather than merely extended.
func (nl *NodeList) ClearEdges(id NodeID) {
	nl.mu.Lock()
	defer nl.mu.Unlock()
	node := &nl.slots[id].node
	for peer := range node.Edges {
		delete(nl.slots[peer].node.Edges, id)
	}
	node.Edges = make(map[NodeID]*PathSegment)
}

// IDAt returns the id of the node at pos, if any.
func (nl *NodeList) IDAt(pos grid.Point) (NodeID, bool) {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	id, ok := nl.posIndex[pos]
	return id, ok
}

// Node returns a copy of the node with the given id.
func (nl *NodeList) Node(id NodeID) (Node, bool) {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	if int(id) >= len(nl.slots) || !nl.slots[id].used {
		return Node{}, false
	}
	return nl.slots[id].node, true
}

// Nodes returns a stable-order snapshot of every live node, sorted by id.
// This is the basis of PathCache's debug inspection iterator.
func (nl *NodeList) Nodes() []Node {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	out := make([]Node, 0, len(nl.posIndex))
	for _, slot := range nl.slots {
		if slot.used {
			out = append(out, slot.node)
		}
	}
	return out
}

// Absorb merges every node of other into nl, remapping other's ids to
// newly allocated ids in nl (per-worker ids are not globally unique) and
// rewriting every absorbed edge's endpoints through that remap. Returns
// the old→new id remap so a caller that tracked other's ids elsewhere
// (e.g. a Chunk's border-node set built against a worker-local list) can
// translate them into nl's id space. other is left with stale internal
// state and must not be used afterwards.
//
// This is the sequential merge step of PathCache.New's parallel chunk
// build: each worker builds its chunk into a local NodeList, and the
// calling goroutine absorbs every worker's list into the shared one.
func (nl *NodeList) Absorb(other *NodeList) map[NodeID]NodeID {
	nl.mu.Lock()
	defer nl.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()

	remap := make(map[NodeID]NodeID, len(other.posIndex))
	for _, slot := range other.slots {
		if !slot.used {
			continue
		}
		newID := nl.addNodeLocked(slot.node.Pos, slot.node.WalkCost)
		remap[slot.node.ID] = newID
	}

	for _, slot := range other.slots {
		if !slot.used {
			continue
		}
		newID := remap[slot.node.ID]
		newEdges := make(map[NodeID]*PathSegment, len(slot.node.Edges))
		for oldPeer, seg := range slot.node.Edges {
			newEdges[remap[oldPeer]] = seg
		}
		nl.slots[newID].node.Edges = newEdges
	}

	return remap
}
