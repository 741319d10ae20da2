package graph

import "github.com/mich101mich/go-hpa/grid"

// NodeID identifies an entrance node within a NodeList. Ids are allocated
// from a slab-style free list (see NodeList) and are stable for a node's
// lifetime, but MAY be reused once the node they named has been removed —
// callers must not hold an id across a mutation of the owning NodeList.
type NodeID uint32

// Node is an entrance node placed on a chunk border: a position, its walk
// cost, and its outgoing edges keyed by neighbor id.
type Node struct {
	ID       NodeID
	Pos      grid.Point
	WalkCost int
	Edges    map[NodeID]*PathSegment
}

// IsWall reports whether this node sits on a wall cell. A wall node may
// only appear as an edge target, never as a search source: AddEdge panics
// if asked to install an edge whose source is a wall.
func (n *Node) IsWall() bool { return n.WalkCost < 0 }

// Path is the result of a successful abstract-graph search: an ordered
// sequence of node ids and the total cost of traversing the edges between
// them.
type Path struct {
	Nodes []NodeID
	Cost  int
}

// Len returns the number of nodes in the path.
func (p Path) Len() int { return len(p.Nodes) }
