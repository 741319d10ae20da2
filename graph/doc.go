// Package graph implements the abstract-graph layer of the hierarchical
// pathfinding engine: entrance nodes, the cached path segments that
// connect them, and the two search algorithms (AStar and multi-goal
// Dijkstra) that run over that small graph instead of the raw grid.
//
// A NodeList owns its nodes' lifetime: ids are allocated from a slab-style
// free list so that removing a node during an incremental rebuild lets its
// id be reused without ever producing two live nodes with the same id.
// Edges are installed in reciprocal pairs by AddEdge, sharing the
// underlying point buffer between a segment and its reverse so that
// flipping direction never re-walks or re-allocates the path.
package graph
