// Package hpapath is a hierarchical pathfinding (HPA*) engine for large
// weighted grids.
//
// 🚀 What is go-hpa?
//
//	A grid-agnostic library that partitions a caller-owned grid into
//	fixed-size chunks, builds a small abstract graph of entrance nodes
//	connecting adjacent chunks, and answers pathfinding queries against
//	that abstract graph instead of the raw grid:
//
//	  • Chunk decomposition & entrance placement, cached across queries
//	  • Query-time A* / multi-goal Dijkstra over the abstract graph
//	  • Incremental rebuild when the caller edits the grid (TilesChanged)
//	  • Lazily-stitching AbstractPath results, resolved segment by segment
//
// ✨ Why hierarchical pathfinding?
//
//   - Fast repeated queries — the expensive part (chunk search) is
//     cached; a query walks a small abstract graph, not the whole grid
//   - Caller owns the grid — go-hpa never stores tile data itself, only
//     a CostFunc callback, so it fits any grid representation
//   - Tunable — Config trades memory for query speed (PerfectPaths,
//     CachePaths, ChunkSize, AStarFallback)
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/  — Point, Neighborhood, grid-level AStar/Dijkstra
//	graph/ — NodeID, NodeList, PathSegment, abstract-graph AStar/Dijkstra
//	oracle/, gridgen/ — test-only ground truth and grid generation
//
// and the PathCache/AbstractPath types that tie them together live at
// the module root.
//
//	go get github.com/mich101mich/go-hpa
package hpapath
