package hpapath

import (
	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// PathCache is the hierarchical pathfinding engine: a grid partitioned
// into square chunks, each wired with entrance nodes and intra-chunk
// edges, with adjacent chunks linked across their shared border. Queries
// resolve in the abstract graph, which is far smaller than the grid it
// summarizes, and only fall through to grid-level search to attach a
// query's endpoints or (optionally) to smooth very short paths.
//
// A PathCache is not safe for concurrent FindPath/TilesChanged calls;
// callers must serialize mutation (TilesChanged) against queries
// themselves, the same way graph.NodeList only protects its own
// internal bookkeeping and not cross-call sequencing.
type PathCache struct {
	width, height int
	config        Config
	neighborhood  grid.Neighborhood

	chunksWide, chunksHigh int
	chunks                 []*Chunk

	nodes *graph.NodeList
}

// New builds a PathCache over a width x height grid, using costFn to
// evaluate cell walk costs (negative = wall) and nb for connectivity and
// heuristic. The grid is partitioned into cfg.ChunkSize squares (the last
// row/column of chunks is narrower if the dimensions don't divide
// evenly), entrance nodes are placed and connected per chunk, and
// adjacent chunks are linked across their shared borders — the per-chunk
// work runs concurrently, the merge and cross-chunk linking run
// sequentially afterwards.
func New(width, height int, costFn grid.CostFunc, nb grid.Neighborhood, cfg Config) (*PathCache, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pc := &PathCache{
		width:        width,
		height:       height,
		config:       cfg,
		neighborhood: nb,
		chunksWide:   ceilDiv(width, cfg.ChunkSize),
		chunksHigh:   ceilDiv(height, cfg.ChunkSize),
		nodes:        graph.NewNodeList(),
	}

	pc.chunks = make([]*Chunk, 0, pc.chunksWide*pc.chunksHigh)
	for cy := 0; cy < pc.chunksHigh; cy++ {
		for cx := 0; cx < pc.chunksWide; cx++ {
			origin := grid.Point{X: cx * cfg.ChunkSize, Y: cy * cfg.ChunkSize}
			w := minInt(cfg.ChunkSize, width-origin.X)
			h := minInt(cfg.ChunkSize, height-origin.Y)
			pc.chunks = append(pc.chunks, newChunk(origin, w, h, width, height))
		}
	}

	buildChunksConcurrently(pc.chunks, cfg, costFn, nb, pc.nodes)

	return pc, nil
}

// chunkAt returns the chunk containing p, and the index it was stored at
// in pc.chunks (chunkAt expects p to already be in [0,width)x[0,height)).
func (pc *PathCache) chunkAt(p grid.Point) (*Chunk, int) {
	cx := p.X / pc.config.ChunkSize
	cy := p.Y / pc.config.ChunkSize
	idx := cy*pc.chunksWide + cx
	return pc.chunks[idx], idx
}

// Nodes returns a read-only snapshot of every entrance node currently in
// the abstract graph, for debug inspection: each node's id, grid
// position, and the set of node ids it connects to.
func (pc *PathCache) Nodes() []graph.Node {
	return pc.nodes.Nodes()
}
