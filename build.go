package hpapath

import (
	"runtime"
	"sync"

	"github.com/mich101mich/go-hpa/graph"
	"github.com/mich101mich/go-hpa/grid"
)

// buildResult is one chunk's independently-built local node list, handed
// back from a worker to the sequential merge step.
type buildResult struct {
	chunk *Chunk
	local *graph.NodeList
}

// buildChunksConcurrently builds every chunk's border nodes and
// intra-chunk edges in parallel, each into its own private NodeList, then
// absorbs each into nl sequentially (ids are not globally unique across
// workers) and finally runs cross-chunk linking on the merged graph.
//
// Worker count is runtime.GOMAXPROCS(0), mirroring the fixed worker-pool
// pattern used for concurrent numerical work elsewhere in the ecosystem:
// a jobs channel feeds a bounded set of goroutines, synchronized by a
// sync.WaitGroup, with results merged back on the calling goroutine.
func buildChunksConcurrently(chunks []*Chunk, cfg Config, costFn grid.CostFunc, nb grid.Neighborhood, nl *graph.NodeList) {
	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(chunks) {
		nWorkers = len(chunks)
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	jobs := make(chan int, len(chunks))
	results := make([]buildResult, len(chunks))

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := chunks[idx]
				local := graph.NewNodeList()
				buildChunkNodes(c, cfg, costFn, local)
				connectChunkNodes(c, cfg, costFn, nb, local)
				results[idx] = buildResult{chunk: c, local: local}
			}
		}()
	}
	for idx := range chunks {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	// Sequential merge: absorb order must be deterministic (chunk index
	// order) so that two builds over the same grid produce the same ids.
	for _, res := range results {
		remap := nl.Absorb(res.local)
		remapChunkNodes(res.chunk, remap)
	}

	crossChunkLink(chunks, nl, costFn)
}

// remapChunkNodes rewrites a chunk's border-node set from a worker-local
// NodeList's ids to the ids they were assigned in the merged NodeList.
func remapChunkNodes(c *Chunk, remap map[NodeID]NodeID) {
	next := make(map[NodeID]struct{}, len(c.Nodes))
	for old := range c.Nodes {
		next[remap[old]] = struct{}{}
	}
	c.Nodes = next
}
