package grid

// Point is a cell address in a two-dimensional grid. The zero value (0, 0)
// is the top-left cell; coordinates are expected to be non-negative and
// within whatever bounds the Neighborhood in use was constructed for.
type Point struct {
	X, Y int
}

// CostFunc reports the walk cost of the cell at p, which a search charges
// when it steps out of p (see the package doc's cost convention).
// Non-negative values are walk costs on a caller-defined scale; negative
// values mark p as a wall. A CostFunc MUST be a pure function of the current grid state and
// MUST return consistent values across every call made within a single
// search or cache operation.
type CostFunc func(p Point) int

// Neighborhood is a pluggable connectivity and heuristic strategy. Manhattan
// (four-connected) and Chebyshev (eight-connected) are the two canonical
// implementations; both are immutable once constructed and safe to share.
type Neighborhood interface {
	// Neighbors appends the in-bounds neighbors of p to out and returns the
	// extended slice. Passing a reused, truncated buffer (out[:0]) avoids
	// allocating on every call.
	Neighbors(p Point, out []Point) []Point

	// Heuristic returns a non-negative, admissible estimate of the cost
	// between a and b: it must never overestimate the true cost of a path
	// between them when the minimum cell cost is 1.
	Heuristic(a, b Point) int

	// MaxHeuristic returns the heuristic between the two most distant
	// points this strategy's bounds allow. Used only to size search
	// scratch structures (see estimateCapacity); it is not part of the
	// search itself.
	MaxHeuristic() int

	// Bounds reports the grid dimensions this strategy was constructed
	// for.
	Bounds() (width, height int)
}

// Path is the result of a successful search: an ordered sequence of
// adjacent points and its total cost under the grid cost convention (see
// package doc).
type Path struct {
	Points []Point
	Cost   int
}

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p.Points) }

// Start returns the path's first cell. Panics if the path is empty; a
// Path returned by AStar or Dijkstra is never empty.
func (p Path) Start() Point { return p.Points[0] }

// End returns the path's last cell. Panics if the path is empty; a Path
// returned by AStar or Dijkstra is never empty.
func (p Path) End() Point { return p.Points[len(p.Points)-1] }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// estimateCapacity sizes the visited map / heap for a single-source,
// single-target search using the ratio of the heuristic between start and
// goal to the neighborhood's maximum possible heuristic, scaled by the
// total number of cells: a search that starts right next to its goal
// only needs a small fraction of the grid's cells in scratch storage.
func estimateCapacity(nb Neighborhood, start, goal Point, totalCells int) int {
	maxH := nb.MaxHeuristic()
	if maxH <= 0 || totalCells <= 0 {
		return 16
	}
	h := nb.Heuristic(start, goal)
	hint := h * totalCells / maxH
	if hint < 16 {
		hint = 16
	}
	if hint > totalCells {
		hint = totalCells
	}
	return hint
}

func reconstructPath(parent map[Point]Point, start, goal Point, cost int) Path {
	pts := []Point{goal}
	cur := goal
	for cur != start {
		cur = parent[cur]
		pts = append(pts, cur)
	}
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return Path{Points: pts, Cost: cost}
}
