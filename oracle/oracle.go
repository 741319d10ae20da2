package oracle

import "github.com/mich101mich/go-hpa/grid"

const infinite = 1 << 30

// ShortestPath computes a minimum-cost path from start to goal over a
// width x height grid by a plain array-scan Dijkstra: O((width*height)^2)
// instead of the engine's O(E log V) binary heap. Slow by design — it
// exists to cross-check the engine's output on small test grids, not to
// scale.
//
// Uses the same cost convention as package grid: a path's cost is the
// sum of the walk costs of every cell except its last.
func ShortestPath(width, height int, start, goal grid.Point, costFn grid.CostFunc, nb grid.Neighborhood) (grid.Path, bool) {
	if costFn(start) < 0 {
		return grid.Path{}, false
	}
	if start == goal {
		return grid.Path{Points: []grid.Point{start}, Cost: 0}, true
	}

	n := width * height
	dist := make([]int, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = infinite
		parent[i] = -1
	}
	idx := func(p grid.Point) int { return p.Y*width + p.X }
	dist[idx(start)] = 0

	for {
		u, best := -1, infinite
		for i := 0; i < n; i++ {
			if !visited[i] && dist[i] < best {
				u, best = i, dist[i]
			}
		}
		if u == -1 {
			break
		}
		visited[u] = true

		up := grid.Point{X: u % width, Y: u / width}
		if up == goal {
			break
		}

		c := costFn(up)
		if c < 0 {
			continue
		}

		buf := make([]grid.Point, 0, 8)
		for _, np := range nb.Neighbors(up, buf) {
			if np.X < 0 || np.X >= width || np.Y < 0 || np.Y >= height {
				continue
			}
			vi := idx(np)
			if visited[vi] {
				continue
			}
			nd := dist[u] + c
			if nd < dist[vi] {
				dist[vi] = nd
				parent[vi] = u
			}
		}
	}

	gi := idx(goal)
	if dist[gi] >= infinite {
		return grid.Path{}, false
	}

	var pts []grid.Point
	for cur := gi; cur != -1; cur = parent[cur] {
		pts = append([]grid.Point{{X: cur % width, Y: cur / width}}, pts...)
	}
	return grid.Path{Points: pts, Cost: dist[gi]}, true
}
