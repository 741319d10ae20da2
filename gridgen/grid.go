package gridgen

import (
	"math/rand"

	"github.com/mich101mich/go-hpa/grid"
)

// Wall is the cost value gridgen uses to mark an impassable cell.
const Wall = -1

// Grid is a generated test grid: a row-major cost buffer plus the
// CostFunc wiring hpapath expects.
type Grid struct {
	Width, Height int
	costs         []int
}

func newGrid(width, height int) *Grid {
	costs := make([]int, width*height)
	for i := range costs {
		costs[i] = Wall
	}
	return &Grid{Width: width, Height: height, costs: costs}
}

func (g *Grid) index(p grid.Point) int { return p.Y*g.Width + p.X }

func (g *Grid) inBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cost at p, or Wall if p is out of bounds.
func (g *Grid) At(p grid.Point) int {
	if !g.inBounds(p) {
		return Wall
	}
	return g.costs[g.index(p)]
}

// Set assigns the cost at p.
func (g *Grid) Set(p grid.Point, cost int) {
	if g.inBounds(p) {
		g.costs[g.index(p)] = cost
	}
}

// CostFunc returns the grid.CostFunc hpapath.New expects.
func (g *Grid) CostFunc() grid.CostFunc {
	return g.At
}

// Uniform fills every cell (no walls) using cellFn, seeded for
// determinism. Pass DefaultCellCostFn for a flat all-cost-1 floor, or
// SwampCostFn to scatter higher-cost terrain over it.
func Uniform(width, height int, seed int64, cellFn CellCostFn) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := newGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(grid.Point{X: x, Y: y}, cellFn(rng))
		}
	}
	return g
}

// Maze carves a perfect maze (every open cell reachable from every
// other, no loops) with a randomized recursive backtracker over the
// even-coordinate sub-lattice of cells, following the classic "thick wall" grid maze
// convention: corridor cells sit on even coordinates, walls fill the
// cells between unconnected corridors. width and height are rounded down
// to the nearest odd value internally; cells beyond that remain walls.
func Maze(width, height int, seed int64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := newGrid(width, height)

	oddW, oddH := width, height
	if oddW%2 == 0 {
		oddW--
	}
	if oddH%2 == 0 {
		oddH--
	}
	if oddW < 1 || oddH < 1 {
		return g
	}

	visited := make(map[grid.Point]bool)
	type step struct{ cell, via grid.Point }
	start := grid.Point{X: 0, Y: 0}
	g.Set(start, DefaultCellCost)
	visited[start] = true
	stack := []grid.Point{start}

	dirs := []grid.Point{{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := rng.Perm(len(dirs))
		advanced := false
		for _, oi := range order {
			d := dirs[oi]
			next := grid.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.X >= oddW || next.Y < 0 || next.Y >= oddH || visited[next] {
				continue
			}
			between := grid.Point{X: cur.X + d.X/2, Y: cur.Y + d.Y/2}
			g.Set(between, DefaultCellCost)
			g.Set(next, DefaultCellCost)
			visited[next] = true
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return g
}

// Room is an open rectangle placed by Rooms.
type Room struct {
	Origin        grid.Point
	Width, Height int
}

func (r Room) center() grid.Point {
	return grid.Point{X: r.Origin.X + r.Width/2, Y: r.Origin.Y + r.Height/2}
}

// Rooms scatters up to roomCount non-overlapping rectangular rooms
// (floors costed via cellFn) across a walled-off grid and connects every
// consecutive pair of room centers with an L-shaped corridor, so the
// result is always fully connected. Placement gives up after
// roomCount*20 attempts, so fewer rooms may be placed.
func Rooms(width, height int, seed int64, roomCount int, cellFn CellCostFn) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := newGrid(width, height)

	const minRoomSize, maxRoomSize = 3, 6
	var rooms []Room

	for attempt, placed := 0, 0; placed < roomCount && attempt < roomCount*20; attempt++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		if w >= width || h >= height {
			continue
		}
		origin := grid.Point{X: rng.Intn(width - w), Y: rng.Intn(height - h)}
		candidate := Room{Origin: origin, Width: w, Height: h}
		if overlapsAny(candidate, rooms) {
			continue
		}
		rooms = append(rooms, candidate)
		placed++
	}

	for _, r := range rooms {
		for y := r.Origin.Y; y < r.Origin.Y+r.Height; y++ {
			for x := r.Origin.X; x < r.Origin.X+r.Width; x++ {
				g.Set(grid.Point{X: x, Y: y}, cellFn(rng))
			}
		}
	}

	for i := 1; i < len(rooms); i++ {
		carveCorridor(g, rooms[i-1].center(), rooms[i].center(), cellFn, rng)
	}

	return g
}

func overlapsAny(r Room, rooms []Room) bool {
	const margin = 1
	for _, other := range rooms {
		if r.Origin.X-margin < other.Origin.X+other.Width &&
			other.Origin.X-margin < r.Origin.X+r.Width &&
			r.Origin.Y-margin < other.Origin.Y+other.Height &&
			other.Origin.Y-margin < r.Origin.Y+r.Height {
			return true
		}
	}
	return false
}

func carveCorridor(g *Grid, a, b grid.Point, cellFn CellCostFn, rng *rand.Rand) {
	x, y := a.X, a.Y
	stepX := 1
	if b.X < x {
		stepX = -1
	}
	for x != b.X {
		g.Set(grid.Point{X: x, Y: y}, cellFn(rng))
		x += stepX
	}
	stepY := 1
	if b.Y < y {
		stepY = -1
	}
	for y != b.Y {
		g.Set(grid.Point{X: x, Y: y}, cellFn(rng))
		y += stepY
	}
	g.Set(grid.Point{X: x, Y: y}, cellFn(rng))
}
