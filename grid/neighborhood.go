package grid

// Manhattan is the four-connected (Von Neumann) neighborhood strategy:
// neighbors are the in-bounds cardinal adjacents, and the heuristic is the
// L1 (taxicab) distance |Δx| + |Δy|, which is admissible whenever diagonal
// movement is disallowed and the minimum cell cost is 1.
type Manhattan struct {
	width, height int
}

// NewManhattan constructs a four-connected neighborhood for a grid of the
// given dimensions. Returns ErrInvalidBounds if width or height is not
// positive.
func NewManhattan(width, height int) (Manhattan, error) {
	if width <= 0 || height <= 0 {
		return Manhattan{}, ErrInvalidBounds
	}
	return Manhattan{width: width, height: height}, nil
}

// Neighbors appends p's in-bounds cardinal neighbors to out in a fixed
// up/right/down/left order.
func (m Manhattan) Neighbors(p Point, out []Point) []Point {
	if p.Y > 0 {
		out = append(out, Point{p.X, p.Y - 1})
	}
	if p.X < m.width-1 {
		out = append(out, Point{p.X + 1, p.Y})
	}
	if p.Y < m.height-1 {
		out = append(out, Point{p.X, p.Y + 1})
	}
	if p.X > 0 {
		out = append(out, Point{p.X - 1, p.Y})
	}
	return out
}

// Heuristic returns the Manhattan (taxicab) distance between a and b.
func (m Manhattan) Heuristic(a, b Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// MaxHeuristic returns the Manhattan distance between the two opposite
// corners of the grid.
func (m Manhattan) MaxHeuristic() int {
	return (m.width - 1) + (m.height - 1)
}

// Bounds reports the grid dimensions this neighborhood was constructed for.
func (m Manhattan) Bounds() (width, height int) { return m.width, m.height }

// Chebyshev is the eight-connected (Moore) neighborhood strategy: neighbors
// are the in-bounds cardinal and diagonal adjacents, and the heuristic is
// the Chebyshev distance max(|Δx|, |Δy|), which is admissible for
// eight-directional movement at unit cost.
type Chebyshev struct {
	width, height int
}

// NewChebyshev constructs an eight-connected neighborhood for a grid of the
// given dimensions. Returns ErrInvalidBounds if width or height is not
// positive.
func NewChebyshev(width, height int) (Chebyshev, error) {
	if width <= 0 || height <= 0 {
		return Chebyshev{}, ErrInvalidBounds
	}
	return Chebyshev{width: width, height: height}, nil
}

// Neighbors appends p's in-bounds cardinal and diagonal neighbors to out.
func (c Chebyshev) Neighbors(p Point, out []Point) []Point {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if x < 0 || x >= c.width || y < 0 || y >= c.height {
				continue
			}
			out = append(out, Point{x, y})
		}
	}
	return out
}

// Heuristic returns the Chebyshev distance between a and b.
func (c Chebyshev) Heuristic(a, b Point) int {
	return maxInt(absInt(a.X-b.X), absInt(a.Y-b.Y))
}

// MaxHeuristic returns the Chebyshev distance between the two opposite
// corners of the grid.
func (c Chebyshev) MaxHeuristic() int {
	return maxInt(c.width-1, c.height-1)
}

// Bounds reports the grid dimensions this neighborhood was constructed for.
func (c Chebyshev) Bounds() (width, height int) { return c.width, c.height }
