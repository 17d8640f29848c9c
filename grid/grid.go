package grid

import (
	"fmt"
	"strings"
)

// New constructs an open (obstacle-free) grid of the given size.
// Returns ErrEmptyGrid if either side is not positive,
// ErrTooLarge if either side exceeds MaxSide.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("%w: %d×%d (max side %d)", ErrTooLarge, width, height, MaxSide)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Obstacle reports whether p holds an obstacle.
// Panics if p is outside the grid.
func (g *Grid) Obstacle(p Position) bool {
	return g.cells[g.Index(p)]
}

// Set places (v == true) or clears (v == false) an obstacle at p.
// Panics if p is outside the grid.
func (g *Grid) Set(p Position, v bool) {
	g.cells[g.Index(p)] = v
}

// Index maps p to its row-major index: y*Width + x.
// Panics if p is outside the grid.
func (g *Grid) Index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position (%d,%d) outside %d×%d grid", p.X, p.Y, g.Width, g.Height))
	}

	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// Area returns W×H.
func (g *Grid) Area() int {
	return g.Width * g.Height
}

// Obstacles counts the cells holding an obstacle.
func (g *Grid) Obstacles() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// Clone returns a deep copy that shares no state with g.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether g and other have the same size and obstacles.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}

	return true
}

// String renders the grid with '#' for obstacles and '.' for open floor,
// one line per row. The start marker is not part of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] {
				b.WriteByte(SymbolObstacle)
			} else {
				b.WriteByte(SymbolOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
