// Package grid defines core types, symbols, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/patrol.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoStart indicates the start marker is missing.
	ErrNoStart = errors.New("grid: start marker not found")
	// ErrMultipleStarts indicates more than one start marker.
	ErrMultipleStarts = errors.New("grid: start marker must be unique")
	// ErrTooLarge indicates a side longer than MaxSide.
	ErrTooLarge = errors.New("grid: dimensions exceed coordinate range")
)

// Input symbols.
const (
	SymbolObstacle byte = '#'
	SymbolStart    byte = '^'
	SymbolOpen     byte = '.'
)

// MaxSide bounds both width and height, so that W×H×4 walker states
// always fit comfortably in an int on every platform.
const MaxSide = 1 << 14

// Position is a tile coordinate. It is signed so that a step off the top
// or left edge yields a negative value instead of wrapping around.
type Position struct {
	X, Y int
}

// Offset returns p moved by (dx, dy). The result may lie outside any grid.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a W×H obstacle map. Width and Height are fixed at construction;
// cells[y*Width+x] reports whether (x, y) holds an obstacle.
type Grid struct {
	Width, Height int
	cells         []bool
}
