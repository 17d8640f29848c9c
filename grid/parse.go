package grid

import (
	"fmt"
	"strings"
)

// Parse reads puzzle text into a Grid and the walker's start position.
// Each line is a row; '#' marks an obstacle, '^' the unique start tile,
// any other byte is open floor. A trailing '\r' on a line and a single
// trailing newline are ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart, ErrMultipleStarts
// or ErrTooLarge (wrapped with the offending row where it applies).
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, Position, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, Position{}, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	width := len(lines[0])
	for y, line := range lines {
		if len(line) != width {
			return nil, Position{}, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrNonRectangular, y, len(line), width)
		}
	}
	g, err := New(width, len(lines))
	if err != nil {
		return nil, Position{}, err
	}

	start, found := Position{}, false
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case SymbolObstacle:
				g.cells[y*width+x] = true
			case SymbolStart:
				if found {
					return nil, Position{}, fmt.Errorf("%w: second marker at (%d,%d), first at (%d,%d)",
						ErrMultipleStarts, x, y, start.X, start.Y)
				}
				start, found = Position{X: x, Y: y}, true
			}
		}
	}
	if !found {
		return nil, Position{}, ErrNoStart
	}

	return g, start, nil
}
