package walker

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Walker advances a State over a grid. It reads the grid on every Step,
// so obstacles placed between steps are honoured.
type Walker struct {
	g     *grid.Grid
	state State
	done  bool
}

// New places a walker at start facing h.
// Returns ErrGridNil, ErrBadHeading, ErrStartOutOfBounds or ErrStartBlocked.
func New(g *grid.Grid, start grid.Position, h Heading) (*Walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadHeading, h)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrStartOutOfBounds, start.X, start.Y, g.Width, g.Height)
	}
	if g.Obstacle(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartBlocked, start.X, start.Y)
	}

	return &Walker{g: g, state: State{Pos: start, Heading: h}}, nil
}

// State returns the current state.
func (w *Walker) State() State {
	return w.state
}

// Done reports whether the walker has exited or become trapped.
// Further calls to Step keep reporting the terminal outcome.
func (w *Walker) Done() bool {
	return w.done
}

// Step performs one transition: turn right while the tile ahead is an
// obstacle, then move onto it, or report Exited if it is off the grid.
// Turning never checks bounds; only forward motion can leave the grid.
func (w *Walker) Step() Move {
	from := w.state
	h := from.Heading
	for turns := 0; turns < NumHeadings; turns++ {
		next := h.Ahead(from.Pos)
		switch {
		case !w.g.InBounds(next):
			w.state.Heading = h
			w.done = true
			return Move{From: from, To: w.state, Turns: turns, Outcome: Exited}
		case w.g.Obstacle(next):
			h = h.TurnRight()
		default:
			w.state = State{Pos: next, Heading: h}
			return Move{From: from, To: w.state, Turns: turns, Outcome: Stepped}
		}
	}

	// Four right turns bring h back to the original heading.
	w.done = true
	return Move{From: from, To: from, Turns: NumHeadings, Outcome: Trapped}
}
