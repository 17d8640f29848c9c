package walker

import (
	"errors"

	"github.com/katalvlaran/patrol/grid"
)

// Sentinel errors for walker construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("walker: grid is nil")

	// ErrStartOutOfBounds indicates a start position outside the grid.
	ErrStartOutOfBounds = errors.New("walker: start position out of bounds")

	// ErrStartBlocked indicates a start position on an obstacle.
	ErrStartBlocked = errors.New("walker: start position holds an obstacle")

	// ErrBadHeading indicates a heading outside {Up, Right, Down, Left}.
	ErrBadHeading = errors.New("walker: invalid heading")
)

// Heading is one of the four cardinal directions.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// NumHeadings is the size of the heading cycle.
const NumHeadings = 4

var (
	clockwise = [NumHeadings]Heading{Up: Right, Right: Down, Down: Left, Left: Up}
	deltas    = [NumHeadings][2]int{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}
	names     = [NumHeadings]string{Up: "up", Right: "right", Down: "down", Left: "left"}
)

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h < NumHeadings
}

// TurnRight returns the heading 90° clockwise from h.
func (h Heading) TurnRight() Heading {
	return clockwise[h]
}

// Delta returns the unit step (dx, dy) for h; y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	d := deltas[h]
	return d[0], d[1]
}

// Ahead returns the tile one step from p along h.
func (h Heading) Ahead(p grid.Position) grid.Position {
	return p.Offset(h.Delta())
}

func (h Heading) String() string {
	if !h.Valid() {
		return "invalid"
	}
	return names[h]
}

// State is the walker's full configuration. The simulation is deterministic
// given a State and a grid, so a repeated State proves a loop.
type State struct {
	Pos     grid.Position
	Heading Heading
}

// Outcome classifies the result of one Step.
type Outcome int

const (
	// Stepped: the walker moved to the tile ahead.
	Stepped Outcome = iota
	// Exited: the tile ahead is off the grid; the walker has left.
	Exited
	// Trapped: all four neighbours are blocked; the walker can only spin.
	Trapped
)

func (o Outcome) String() string {
	switch o {
	case Stepped:
		return "stepped"
	case Exited:
		return "exited"
	case Trapped:
		return "trapped"
	default:
		return "unknown"
	}
}

// Move describes one transition.
//   - From: state before the transition.
//   - To: state after it. On Exited/Trapped the position is unchanged.
//   - Turns: right turns taken before moving (0..3, or 4 when Trapped).
type Move struct {
	From, To State
	Turns    int
	Outcome  Outcome
}
