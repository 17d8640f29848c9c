package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/walker"
)

// Sentinel errors for tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("trace: grid is nil")

	// ErrLoop is returned when the baseline walk does not leave the grid.
	ErrLoop = errors.New("trace: walker did not leave the grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Option configures Trace via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Trace.
type Options struct {
	// OnMove is called after every walker transition, terminal ones included.
	OnMove func(m walker.Move)

	// MaxMoves bounds forward moves; 0 means W×H×4, the number of distinct
	// walker states, beyond which the walk must be repeating itself.
	MaxMoves int

	err error
}

// DefaultOptions returns Options with a no-op OnMove hook and the
// state-space move bound.
func DefaultOptions() Options {
	return Options{
		OnMove:   func(walker.Move) {},
		MaxMoves: 0,
	}
}

// WithOnMove registers a callback run after every transition.
func WithOnMove(fn func(m walker.Move)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

// WithMaxMoves caps the number of forward moves.
//
//	n > 0: at most n moves
//	n == 0: default bound W×H×4
//	n < 0: invalid option → ErrOptionViolation
func WithMaxMoves(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxMoves = n
	}
}

// Segment is one maximal straight run of the path under a single heading:
// from Start, moving along Heading, to End (the last tile before a turn or
// before leaving the grid). Start == End for a run with no forward moves.
type Segment struct {
	Start   grid.Position
	Heading walker.Heading
	End     grid.Position
}

// Len returns the number of forward moves in the segment.
func (s Segment) Len() int {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Positions returns every tile held under the segment's heading,
// Start through End inclusive.
func (s Segment) Positions() []grid.Position {
	out := make([]grid.Position, 0, s.Len()+1)
	p := s.Start
	for {
		out = append(out, p)
		if p == s.End {
			return out
		}
		p = s.Heading.Ahead(p)
	}
}

// Lookahead returns, for each tile of Positions, the tile one step ahead
// along the segment's heading. The last one is the obstacle that closed the
// segment or a tile off the grid.
func (s Segment) Lookahead() []grid.Position {
	pos := s.Positions()
	for i, p := range pos {
		pos[i] = s.Heading.Ahead(p)
	}

	return pos
}

// Path is the record of one baseline walk.
type Path struct {
	start    grid.Position
	exit     walker.State
	visited  []bool
	count    int
	moves    int
	segments []Segment
	g        *grid.Grid
}

// Start returns the tile the walk began on.
func (p *Path) Start() grid.Position { return p.start }

// Exit returns the last state before the walker left the grid.
func (p *Path) Exit() walker.State { return p.exit }

// Visited reports whether the walker stood on pos. Off-grid tiles report false.
func (p *Path) Visited(pos grid.Position) bool {
	return p.g.InBounds(pos) && p.visited[p.g.Index(pos)]
}

// VisitedCount returns the number of distinct tiles visited, start included.
func (p *Path) VisitedCount() int { return p.count }

// VisitedPositions lists the visited tiles in row-major order.
func (p *Path) VisitedPositions() []grid.Position {
	out := make([]grid.Position, 0, p.count)
	for i, v := range p.visited {
		if v {
			out = append(out, p.g.Coordinate(i))
		}
	}

	return out
}

// Moves returns the number of forward moves taken.
func (p *Path) Moves() int { return p.moves }

// Segments returns the path split into straight runs, in walking order.
func (p *Path) Segments() []Segment { return p.segments }
