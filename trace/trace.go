package trace

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/walker"
)

// Trace walks from start facing up until the walker leaves g.
//
// Behavior:
//  1. Mark start as visited and open the first segment there.
//  2. On each Step, close one segment per right turn taken (a segment's End
//     is the tile where it turned) and open the next at that tile.
//  3. Mark the tile reached by each forward move.
//  4. On exit close the final segment at the last tile.
//
// Returns ErrGridNil, ErrOptionViolation, a walker start error, or ErrLoop
// when the walker is trapped or exceeds the move bound.
// Complexity: O(M) time for M moves, O(W×H) memory.
func Trace(g *grid.Grid, start grid.Position, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	limit := o.MaxMoves
	if limit == 0 {
		limit = g.Area() * walker.NumHeadings
	}

	w, err := walker.New(g, start, walker.Up)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}

	p := &Path{
		start:   start,
		visited: make([]bool, g.Area()),
		g:       g,
	}
	p.mark(start)
	segStart := start

	for {
		m := w.Step()
		o.OnMove(m)

		h := m.From.Heading
		for i := 0; i < m.Turns; i++ {
			p.segments = append(p.segments, Segment{Start: segStart, Heading: h, End: m.From.Pos})
			segStart = m.From.Pos
			h = h.TurnRight()
		}

		switch m.Outcome {
		case walker.Exited:
			p.segments = append(p.segments, Segment{Start: segStart, Heading: h, End: m.To.Pos})
			p.exit = m.To
			return p, nil
		case walker.Trapped:
			return nil, fmt.Errorf("%w: trapped at (%d,%d)", ErrLoop, m.From.Pos.X, m.From.Pos.Y)
		}

		p.moves++
		p.mark(m.To.Pos)
		if p.moves > limit {
			return nil, fmt.Errorf("%w: exceeded %d moves", ErrLoop, limit)
		}
	}
}

func (p *Path) mark(pos grid.Position) {
	i := p.g.Index(pos)
	if !p.visited[i] {
		p.visited[i] = true
		p.count++
	}
}
