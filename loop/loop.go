package loop

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/trace"
	"github.com/katalvlaran/patrol/walker"
)

// HasLoop reports whether a walker placed at start facing h never leaves g.
//
// Behavior:
//  1. Record the start state.
//  2. Step; on Exited return false, on Trapped return true (it spins forever).
//  3. After each forward move, return true if the new state was seen before.
//
// Returns ErrGridNil or a walker start error for invalid arguments.
// Does not modify g.
func HasLoop(g *grid.Grid, start grid.Position, h walker.Heading) (bool, error) {
	if g == nil {
		return false, ErrGridNil
	}
	w, err := walker.New(g, start, h)
	if err != nil {
		return false, fmt.Errorf("loop: %w", err)
	}

	seen := make([]bool, g.Area()*walker.NumHeadings)
	key := func(s walker.State) int {
		return g.Index(s.Pos)*walker.NumHeadings + int(s.Heading)
	}
	seen[key(w.State())] = true

	for {
		m := w.Step()
		switch m.Outcome {
		case walker.Exited:
			return false, nil
		case walker.Trapped:
			return true, nil
		}
		k := key(m.To)
		if seen[k] {
			return true, nil
		}
		seen[k] = true
	}
}

// FindObstructions lists the tiles where one extra obstacle makes the
// walker starting at start (facing up) loop forever.
//
// Behavior:
//  1. Trace the unmodified walk; it must leave the grid.
//  2. Build the probe list: trace.Candidates, or every open non-start tile
//     under WithExhaustive.
//  3. For each tile, run HasLoop inside grid.Probe and keep the tile if it
//     loops. Probes run one after another on the same grid.
//
// Returns ErrGridNil, trace errors (including trace.ErrLoop when the
// baseline itself loops) or walker start errors.
// The grid is unchanged when FindObstructions returns.
func FindObstructions(g *grid.Grid, start grid.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	path, err := trace.Trace(g, start)
	if err != nil {
		return nil, fmt.Errorf("loop: baseline: %w", err)
	}

	res := &Result{}
	if o.Exhaustive {
		res.Candidates = openTiles(g, start)
	} else {
		res.Candidates = trace.Candidates(g, path)
	}

	for _, p := range res.Candidates {
		var probeErr error
		looped := grid.Probe(g, p, func(g *grid.Grid) bool {
			ok, err := HasLoop(g, start, walker.Up)
			probeErr = err
			return ok
		})
		if probeErr != nil {
			return nil, fmt.Errorf("loop: probe (%d,%d): %w", p.X, p.Y, probeErr)
		}
		o.OnProbe(p, looped)
		if looped {
			res.Obstructions = append(res.Obstructions, p)
		}
	}

	return res, nil
}

// openTiles lists every open tile except start, row-major.
func openTiles(g *grid.Grid, start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, g.Area()-g.Obstacles())
	for i := 0; i < g.Area(); i++ {
		p := g.Coordinate(i)
		if p != start && !g.Obstacle(p) {
			out = append(out, p)
		}
	}

	return out
}
