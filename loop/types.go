package loop

import (
	"errors"

	"github.com/katalvlaran/patrol/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("loop: grid is nil")

// Option configures FindObstructions.
type Option func(*Options)

// Options holds FindObstructions parameters.
type Options struct {
	// Exhaustive probes every open tile except the start instead of the
	// candidates derived from the baseline walk.
	Exhaustive bool

	// OnProbe is called after each probe with the probed tile and verdict.
	OnProbe func(p grid.Position, looped bool)
}

// DefaultOptions returns candidate-based probing with a no-op OnProbe hook.
func DefaultOptions() Options {
	return Options{
		Exhaustive: false,
		OnProbe:    func(grid.Position, bool) {},
	}
}

// WithExhaustive probes all open tiles.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithOnProbe registers a callback run after every probe.
func WithOnProbe(fn func(p grid.Position, looped bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

// Result reports a FindObstructions run.
//   - Candidates: tiles probed, in probing order.
//   - Obstructions: probed tiles that trap the walker in a loop, same order.
type Result struct {
	Candidates   []grid.Position
	Obstructions []grid.Position
}

// Count returns the number of loop-causing placements.
func (r *Result) Count() int {
	return len(r.Obstructions)
}
