// Package day6 exposes the patrol puzzle as two callables taking puzzle text,
// the shape a day/part runner invokes.
package day6

import (
	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/trace"
)

// Part1 counts the distinct tiles the walker visits before leaving the map.
func Part1(input string) (int, error) {
	g, start, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	path, err := trace.Trace(g, start)
	if err != nil {
		return 0, err
	}

	return path.VisitedCount(), nil
}

// Part2 counts the single-obstacle placements that trap the walker in a loop.
func Part2(input string) (int, error) {
	g, start, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	res, err := loop.FindObstructions(g, start)
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}
