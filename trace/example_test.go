package trace_test

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/trace"
)

// ExampleTrace follows a short patrol and prints its straight runs.
// Scenario:
//
//   - Walker starts at (1,3) facing up.
//   - Obstacles at (1,0), (4,1) and (3,3) turn it right three times.
//   - It leaves the map across the left edge.
func ExampleTrace() {
	g, start, err := grid.Parse(".#...\n....#\n.....\n.^.#.\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := trace.Trace(g, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("visited:", path.VisitedCount())
	fmt.Println("moves:", path.Moves())
	for _, s := range path.Segments() {
		fmt.Printf("%-5s (%d,%d) -> (%d,%d)\n", s.Heading, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	fmt.Println("candidates:", len(trace.Candidates(g, path)))

	// Output:
	// visited: 8
	// moves: 8
	// up    (1,3) -> (1,1)
	// right (1,1) -> (3,1)
	// down  (3,1) -> (3,2)
	// left  (3,2) -> (0,2)
	// candidates: 7
}
