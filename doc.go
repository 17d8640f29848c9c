// Package patrol simulates a walker patrolling a rectangular obstacle map:
// it walks straight, turns right in front of an obstacle, and stops once it
// steps off the map.
//
// What it answers:
//
//	• Which tiles does the walker visit before leaving?   (trace)
//	• Which single extra obstacle traps it in a loop?     (loop)
//
// Under the hood, everything is organized under small subpackages:
//
//	grid/   — obstacle map, Position, Parse, scoped obstacle probes
//	walker/ — (position, heading) state machine and the turn-right rule
//	trace/  — baseline walk, straight segments, obstruction candidates
//	loop/   — loop detection and the obstruction search
//	render/ — text and lipgloss-coloured map of a walk
//	day6/   — Part1/Part2 callables for a puzzle runner
//
// Quick ASCII example:
//
//	.#...      .#...
//	....#      .XXX#
//	.....  →   OXXX.
//	.^.#.      .^.#.
//
// The walker visits 8 tiles (X) and one obstacle at O would loop it forever.
//
//	go get github.com/katalvlaran/patrol
package patrol
