// Package loop decides whether a walker patrols forever and counts the
// single-obstacle placements that force it to.
//
// What:
//
//   - HasLoop runs the walker and records each (position, heading) state.
//     A repeated state proves a loop, because the walk is deterministic in
//     its state. Leaving the grid proves there is none. The state space has
//     W×H×4 members, so every run is finite.
//   - FindObstructions traces the unmodified walk, derives the candidate
//     tiles from its segments and probes each one with grid.Probe, which
//     restores the grid after every probe.
//
// Soundness of candidates:
//
//	An obstacle can only change the walk if the walker would have tried to
//	step onto it. Candidates are exactly those tiles, so probing them finds
//	every loop. This is an assumption carried from the puzzle, not proved
//	here; WithExhaustive probes every open tile instead and lets tests
//	confirm that both agree.
//
// Complexity:
//
//   - HasLoop:          O(W×H×4) time and memory.
//   - FindObstructions: O(C×W×H×4) for C candidates.
package loop
