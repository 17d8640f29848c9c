// Package trace follows the unmodified patrol from its start tile until it
// leaves the grid and derives everything the loop search needs from that run.
//
// What:
//
//   - Trace records every visited tile (part 1 is VisitedCount) and splits
//     the path into maximal straight Segments.
//   - Candidates lists the tiles the walker tried to step onto along its path:
//     the only places where one extra obstacle can change its trajectory.
//
// Guarantees:
//
//   - Segments cover the path exactly once: the sum of Segment.Len equals
//     Path.Moves.
//   - Candidates never contains the start tile, an obstacle or an off-grid tile.
//
// Complexity:
//
//   - Trace:      O(M) time for M moves, O(W×H) memory.
//   - Candidates: O(M) time, O(W×H) memory.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrLoop: the walker never left the grid (trapped, or more than
//     MaxMoves moves).
//   - ErrOptionViolation: invalid Option.
//   - walker errors for an invalid start tile.
package trace
