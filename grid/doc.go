// Package grid models a rectangular obstacle map for a patrolling walker.
//
// What:
//
//   - Grid stores a dense, row-major boolean matrix (obstacle / open floor).
//   - Parse builds a Grid and the walker's start tile from puzzle text.
//   - Probe places a temporary obstacle and restores the cell afterwards.
//
// Coordinates:
//
//   - Position is a signed (X, Y) pair; X grows right, Y grows down.
//   - InBounds is the only way to decide whether a step left the map. Obstacle
//     and Set panic on out-of-bounds access: that is a programming error, not
//     an input condition.
//
// Complexity:
//
//   - Parse:        O(W×H) time and memory.
//   - Obstacle/Set: O(1).
//   - Probe:        O(1) plus the cost of the probe callback.
//
// Errors:
//
//   - ErrEmptyGrid: input text has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no '^' marker found.
//   - ErrMultipleStarts: more than one '^' marker found.
//   - ErrTooLarge: width or height exceeds MaxSide.
package grid
