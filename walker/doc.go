// Package walker implements the patrol state machine: a (position, heading)
// pair that turns right whenever the tile ahead is blocked and otherwise
// steps forward, until it walks off the grid.
//
// Step is the single transition used by both the baseline tracer and the
// loop detector; callers differ only in what they record between steps.
//
// Heading rotation is table driven (Up → Right → Down → Left → Up) and
// never depends on the numeric encoding of a heading.
package walker
