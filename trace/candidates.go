package trace

import "github.com/katalvlaran/patrol/grid"

// Candidates returns the tiles on which a single extra obstacle could alter
// the walk recorded in path: the tile one step ahead of every position the
// walker held along each segment.
//
// Tiles off the grid, the start tile and existing obstacles are dropped.
// The result is deduplicated and ordered by first appearance along the path.
//
// Placing an obstacle anywhere else leaves the walk untouched, so probing
// only these tiles finds every loop-causing placement.
// Complexity: O(M) time, O(W×H) memory.
func Candidates(g *grid.Grid, path *Path) []grid.Position {
	seen := make([]bool, g.Area())
	var out []grid.Position
	for _, s := range path.Segments() {
		for _, p := range s.Lookahead() {
			if !g.InBounds(p) || p == path.Start() || g.Obstacle(p) {
				continue
			}
			i := g.Index(p)
			if seen[i] {
				continue
			}
			seen[i] = true
			out = append(out, p)
		}
	}

	return out
}
