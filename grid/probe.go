package grid

// Probe places an obstacle at p, runs fn against g and restores the
// previous content of p before returning, even if fn panics.
// The grid is never observed mutated once Probe returns.
// Panics if p is outside the grid.
func Probe[T any](g *Grid, p Position, fn func(*Grid) T) T {
	idx := g.Index(p)
	prev := g.cells[idx]
	g.cells[idx] = true
	defer func() { g.cells[idx] = prev }()

	return fn(g)
}
