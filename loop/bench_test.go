package loop_test

import (
	"testing"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/fixture"
	"github.com/katalvlaran/patrol/loop"
)

func benchGrid(b *testing.B) (*grid.Grid, grid.Position) {
	b.Helper()
	m, err := fixture.Get("canonical")
	if err != nil {
		b.Fatal(err)
	}
	g, start, err := grid.Parse(m.Grid)
	if err != nil {
		b.Fatal(err)
	}

	return g, start
}

// BenchmarkFindObstructions probes the lookahead candidates of the
// canonical map.
func BenchmarkFindObstructions(b *testing.B) {
	g, start := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.FindObstructions(g, start)
	}
}

// BenchmarkFindObstructions_Exhaustive probes every open tile, for
// comparison with the candidate search.
func BenchmarkFindObstructions_Exhaustive(b *testing.B) {
	g, start := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.FindObstructions(g, start, loop.WithExhaustive())
	}
}
