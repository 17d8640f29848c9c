package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/patrol/grid"
)

// BenchmarkParse measures Parse on a random 130×130 map (the usual puzzle size)
// with roughly 1% obstacles.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 130
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == n/2 && y == n/2:
				sb.WriteByte('^')
			case rng.Intn(100) == 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := grid.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
