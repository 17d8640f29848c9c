package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
)

// TestParse_Errors verifies that malformed maps fail fast with sentinel errors.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"Ragged", "..^\n..\n", grid.ErrNonRectangular},
		{"BlankRow", "..^\n\n...\n", grid.ErrNonRectangular},
		{"NoStart", "...\n.#.\n", grid.ErrNoStart},
		{"TwoStarts", "^..\n..^\n", grid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _, err := grid.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestParse_Basic checks dimensions, obstacles and the start tile.
func TestParse_Basic(t *testing.T) {
	g, start, err := grid.Parse("....#\n.^...\n#....\n")
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, start)
	assert.Equal(t, 2, g.Obstacles())
	assert.True(t, g.Obstacle(grid.Position{X: 4, Y: 0}))
	assert.True(t, g.Obstacle(grid.Position{X: 0, Y: 2}))
	assert.False(t, g.Obstacle(start), "start tile is open floor")
}

// TestParse_LineEndings accepts CRLF input and a missing final newline.
func TestParse_LineEndings(t *testing.T) {
	a, sa, err := grid.Parse(".#\r\n^.\r\n")
	require.NoError(t, err)
	b, sb, err := grid.Parse(".#\n^.")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, sa, sb)
}

// TestParse_SingleCell covers the smallest legal map.
func TestParse_SingleCell(t *testing.T) {
	g, start, err := grid.Parse("^")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Area())
	assert.Equal(t, grid.Position{}, start)
}

// TestParse_OtherBytesAreOpen treats any unknown symbol as floor.
func TestParse_OtherBytesAreOpen(t *testing.T) {
	g, _, err := grid.Parse("aX^ ")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Obstacles())
}
