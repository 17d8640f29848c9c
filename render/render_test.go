package render_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/render"
	"github.com/katalvlaran/patrol/trace"
)

const box = ".#...\n....#\n.....\n.^.#.\n"

// TestRender_GridOnly draws obstacles, the start and open floor.
func TestRender_GridOnly(t *testing.T) {
	g, start, err := grid.Parse(box)
	require.NoError(t, err)

	assert.Equal(t, box, render.Render(g, start))
}

// TestRender_PathAndObstructions overlays the walk and the loop tile.
func TestRender_PathAndObstructions(t *testing.T) {
	g, start, err := grid.Parse(box)
	require.NoError(t, err)
	path, err := trace.Trace(g, start)
	require.NoError(t, err)
	res, err := loop.FindObstructions(g, start)
	require.NoError(t, err)

	got := render.Render(g, start, render.WithPath(path), render.WithObstructions(res.Obstructions))
	want := strings.Join([]string{
		".#...",
		".XXX#",
		"OXXX.",
		".^.#.",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

// TestRender_Styled keeps the map shape whatever colour profile is active.
func TestRender_Styled(t *testing.T) {
	g, start, err := grid.Parse(box)
	require.NoError(t, err)
	path, err := trace.Trace(g, start)
	require.NoError(t, err)

	out := render.Render(g, start, render.WithPath(path), render.WithStyles(render.DefaultStyles()))
	out = strings.TrimSuffix(out, "\n")
	assert.Equal(t, g.Width, lipgloss.Width(out))
	assert.Equal(t, g.Height, lipgloss.Height(out))
}
