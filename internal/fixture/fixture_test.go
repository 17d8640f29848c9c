package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/internal/fixture"
)

// TestMaps_Decode checks every fixture has a name and a grid.
func TestMaps_Decode(t *testing.T) {
	maps, err := fixture.Maps()
	require.NoError(t, err)
	require.NotEmpty(t, maps)

	names := map[string]bool{}
	for _, m := range maps {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Grid, m.Name)
		assert.False(t, names[m.Name], "duplicate fixture %q", m.Name)
		names[m.Name] = true
	}
}

// TestGet finds the canonical map and rejects unknown names.
func TestGet(t *testing.T) {
	m, err := fixture.Get("canonical")
	require.NoError(t, err)
	assert.Equal(t, 41, m.Visited)
	assert.Equal(t, 6, m.Loops)
	assert.Nil(t, m.Moves)

	_, err = fixture.Get("missing")
	assert.Error(t, err)
}
