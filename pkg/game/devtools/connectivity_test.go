package devtools

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformgen/pkg/engine/world"
)

func TestOpenRegion(t *testing.T) {
	g := world.ParseGrid(
		"...#.",
		"...#.",
		"#####",
	)
	region := OpenRegion(g, world.Coord{X: 0, Y: 1})
	assert.Equal(t, 6, region.Size())
	assert.True(t, region.Has(world.Coord{X: 2, Y: 2}))
	assert.False(t, region.Has(world.Coord{X: 4, Y: 2}), "walled off")
	assert.Equal(t, 8, countEmpty(g))
}

func TestOpenRegion_SolidOrOutsideStart(t *testing.T) {
	g := world.ParseGrid(
		"..",
		"##",
	)
	assert.Zero(t, OpenRegion(g, world.Coord{X: 0, Y: 0}).Size())
	assert.Zero(t, OpenRegion(g, world.Coord{X: -1, Y: 1}).Size())
}

func TestDumpLevel_ReportsOpenRegion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpLevel(&buf, sampleLevel()))
	assert.Contains(t, buf.String(), "open_cells_connected_to_player: 9 of 9\n")
}
