package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
	"platformgen/pkg/game/level"
)

func sampleLevel() *level.Level {
	grid := world.ParseGrid(
		".....",
		"..#..",
		"#####",
	)
	return &level.Level{
		Grid: grid,
		Placements: []entities.PlacementRequest{
			entities.NewPlacement(entities.KindPlayer, 0, 1),
			entities.NewPlacement(entities.KindHazard, 2, 1),
			entities.NewPlacement(entities.KindEnemy, 4, 0),
			entities.NewPlacement(entities.KindEnemy, 2, 1),
		},
	}
}

func TestCanvas_Load(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Load(sampleLevel())

	w, h := c.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, 15, c.Painted())
	assert.Equal(t, world.TileTop, c.Tile(2, 1))
	assert.Equal(t, world.TileGround, c.Tile(2, 0))
	assert.Equal(t, world.TileTop, c.Tile(0, 0))
	assert.Equal(t, world.TileNone, c.Tile(0, 1))
	assert.Len(t, c.Spawned(), 4)
}

func TestCanvas_EntityCells(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Load(sampleLevel())

	kind, ok := c.EntityAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, entities.KindPlayer, kind)

	// the hazard sits in the air cell above its ground and keeps it over the later enemy
	kind, ok = c.EntityAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, entities.KindHazard, kind)

	kind, ok = c.EntityAt(4, 1)
	require.True(t, ok)
	assert.Equal(t, entities.KindEnemy, kind)

	_, ok = c.EntityAt(3, 1)
	assert.False(t, ok)
}

func TestCanvas_IgnoresOutOfRangeTiles(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetTile(-1, 0, world.TileTop)
	c.SetTile(2, 1, world.TileTop)
	assert.Zero(t, c.Painted())
	assert.Equal(t, world.TileNone, c.Tile(5, 5))
}

func TestCanvas_LoadReplacesPreviousLevel(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Load(sampleLevel())
	c.Load(&level.Level{Grid: world.NewGrid(3, 2)})

	w, h := c.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Empty(t, c.Spawned())
	assert.Equal(t, world.TileNone, c.Tile(2, 1))
}

func TestCurrent_DefaultsWithoutRenderer(t *testing.T) {
	SetRenderer(nil)
	assert.Equal(t, "x", StyleText("x", StyleTitle))
	assert.Equal(t, "%d", FormatText("%d"))
	rows, cols := GetViewportSize()
	assert.Positive(t, rows)
	assert.Positive(t, cols)
}
