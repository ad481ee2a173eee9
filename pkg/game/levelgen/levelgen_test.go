package levelgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// stepped is a small level with ground at several heights.
func stepped() *world.Grid {
	return world.ParseGrid(
		"..........",
		"..........",
		"....#.....",
		"..##....##",
		"##..##..##",
		"##########",
	)
}

func cellsOf(reqs []entities.PlacementRequest) []world.Coord {
	cells := make([]world.Coord, 0, len(reqs))
	for _, r := range reqs {
		cells = append(cells, r.Cell)
	}
	return cells
}

func positionsOf(reqs []entities.PlacementRequest) []world.Position {
	pos := make([]world.Position, 0, len(reqs))
	for _, r := range reqs {
		pos = append(pos, r.Position)
	}
	return pos
}

func TestIsGround(t *testing.T) {
	g := stepped()
	assert.True(t, IsGround(g, 4, 1))
	assert.True(t, IsGround(g, 4, 3))
	assert.False(t, IsGround(g, 8, 1), "covered by (8,2)")
	assert.False(t, IsGround(g, 2, 1), "empty cell")
	assert.False(t, IsGround(g, -1, 0))

	top := world.ParseGrid("#", "#")
	assert.False(t, IsGround(top, 0, 1), "top row has no cell above")
}

func TestPlaceHazards_Stride2(t *testing.T) {
	src := rng.NewReplay(rng.RangeDraw(2, 10, 2))
	hazards := PlaceHazards(stepped(), src)

	assert.Equal(t, []world.Coord{{X: 4, Y: 1}, {X: 2, Y: 2}, {X: 8, Y: 2}, {X: 4, Y: 3}}, cellsOf(hazards))
	assert.Equal(t, []world.Position{{X: 4.5, Y: 2.5}, {X: 2.5, Y: 3.5}, {X: 8.5, Y: 3.5}, {X: 4.5, Y: 4.5}}, positionsOf(hazards))
	for _, h := range hazards {
		assert.Equal(t, entities.KindHazard, h.Kind)
	}
	assert.Zero(t, src.Remaining())
}

func TestPlaceHazards_SkipsBottomRowAndColumnZero(t *testing.T) {
	g := world.ParseGrid(
		"....",
		"....",
		"####",
	)
	hazards := PlaceHazards(g, rng.Fixed{Int: 2})
	assert.Empty(t, hazards)
}

func TestPlaceHazards_BandTop(t *testing.T) {
	g := world.ParseGrid(
		"........",
		"..#.....",
		"..#.....",
		"..#.....",
		"..#.....",
		"........",
	)
	// the column top sits on row 4, outside the hazard band
	assert.Empty(t, PlaceHazards(g, rng.Fixed{Int: 2}))
	// enemies reach it
	enemies := PlaceEnemies(g, rng.Fixed{Int: 2})
	require.Len(t, enemies, 1)
	assert.Equal(t, world.Coord{X: 2, Y: 4}, enemies[0].Cell)
	assert.Equal(t, world.Position{X: 2.5, Y: 5}, enemies[0].Position)
}

func TestPlaceEnemies_Stride4(t *testing.T) {
	src := rng.NewReplay(rng.RangeDraw(2, 10, 4))
	enemies := PlaceEnemies(stepped(), src)

	assert.Equal(t, []world.Coord{{X: 4, Y: 1}, {X: 8, Y: 2}, {X: 4, Y: 3}}, cellsOf(enemies))
	assert.Equal(t, []world.Position{{X: 4.5, Y: 2}, {X: 8.5, Y: 3}, {X: 4.5, Y: 4}}, positionsOf(enemies))
	assert.Equal(t, 3, entities.CountKind(enemies, entities.KindEnemy))
}

func TestPlacers_ShareOneStreamInOrder(t *testing.T) {
	src := rng.NewReplay(
		rng.RangeDraw(2, 10, 2),
		rng.RangeDraw(2, 10, 4),
	)
	g := stepped()
	hazards := PlaceHazards(g, src)
	enemies := PlaceEnemies(g, src)
	assert.Len(t, hazards, 4)
	assert.Len(t, enemies, 3)

	// swapping the two draws changes both results
	src = rng.NewReplay(
		rng.RangeDraw(2, 10, 4),
		rng.RangeDraw(2, 10, 2),
	)
	assert.Len(t, PlaceHazards(g, src), 3)
	assert.Len(t, PlaceEnemies(g, src), 4)
}

func TestPlacers_StrideConsistency(t *testing.T) {
	g := world.NewGrid(40, 8)
	for x := 0; x < 40; x++ {
		g.Set(x, 0, world.Solid)
		g.Set(x, 1, world.Solid)
		if x%2 == 0 {
			g.Set(x, 2, world.Solid)
		}
	}
	for stride := 2; stride < 10; stride++ {
		for _, req := range PlaceEnemies(g, rng.Fixed{Int: stride}) {
			assert.Zero(t, req.Cell.X%stride, "stride %d: %v", stride, req)
			assert.Positive(t, req.Cell.X)
			assert.True(t, IsGround(g, req.Cell.X, req.Cell.Y))
		}
	}
}

func TestPlacers_Deterministic(t *testing.T) {
	g := stepped()
	a := rng.NewStream(77)
	b := rng.NewStream(77)
	assert.Equal(t, PlaceHazards(g, a), PlaceHazards(g, b))
	assert.Equal(t, PlaceEnemies(g, a), PlaceEnemies(g, b))
}

func TestFindSpawn(t *testing.T) {
	player, ok := FindSpawn(stepped())
	require.True(t, ok)
	assert.Equal(t, entities.KindPlayer, player.Kind)
	assert.Equal(t, world.Coord{X: 0, Y: 2}, player.Cell)
	assert.Equal(t, world.Position{X: 0.5, Y: 2.5}, player.Position)
}

func TestFindSpawn_EmptyBottom(t *testing.T) {
	player, ok := FindSpawn(world.NewGrid(3, 3))
	require.True(t, ok)
	assert.Equal(t, world.Position{X: 0.5, Y: 0.5}, player.Position)
}

func TestFindSpawn_SolidColumn(t *testing.T) {
	g := world.ParseGrid(
		"#..",
		"#..",
		"###",
	)
	_, ok := FindSpawn(g)
	assert.False(t, ok)
}
