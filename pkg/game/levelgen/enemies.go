package levelgen

import (
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// PlaceEnemies draws one stride from src and returns an enemy request for
// every ground cell on a stride column, excluding the bottom and top rows.
// It must run after PlaceHazards on the same stream.
func PlaceEnemies(grid *world.Grid, src rng.Source) []entities.PlacementRequest {
	stride := src.Range(minStride, maxStride)
	top := grid.Height() - 1
	return scanGround(grid, stride, entities.KindEnemy, func(y int) bool {
		return y > 0 && y < top
	})
}
