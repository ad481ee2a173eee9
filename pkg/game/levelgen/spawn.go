package levelgen

import (
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// spawnColumn is the column scanned for the player's start cell
const spawnColumn = 0

// FindSpawn returns the player request centered on the lowest Empty cell of
// the leftmost column. It returns false when that column is completely solid;
// callers then emit no player.
func FindSpawn(grid *world.Grid) (entities.PlacementRequest, bool) {
	for y := 0; y < grid.Height(); y++ {
		if grid.IsEmpty(spawnColumn, y) {
			return entities.NewPlacement(entities.KindPlayer, spawnColumn, y), true
		}
	}
	return entities.PlacementRequest{}, false
}
