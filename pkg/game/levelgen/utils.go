package levelgen

import (
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// IsGround reports whether the cell at x, y is Solid with an Empty cell directly above it
func IsGround(grid *world.Grid, x, y int) bool {
	if !grid.IsSolid(x, y) {
		return false
	}
	above, ok := grid.Neighbor(x, y, world.Up)
	return ok && grid.IsEmpty(above.X, above.Y)
}

// scanGround walks the grid in scan order and emits a request of kind for every
// ground cell whose column is a positive multiple of stride and whose row passes inBand.
// Adjacent matches are all kept.
func scanGround(grid *world.Grid, stride int, kind entities.Kind, inBand func(y int) bool) []entities.PlacementRequest {
	var placements []entities.PlacementRequest
	if stride <= 0 {
		return placements
	}

	grid.ForEachCell(func(x, y int, state world.CellState) {
		if x == 0 || x%stride != 0 || !inBand(y) {
			return
		}
		if IsGround(grid, x, y) {
			placements = append(placements, entities.NewPlacement(kind, x, y))
		}
	})

	return placements
}
