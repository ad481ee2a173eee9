// Package levelgen places the player, hazards, and enemies on a finished grid.
package levelgen

import (
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
)

// Stride bounds shared by the hazard and enemy passes (max exclusive)
const (
	minStride = 2
	maxStride = 10
)

// hazardBandTop is the exclusive upper row for hazards; hazards sit on rows 0 < y < hazardBandTop
const hazardBandTop = 4

// PlaceHazards draws one stride from src and returns a hazard request for
// every ground cell on a stride column inside the low band.
func PlaceHazards(grid *world.Grid, src rng.Source) []entities.PlacementRequest {
	stride := src.Range(minStride, maxStride)
	return scanGround(grid, stride, entities.KindHazard, func(y int) bool {
		return y > 0 && y < hazardBandTop
	})
}
