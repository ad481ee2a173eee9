// Package generator builds occupancy grids for platformer levels.
package generator

import (
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
)

// GridGenerator is an interface for terrain generation algorithms.
// Generate must draw from src in a fixed order so equal streams give equal grids,
// and must always return a grid of exactly width x height.
type GridGenerator interface {
	Generate(width, height int, src rng.Source) *world.Grid
	Name() string
}

// Kind names a built-in generator
type Kind string

const (
	KindNoise  Kind = "noise"
	KindChunks Kind = "chunks"
)

// Kinds lists the built-in generators
func Kinds() []Kind {
	return []Kind{KindNoise, KindChunks}
}
