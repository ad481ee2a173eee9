package generator

import (
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/chunks"
)

// ChunkGenerator stitches library chunks left to right along the bottom of the grid.
type ChunkGenerator struct {
	library *chunks.Library
}

// NewChunkGenerator creates a generator drawing from library
func NewChunkGenerator(library *chunks.Library) *ChunkGenerator {
	return &ChunkGenerator{library: library}
}

// Name returns the name of this generator
func (g *ChunkGenerator) Name() string {
	return "Chunk Stitcher"
}

// Generate picks one chunk per Range(0, n) draw and places it at the next free
// column until the grid width is covered. Chunk cells beyond the grid are clipped.
// An empty library yields an empty grid without drawing.
func (g *ChunkGenerator) Generate(width, height int, src rng.Source) *world.Grid {
	grid := world.NewGrid(width, height)
	if g.library == nil || g.library.Len() == 0 {
		return grid
	}

	for originX := 0; originX < width; {
		chunk := g.library.Get(src.Range(0, g.library.Len()))
		if chunk.Width <= 0 {
			break
		}
		chunk.Stamp(grid, originX, 0)
		originX += chunk.Width
	}

	return grid
}
