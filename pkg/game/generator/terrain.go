package generator

import (
	"platformgen/pkg/engine/noise"
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
)

// Constants for noise terrain generation
const (
	terrainBand          = 5   // noise passes only touch rows y < terrainBand
	addFrequencyScale    = 0.05
	removeFrequencyScale = 0.2
	addThreshold         = 0.4 // add-noise above this makes a cell Solid
	removeThreshold      = 0.5 // remove-noise above this makes a cell Empty

	pillarRow       = 3 // pillars are inserted while the scan is on this row
	pillarMinX      = 2 // pillars start at x > pillarMinX
	pillarJitterMin = -2
	pillarJitterMax = 2 // exclusive

	// DefaultPillarSpacing is the column spacing between pillars
	DefaultPillarSpacing = 8
)

// platformCells are always Solid so there is ground near the origin
var platformCells = []world.Coord{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

// TerrainGenerator carves a low band of noise terrain and punctuates it with pillars.
type TerrainGenerator struct {
	field         noise.Field
	pillarSpacing int
}

// NewTerrainGenerator creates a terrain generator sampling field.
// pillarSpacing <= 0 disables pillar insertion.
func NewTerrainGenerator(field noise.Field, pillarSpacing int) *TerrainGenerator {
	return &TerrainGenerator{field: field, pillarSpacing: pillarSpacing}
}

// Name returns the name of this generator
func (g *TerrainGenerator) Name() string {
	return "Noise Terrain"
}

// PillarSpacing returns the column spacing between pillars
func (g *TerrainGenerator) PillarSpacing() int {
	return g.pillarSpacing
}

// Generate builds the grid in a single scan, y outer and x inner.
//
// For each cell in the band the add pass runs before the remove pass, and a
// pillar is stamped when the scan reaches its column on pillarRow. Later
// writes win, so the result depends on scan order; rows above pillarRow are
// still visited by the noise passes after the pillar is stamped. The origin
// platform is applied last. Writes outside the grid are dropped.
//
// Draws: two Values for the frequencies, then one Range(-2, 2) per pillar in scan order.
func (g *TerrainGenerator) Generate(width, height int, src rng.Source) *world.Grid {
	grid := world.NewGrid(width, height)

	freqAdd := src.Value() * addFrequencyScale
	freqRemove := src.Value() * removeFrequencyScale

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y < terrainBand {
				g.carve(grid, x, y, freqAdd, freqRemove)
			}
			if g.isPillarColumn(x, y) {
				insertPillar(grid, x, y, src.Range(pillarJitterMin, pillarJitterMax))
			}
		}
	}

	for _, c := range platformCells {
		grid.Set(c.X, c.Y, world.Solid)
	}

	return grid
}

// carve applies the add pass and then the remove pass to one cell
func (g *TerrainGenerator) carve(grid *world.Grid, x, y int, freqAdd, freqRemove float64) {
	if g.field.Sample(float64(x), float64(y), freqAdd) > addThreshold {
		grid.Set(x, y, world.Solid)
	}
	if g.field.Sample(float64(x), float64(y), freqRemove) > removeThreshold {
		grid.Set(x, y, world.Empty)
	}
}

func (g *TerrainGenerator) isPillarColumn(x, y int) bool {
	return g.pillarSpacing > 0 && y == pillarRow && x > pillarMinX && x%g.pillarSpacing == 0
}

// insertPillar stamps a 2x2 block whose upper-right cell is (x, y+jitter)
func insertPillar(grid *world.Grid, x, y, jitter int) {
	grid.Set(x, y+jitter, world.Solid)
	grid.Set(x, y-1+jitter, world.Solid)
	grid.Set(x-1, y+jitter, world.Solid)
	grid.Set(x-1, y-1+jitter, world.Solid)
}
