// Package level runs the full generation pipeline and hands its output to a
// tile surface and an entity factory.
package level

import (
	"fmt"
	"log"

	"platformgen/pkg/engine/noise"
	"platformgen/pkg/engine/rng"
	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/chunks"
	"platformgen/pkg/game/config"
	"platformgen/pkg/game/entities"
	"platformgen/pkg/game/generator"
	"platformgen/pkg/game/levelgen"
	"platformgen/pkg/game/seed"
)

// TileSurface receives one tile assignment per grid cell.
// Each call replaces whatever the surface held at x, y.
type TileSurface interface {
	SetTile(x, y int, tile world.Tile)
}

// EntityFactory instantiates the entities a level asks for
type EntityFactory interface {
	Spawn(req entities.PlacementRequest)
}

// Level is the result of one generation run
type Level struct {
	Input     string
	Seed      seed.Seed
	Origin    seed.Origin
	Generator string
	Grid      *world.Grid
	// Placements are ordered: the player (if any), then hazards, then enemies.
	Placements []entities.PlacementRequest
	// Draws lists every value taken from the run's stream, in order.
	Draws []rng.Draw
}

// Player returns the player request, or false when the spawn column had no empty cell
func (l *Level) Player() (entities.PlacementRequest, bool) {
	if len(l.Placements) > 0 && l.Placements[0].Kind == entities.KindPlayer {
		return l.Placements[0], true
	}
	return entities.PlacementRequest{}, false
}

// OfKind returns the placements of the given kind in emission order
func (l *Level) OfKind(kind entities.Kind) []entities.PlacementRequest {
	var out []entities.PlacementRequest
	for _, p := range l.Placements {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Emit renders every cell to surface and then spawns the placements through factory.
// Either collaborator may be nil.
func (l *Level) Emit(surface TileSurface, factory EntityFactory) {
	if surface != nil {
		l.Grid.ForEachCell(func(x, y int, _ world.CellState) {
			surface.SetTile(x, y, world.TileFor(l.Grid, x, y))
		})
	}
	if factory != nil {
		for _, p := range l.Placements {
			factory.Spawn(p)
		}
	}
}

// Builder runs generation for a fixed grid size and generator.
// Each Build call uses its own stream, so one Builder can produce any number of levels.
type Builder struct {
	width     int
	height    int
	generator generator.GridGenerator
	resolver  *seed.Resolver
	logger    *log.Logger
}

// NewBuilder creates a builder. A nil resolver resolves seeds without logging.
func NewBuilder(width, height int, gen generator.GridGenerator, resolver *seed.Resolver, logger *log.Logger) *Builder {
	if resolver == nil {
		resolver = &seed.Resolver{}
	}
	return &Builder{
		width:     width,
		height:    height,
		generator: gen,
		resolver:  resolver,
		logger:    logger,
	}
}

// FromConfig creates a builder for cfg, loading the chunk library when the chunk generator is selected
func FromConfig(cfg *config.Config, logger *log.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return NewBuilder(cfg.Width, cfg.Height, gen, seed.NewResolver(logger), logger), nil
}

// NewGenerator returns the grid generator selected by cfg
func NewGenerator(cfg *config.Config) (generator.GridGenerator, error) {
	switch cfg.Generator {
	case generator.KindNoise:
		field, ok := noise.New(cfg.Noise, cfg.NoiseSeed)
		if !ok {
			return nil, fmt.Errorf("unknown noise %q", cfg.Noise)
		}
		return generator.NewTerrainGenerator(field, cfg.PillarSpacing), nil
	case generator.KindChunks:
		library := chunks.Builtin()
		if cfg.ChunkDir != "" {
			var err error
			if library, err = chunks.LoadDir(cfg.ChunkDir); err != nil {
				return nil, fmt.Errorf("failed to load chunks: %w", err)
			}
		}
		return generator.NewChunkGenerator(library), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
}

// Generator returns the grid generator the builder uses
func (b *Builder) Generator() generator.GridGenerator {
	return b.generator
}

// Size returns the grid dimensions the builder produces
func (b *Builder) Size() (width, height int) {
	return b.width, b.height
}

// Build resolves raw into a seed and runs terrain generation, spawn search,
// hazard placement, and enemy placement on one fresh stream, in that order.
func (b *Builder) Build(raw string) *Level {
	s, origin := b.resolver.Resolve(raw)
	stream := rng.NewRecorder(rng.NewStream(s.Int64()))

	grid := b.generator.Generate(b.width, b.height, stream)

	var placements []entities.PlacementRequest
	if player, ok := levelgen.FindSpawn(grid); ok {
		placements = append(placements, player)
	} else {
		b.logf("no spawn cell in column 0 for seed %d", s)
	}
	hazards := levelgen.PlaceHazards(grid, stream)
	enemies := levelgen.PlaceEnemies(grid, stream)
	placements = append(placements, hazards...)
	placements = append(placements, enemies...)

	b.logf("generated %dx%d level with %s: %d hazards, %d enemies", b.width, b.height, b.generator.Name(), len(hazards), len(enemies))

	return &Level{
		Input:      raw,
		Seed:       s,
		Origin:     origin,
		Generator:  b.generator.Name(),
		Grid:       grid,
		Placements: placements,
		Draws:      stream.Draws(),
	}
}

func (b *Builder) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}
