// Package renderer defines the preview backends and the canvas they draw levels from.
package renderer

import (
	"github.com/zyedidia/generic/mapset"

	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
	"platformgen/pkg/game/level"
)

// Canvas collects a level's tile assignments and spawned entities.
// It satisfies both level.TileSurface and level.EntityFactory.
type Canvas struct {
	width    int
	height   int
	tiles    [][]world.Tile
	occupied map[world.Coord]entities.Kind
	spawned  []entities.PlacementRequest
	painted  mapset.Set[world.Coord]
}

var (
	_ level.TileSurface   = (*Canvas)(nil)
	_ level.EntityFactory = (*Canvas)(nil)
)

// NewCanvas creates an empty canvas of the given size
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Reset(width, height)
	return c
}

// Reset discards everything drawn and resizes the canvas
func (c *Canvas) Reset(width, height int) {
	c.width = width
	c.height = height
	c.tiles = make([][]world.Tile, width)
	for x := range c.tiles {
		c.tiles[x] = make([]world.Tile, height)
	}
	c.occupied = make(map[world.Coord]entities.Kind)
	c.spawned = nil
	c.painted = mapset.New[world.Coord]()
}

// Load resets the canvas to the level's size and emits the level into it
func (c *Canvas) Load(lvl *level.Level) {
	c.Reset(lvl.Grid.Width(), lvl.Grid.Height())
	lvl.Emit(c, c)
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetTile replaces the tile at x, y. Writes outside the canvas are ignored.
func (c *Canvas) SetTile(x, y int, tile world.Tile) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.tiles[x][y] = tile
	c.painted.Put(world.Coord{X: x, Y: y})
}

// Tile returns the tile at x, y, or TileNone outside the canvas
func (c *Canvas) Tile(x, y int) world.Tile {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return world.TileNone
	}
	return c.tiles[x][y]
}

// Painted reports how many distinct cells have received a tile
func (c *Canvas) Painted() int {
	return c.painted.Size()
}

// Spawn records req. The entity occupies the cell containing its position;
// when two entities share a cell the first one spawned is shown.
func (c *Canvas) Spawn(req entities.PlacementRequest) {
	c.spawned = append(c.spawned, req)
	cell := req.Position.Cell()
	if _, taken := c.occupied[cell]; !taken {
		c.occupied[cell] = req.Kind
	}
}

// EntityAt returns the kind shown at x, y
func (c *Canvas) EntityAt(x, y int) (entities.Kind, bool) {
	k, ok := c.occupied[world.Coord{X: x, Y: y}]
	return k, ok
}

// Spawned returns every request in the order it was received
func (c *Canvas) Spawned() []entities.PlacementRequest {
	return c.spawned
}
