package world

// Tile is the visual assignment for a single cell
type Tile int

const (
	TileNone   Tile = iota // nothing drawn
	TileGround             // solid cell buried under another solid cell
	TileTop                // solid cell with open air above it
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case TileGround:
		return "Ground"
	case TileTop:
		return "Top"
	default:
		return "None"
	}
}

// TileFor returns the tile that should be drawn for the cell at x, y.
// The top row of the grid is treated as having open air above it.
func TileFor(g *Grid, x, y int) Tile {
	if !g.IsSolid(x, y) {
		return TileNone
	}
	if y+1 >= g.Height() || g.IsEmpty(x, y+1) {
		return TileTop
	}
	return TileGround
}
