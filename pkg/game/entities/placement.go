package entities

import (
	"fmt"

	"platformgen/pkg/engine/world"
)

// PlacementRequest asks the entity factory to spawn one entity.
type PlacementRequest struct {
	Kind     Kind
	Position world.Position // world-space anchor
	Cell     world.Coord    // grid cell the placement was derived from
}

// NewPlacement builds a request for kind anchored on the given grid cell.
// Hazards and enemies sit on top of a solid cell: x is centered and y is the
// cell origin plus the kind's anchor offset. The player is centered in an
// empty cell.
func NewPlacement(kind Kind, x, y int) PlacementRequest {
	pos := world.Position{
		X: float64(x) + 0.5,
		Y: float64(y) + Kinds[kind].AnchorOffset,
	}
	return PlacementRequest{Kind: kind, Position: pos, Cell: world.Coord{X: x, Y: y}}
}

// String formats the request for logs and dumps
func (p PlacementRequest) String() string {
	return fmt.Sprintf("%s at %s (cell %s)", p.Kind, p.Position, p.Cell)
}

// CountKind returns how many requests in reqs have the given kind
func CountKind(reqs []PlacementRequest, kind Kind) int {
	n := 0
	for _, r := range reqs {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
