package devtools

import (
	"github.com/zyedidia/generic/mapset"

	"platformgen/pkg/engine/world"
)

// OpenRegion returns the Empty cells 4-connected to start, start included.
// It returns an empty set when start is outside the grid or Solid.
// The region ignores jumping and gravity; it is a debug measure of how much
// open air the spawn cell shares, not a traversability check.
func OpenRegion(grid *world.Grid, start world.Coord) mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	queue := []world.Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) || !grid.IsEmpty(current.X, current.Y) {
			continue
		}
		visited.Put(current)

		for _, dir := range world.AllDirections() {
			if n, ok := grid.Neighbor(current.X, current.Y, dir); ok && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// countEmpty returns the number of Empty cells in grid
func countEmpty(grid *world.Grid) int {
	return grid.Width()*grid.Height() - grid.CountSolid()
}
