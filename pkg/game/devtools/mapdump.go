// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"platformgen/pkg/engine/world"
	"platformgen/pkg/game/entities"
	"platformgen/pkg/game/level"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell, with entities drawn over terrain
func cellSymbol(lvl *level.Level, overlay map[world.Coord]entities.Kind, x, y int) string {
	if kind, ok := overlay[world.Coord{X: x, Y: y}]; ok {
		return kind.Icon()
	}
	return string(lvl.Grid.Get(x, y).Glyph())
}

// entityOverlay maps each occupied cell to the first entity placed in it
func entityOverlay(lvl *level.Level) map[world.Coord]entities.Kind {
	overlay := make(map[world.Coord]entities.Kind)
	for _, p := range lvl.Placements {
		c := p.Position.Cell()
		if _, taken := overlay[c]; !taken {
			overlay[c] = p.Kind
		}
	}
	return overlay
}

// writeMapGrid writes the grid top row first, optionally with entities drawn over it
func writeMapGrid(w io.Writer, lvl *level.Level, withEntities bool) {
	overlay := map[world.Coord]entities.Kind{}
	if withEntities {
		overlay = entityOverlay(lvl)
	}
	for y := lvl.Grid.Height() - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%3d ", y)
		for x := 0; x < lvl.Grid.Width(); x++ {
			fmt.Fprint(w, cellSymbol(lvl, overlay, x, y))
		}
		fmt.Fprintln(w)
	}
}

// DumpLevel writes a full debug dump of lvl: metadata, legend, terrain map,
// map with entities, placement requests, and the stream draws.
// Format is human-readable (sections, key: value, consistent structure).
func DumpLevel(w io.Writer, lvl *level.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== LEVEL DUMP DEBUG (terrain, placements, stream) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed_input: %q\n", lvl.Input)
	fmt.Fprintf(w, "level_seed: %d\n", lvl.Seed)
	fmt.Fprintf(w, "seed_origin: %s\n", lvl.Origin)
	fmt.Fprintf(w, "generator: %s\n", lvl.Generator)
	fmt.Fprintf(w, "grid_width: %d\n", lvl.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", lvl.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row growing upwards)\n")
	fmt.Fprintf(w, "solid_cells: %d\n", lvl.Grid.CountSolid())
	player, ok := lvl.Player()
	if ok {
		fmt.Fprintf(w, "player_cell: %d,%d\n", player.Cell.X, player.Cell.Y)
		region := OpenRegion(lvl.Grid, player.Cell)
		fmt.Fprintf(w, "open_cells_connected_to_player: %d of %d\n", region.Size(), countEmpty(lvl.Grid))
	} else {
		fmt.Fprintln(w, "player_cell: none")
	}
	fmt.Fprintf(w, "hazards: %d\n", entities.CountKind(lvl.Placements, entities.KindHazard))
	fmt.Fprintf(w, "enemies: %d\n", entities.CountKind(lvl.Placements, entities.KindEnemy))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%c = solid  %c = empty", world.Solid.Glyph(), world.Empty.Glyph())
	for _, kind := range entities.AllKinds() {
		fmt.Fprintf(w, "  %s = %s", kind.Icon(), kind)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "")

	// --- Maps ---
	fmt.Fprintln(w, "--- Map (terrain only; top row first) ---")
	writeMapGrid(w, lvl, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (with entities; each drawn in the cell containing its position) ---")
	writeMapGrid(w, lvl, true)
	fmt.Fprintln(w, "")

	// --- Placements ---
	fmt.Fprintln(w, "--- Placements (emission order) ---")
	for i, p := range lvl.Placements {
		fmt.Fprintf(w, "  %d kind: %s x: %.1f y: %.1f cell: %d,%d\n", i, p.Kind, p.Position.X, p.Position.Y, p.Cell.X, p.Cell.Y)
	}
	if len(lvl.Placements) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w, "")

	// --- Stream ---
	fmt.Fprintln(w, "--- Stream draws (in order) ---")
	for i, d := range lvl.Draws {
		fmt.Fprintf(w, "  %d %s\n", i, d)
	}
	if len(lvl.Draws) == 0 {
		fmt.Fprintln(w, "  (none)")
	}

	return nil
}

// DumpLevelToFile writes DumpLevel output to map.txt in the working directory
// and returns the absolute path written.
func DumpLevelToFile(lvl *level.Level) (string, error) {
	return DumpLevelToPath(lvl, mapDumpFilename)
}

// DumpLevelToPath writes DumpLevel output to path and returns its absolute form
func DumpLevelToPath(lvl *level.Level, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	if err := DumpLevel(f, lvl); err != nil {
		return "", err
	}
	return absPath, nil
}
