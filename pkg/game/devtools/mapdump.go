// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/level"
)

const mapDumpFilename = "map.txt"

// ErrNoLevel is returned when there is nothing to dump.
var ErrNoLevel = errors.New("devtools: no level")

// tileSymbol returns the dump symbol for a tile. Nil maps disable the
// main room and passage overlays.
func tileSymbol(tile world.Tile, c world.Coord, main map[world.Coord]bool, ends map[world.Coord]bool) rune {
	switch {
	case tile == world.Wall:
		return '#'
	case ends[c]:
		return 'P'
	case main[c]:
		return 'm'
	default:
		return '.'
	}
}

// writeGrid writes g top row first, matching world.ParseGrid.
func writeGrid(w io.Writer, g *world.Grid, main, ends map[world.Coord]bool) {
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			fmt.Fprintf(w, "%c", tileSymbol(g.At(c), c, main, ends))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump of lvl to w: metadata, legend, the
// carved map with overlays, the bordered map, rooms, passages and mesh stats.
func WriteDump(w io.Writer, lvl *level.Level) error {
	if lvl == nil {
		return ErrNoLevel
	}

	cfg := lvl.Config
	main := make(map[world.Coord]bool)
	if i := lvl.Rooms.Main(); i >= 0 {
		for _, c := range lvl.Rooms.Rooms[i].Tiles {
			main[c] = true
		}
	}
	ends := make(map[world.Coord]bool)
	for _, p := range lvl.Passages {
		ends[p.From] = true
		ends[p.To] = true
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== CAVE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %q\n", lvl.Seed)
	fmt.Fprintf(w, "random_seed: %v\n", cfg.UseRandomSeed)
	fmt.Fprintf(w, "width: %d\n", lvl.Grid.Width())
	fmt.Fprintf(w, "height: %d\n", lvl.Grid.Height())
	fmt.Fprintf(w, "fill_percent: %d\n", cfg.FillPercent)
	fmt.Fprintf(w, "smooth_level: %d\n", cfg.SmoothLevel)
	fmt.Fprintf(w, "wall_threshold: %d\n", cfg.WallThreshold)
	fmt.Fprintf(w, "room_threshold: %d\n", cfg.RoomThreshold)
	fmt.Fprintf(w, "passage_width: %d\n", cfg.PassageWidth)
	fmt.Fprintf(w, "border_size: %d\n", cfg.BorderSize)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y up, first row printed is highest y)\n")
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = empty  m = main room  P = passage endpoint")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (carved) ---")
	writeGrid(w, lvl.Grid, main, ends)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (with border) ---")
	writeGrid(w, lvl.Bordered, nil, nil)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "Rooms:")
	for i, r := range lvl.Rooms.Rooms {
		fmt.Fprintf(w, "  index: %d size: %d edge_tiles: %d main: %v accessible: %v connected: %v\n",
			i, r.Size(), len(r.EdgeTiles), r.IsMain, r.AccessibleFromMain, r.Connected)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Passages:")
	if len(lvl.Passages) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range lvl.Passages {
		fmt.Fprintf(w, "  room_a: %d room_b: %d from: %s to: %s\n", p.RoomA, p.RoomB, p.From, p.To)
	}
	fmt.Fprintln(w, "")

	// --- Mesh ---
	fmt.Fprintln(w, "Mesh:")
	m := lvl.Mesh
	fmt.Fprintf(w, "  vertices: %d\n", len(m.Vertices))
	fmt.Fprintf(w, "  triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(w, "  outlines: %d\n", len(m.Outlines))
	fmt.Fprintf(w, "  saddle: %s\n", cfg.Saddle)
	fmt.Fprintf(w, "  is_2d: %v\n", m.Is2D)
	if lvl.Walls != nil {
		fmt.Fprintf(w, "  wall_vertices: %d\n", len(lvl.Walls.Vertices))
		fmt.Fprintf(w, "  wall_triangles: %d\n", len(lvl.Walls.Triangles)/3)
	}
	if lvl.Colliders != nil {
		fmt.Fprintf(w, "  colliders: %d\n", len(lvl.Colliders))
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END CAVE DUMP ===")
	return err
}

// DumpLevelToFile writes WriteDump output to map.txt in the working
// directory and returns its absolute path.
func DumpLevelToFile(lvl *level.Level) (string, error) {
	if lvl == nil {
		return "", ErrNoLevel
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, lvl); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
