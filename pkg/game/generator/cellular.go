package generator

import (
	"math/rand"

	"cavegen/pkg/engine/world"
)

// RandomFill creates a width x height grid with a solid border and interior
// tiles set to Wall with probability fillPercent/100. Tiles are drawn x outer,
// y inner so a given rng sequence always maps to the same grid.
func RandomFill(width, height, fillPercent int, rng *rand.Rand) *world.Grid {
	grid := world.MustGrid(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if grid.IsOnBorder(x, y) {
				grid.Set(x, y, world.Wall)
				continue
			}
			if rng.Intn(100) < fillPercent {
				grid.Set(x, y, world.Wall)
			}
		}
	}
	return grid
}

// Smooth applies one cellular automaton step: a tile with more than four
// surrounding walls becomes Wall, fewer than four becomes Empty, exactly four
// stays. Every tile reads the previous generation. Reports whether any tile
// changed.
func Smooth(grid *world.Grid) bool {
	next := grid.Clone()
	changed := false
	grid.ForEachTile(func(x, y int, t world.Tile) {
		walls := grid.SurroundingWallCount(x, y)
		switch {
		case walls > 4:
			next.Set(x, y, world.Wall)
		case walls < 4:
			next.Set(x, y, world.Empty)
		}
		if next.Get(x, y) != t {
			changed = true
		}
	})
	grid.CopyFrom(next)
	return changed
}

// SmoothN applies n smoothing steps
func SmoothN(grid *world.Grid, n int) {
	for i := 0; i < n; i++ {
		Smooth(grid)
	}
}

// SmoothUntilStable smooths until a step changes nothing or limit steps ran.
// Returns the number of steps that changed the grid and whether a fixed
// point was reached.
func SmoothUntilStable(grid *world.Grid, limit int) (int, bool) {
	for i := 0; i < limit; i++ {
		if !Smooth(grid) {
			return i, true
		}
	}
	return limit, false
}
