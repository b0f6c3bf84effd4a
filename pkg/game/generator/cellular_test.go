package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/random"
	"cavegen/pkg/engine/world"
)

// TestRandomFill_Deterministic verifies the same seed yields an identical grid.
func TestRandomFill_Deterministic(t *testing.T) {
	a := RandomFill(10, 10, 45, random.New("test"))
	b := RandomFill(10, 10, 45, random.New("test"))
	assert.True(t, a.Equal(b), "grids differ:\n%s\n\n%s", a, b)

	c := RandomFill(10, 10, 45, random.New("other"))
	assert.False(t, a.Equal(c), "different seeds produced the same grid")
}

// TestRandomFill_BorderIsWall checks the border invariant for several fills.
func TestRandomFill_BorderIsWall(t *testing.T) {
	for _, fill := range []int{0, 45, 100} {
		g := RandomFill(12, 7, fill, random.New("border"))
		g.ForEachTile(func(x, y int, tile world.Tile) {
			if g.IsOnBorder(x, y) {
				assert.Equal(t, world.Wall, tile, "fill %d: border tile (%d,%d)", fill, x, y)
			}
		})
	}
}

// TestRandomFill_Extremes checks 0% and 100% fill.
func TestRandomFill_Extremes(t *testing.T) {
	empty := RandomFill(8, 6, 0, random.New("x"))
	assert.Equal(t, 6*4, empty.Count(world.Empty))
	full := RandomFill(8, 6, 100, random.New("x"))
	assert.Equal(t, 8*6, full.Count(world.Wall))
}

// TestSmooth_AllWallIsNoop verifies a solid grid does not change.
func TestSmooth_AllWallIsNoop(t *testing.T) {
	g := world.MustGrid(6, 5)
	g.Fill(world.Wall)
	assert.False(t, Smooth(g))
	assert.Equal(t, 30, g.Count(world.Wall))
}

// TestSmooth_AllEmptyIsIdempotent checks that an open grid only gains its four
// corners (five out-of-range neighbours each) and is stable afterwards.
func TestSmooth_AllEmptyIsIdempotent(t *testing.T) {
	g := world.MustGrid(6, 5)
	assert.True(t, Smooth(g))
	assert.Equal(t, 4, g.Count(world.Wall))
	for _, c := range []world.Coord{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 4}, {X: 5, Y: 4}} {
		assert.Equal(t, world.Wall, g.At(c), c.String())
	}

	snapshot := g.Clone()
	assert.False(t, Smooth(g))
	assert.True(t, g.Equal(snapshot))
}

// TestSmooth_ReadsPreviousGeneration verifies smoothing is double buffered: the
// wall at (0,1) sees three walls in the previous generation and clears, even
// though its neighbour (0,0) turns to wall in the same step.
func TestSmooth_ReadsPreviousGeneration(t *testing.T) {
	g := world.MustGrid(6, 6)
	g.Set(0, 1, world.Wall)
	Smooth(g)
	assert.Equal(t, world.Wall, g.Get(0, 0))
	assert.Equal(t, world.Empty, g.Get(0, 1))
}

// TestSmooth_RemovesIsolatedWall checks the majority rule on a lone wall.
func TestSmooth_RemovesIsolatedWall(t *testing.T) {
	g, err := world.ParseGrid(
		"#######",
		"#.....#",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#.....#",
		"#######",
	)
	require.NoError(t, err)
	Smooth(g)
	assert.Equal(t, world.Empty, g.Get(3, 3))
	assert.Equal(t, world.Wall, g.Get(0, 0))
}

// TestSmoothUntilStable_ReportsFixedPoint verifies the stable flag and step count.
func TestSmoothUntilStable_ReportsFixedPoint(t *testing.T) {
	g := world.MustGrid(6, 5)
	steps, stable := SmoothUntilStable(g, 5)
	assert.True(t, stable)
	assert.Equal(t, 1, steps)

	snapshot := g.Clone()
	Smooth(g)
	assert.True(t, g.Equal(snapshot))
}

// TestSmoothN_Golden pins the seeded 10x10 scenario before and after four
// smoothing passes, and checks the smoothed grid settles one pass later.
func TestSmoothN_Golden(t *testing.T) {
	filled, err := world.ParseGrid(
		"##########",
		"##...#.###",
		"####..#..#",
		"##..#....#",
		"##.#.#..##",
		"#.....#..#",
		"##...#.###",
		"#....#..##",
		"#..##..#.#",
		"##########",
	)
	require.NoError(t, err)
	smoothed, err := world.ParseGrid(
		"##########",
		"##########",
		"####....##",
		"###......#",
		"##.......#",
		"##......##",
		"##......##",
		"##.....###",
		"##########",
		"##########",
	)
	require.NoError(t, err)
	settled, err := world.ParseGrid(
		"##########",
		"##########",
		"####....##",
		"###......#",
		"##.......#",
		"##......##",
		"##......##",
		"###....###",
		"##########",
		"##########",
	)
	require.NoError(t, err)

	g := RandomFill(10, 10, 45, random.New("test"))
	require.True(t, g.Equal(filled), "fill:\n%s", g)

	SmoothN(g, 4)
	require.True(t, g.Equal(smoothed), "smooth 4:\n%s", g)

	steps, stable := SmoothUntilStable(g, 5)
	assert.True(t, stable)
	assert.Equal(t, 1, steps)
	assert.True(t, g.Equal(settled), "settled:\n%s", g)
}

// TestSmoothN_Deterministic checks that the seeded 10x10 scenario is reproducible
// with and without smoothing.
func TestSmoothN_Deterministic(t *testing.T) {
	for _, level := range []int{0, 4} {
		a := RandomFill(10, 10, 45, random.New("test"))
		b := RandomFill(10, 10, 45, random.New("test"))
		SmoothN(a, level)
		SmoothN(b, level)
		assert.True(t, a.Equal(b), "smooth level %d", level)
	}
}
