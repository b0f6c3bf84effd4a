package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/random"
	"cavegen/pkg/engine/world"
)

// assertPartition checks that regions are disjoint and cover every tile of tile.
func assertPartition(t *testing.T, g *world.Grid, tile world.Tile, regions []Region) {
	t.Helper()
	seen := make(map[world.Coord]bool)
	for _, r := range regions {
		require.NotEmpty(t, r)
		for _, c := range r {
			assert.False(t, seen[c], "tile %s in two regions", c)
			seen[c] = true
			assert.Equal(t, tile, g.At(c))
		}
	}
	assert.Equal(t, g.Count(tile), len(seen))
}

// TestRegions_PartitionGrid verifies both tile types on random grids.
func TestRegions_PartitionGrid(t *testing.T) {
	for _, seed := range []string{"a", "b", "test", "cave"} {
		g := RandomFill(30, 20, 48, random.New(seed))
		SmoothN(g, 2)
		for _, tile := range []world.Tile{world.Wall, world.Empty} {
			assertPartition(t, g, tile, Regions(g, tile))
		}
	}
}

// TestRegions_FourConnected checks diagonal tiles are separate regions.
func TestRegions_FourConnected(t *testing.T) {
	g, err := world.ParseGrid(
		"#####",
		"#.#.#",
		"##.##",
		"#.#.#",
		"#####",
	)
	require.NoError(t, err)
	empty := Regions(g, world.Empty)
	assert.Len(t, empty, 5)
	for _, r := range empty {
		assert.Len(t, r, 1)
	}
	assert.Len(t, Regions(g, world.Wall), 1)
}

// TestRegions_RasterOrder verifies regions are discovered x outer, y inner.
func TestRegions_RasterOrder(t *testing.T) {
	g, err := world.ParseGrid(
		"#######",
		"#.###.#",
		"#######",
		"#..####",
		"#######",
	)
	require.NoError(t, err)
	regions := Regions(g, world.Empty)
	require.Len(t, regions, 3)
	assert.Equal(t, world.Coord{X: 1, Y: 1}, regions[0][0])
	assert.Equal(t, world.Coord{X: 1, Y: 3}, regions[1][0])
	assert.Equal(t, world.Coord{X: 5, Y: 3}, regions[2][0])
	assert.Len(t, regions[0], 2)
}

// TestProcessMap_StripsSmallRegions checks wall and room thresholds.
func TestProcessMap_StripsSmallRegions(t *testing.T) {
	g, err := world.ParseGrid(
		"#########",
		"#....#..#",
		"#.#..####",
		"#....#..#",
		"#########",
	)
	require.NoError(t, err)

	rooms, err := ProcessMap(g, 2, 5)
	require.NoError(t, err)
	require.Equal(t, 1, rooms.Len())
	assert.Equal(t, world.Empty, g.Get(2, 2), "lone wall should be stripped")
	assert.Equal(t, world.Wall, g.Get(6, 3), "two tile pocket should be filled")
	assert.Equal(t, world.Wall, g.Get(6, 1))
	assert.Equal(t, 12, rooms.Rooms[0].Size())
	assert.True(t, rooms.Rooms[0].IsMain)
	assert.True(t, rooms.Rooms[0].AccessibleFromMain)
}

// TestProcessMap_NoSurvivingRooms verifies the fatal zero-room case.
func TestProcessMap_NoSurvivingRooms(t *testing.T) {
	g, err := world.ParseGrid(
		"######",
		"#..#.#",
		"######",
	)
	require.NoError(t, err)
	_, err = ProcessMap(g, 0, 10)
	assert.ErrorIs(t, err, ErrNoSurvivingRooms)
	assert.Equal(t, 18, g.Count(world.Wall))
}

// TestProcessMap_MainRoomIsLargest checks that exactly one room is main.
func TestProcessMap_MainRoomIsLargest(t *testing.T) {
	g, err := world.ParseGrid(
		"##########",
		"#..#....##",
		"#..#....##",
		"##########",
	)
	require.NoError(t, err)
	rooms, err := ProcessMap(g, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, rooms.Len())
	assert.Equal(t, 1, rooms.Main())
	assert.False(t, rooms.Rooms[0].IsMain)
	assert.False(t, rooms.Rooms[0].AccessibleFromMain)
	assert.True(t, rooms.Rooms[1].AccessibleFromMain)
}
