package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

// TestLine_SteppedAlongLongerAxis verifies the integer line walk.
func TestLine_SteppedAlongLongerAxis(t *testing.T) {
	tests := []struct {
		from, to world.Coord
		want     []world.Coord
	}{
		{
			from: world.Coord{X: 0, Y: 0}, to: world.Coord{X: 4, Y: 2},
			want: []world.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 2}},
		},
		{
			from: world.Coord{X: 0, Y: 0}, to: world.Coord{X: 0, Y: 3},
			want: []world.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
		},
		{
			from: world.Coord{X: 3, Y: 0}, to: world.Coord{X: 0, Y: 0},
			want: []world.Coord{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		},
		{
			from: world.Coord{X: 2, Y: 2}, to: world.Coord{X: 2, Y: 2},
			want: []world.Coord{{X: 2, Y: 2}},
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Line(tt.from, tt.to), "Line(%s, %s)", tt.from, tt.to)
	}
}

// TestLine_EndsAtTarget checks arbitrary lines finish on the target tile.
func TestLine_EndsAtTarget(t *testing.T) {
	from := world.Coord{X: 5, Y: 5}
	for dx := -7; dx <= 7; dx++ {
		for dy := -7; dy <= 7; dy++ {
			to := world.Coord{X: 5 + dx, Y: 5 + dy}
			line := Line(from, to)
			require.NotEmpty(t, line)
			assert.Equal(t, from, line[0])
			assert.Equal(t, to, line[len(line)-1])
			assert.Len(t, line, max(abs(dx), abs(dy))+1)
		}
	}
}

// TestCircle_StampsDiskWithinBounds verifies the disk shape and bounds checks.
func TestCircle_StampsDiskWithinBounds(t *testing.T) {
	g := world.MustGrid(7, 7)
	g.Fill(world.Wall)
	Circle(g, world.Coord{X: 3, Y: 3}, 2)
	assert.Equal(t, 13, g.Count(world.Empty))

	g.Fill(world.Wall)
	Circle(g, world.Coord{X: 0, Y: 0}, 1)
	assert.Equal(t, 3, g.Count(world.Empty))

	g.Fill(world.Wall)
	Circle(g, world.Coord{X: 6, Y: 6}, 0)
	assert.Equal(t, world.Empty, g.Get(6, 6))
	assert.Equal(t, 1, g.Count(world.Empty))
}

// TestNewRoom_EdgeTiles checks only wall-adjacent tiles are edges.
func TestNewRoom_EdgeTiles(t *testing.T) {
	g, err := world.ParseGrid(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	require.NoError(t, err)
	regions := Regions(g, world.Empty)
	require.Len(t, regions, 1)
	room := NewRoom(regions[0], g)
	assert.Equal(t, 9, room.Size())
	assert.Len(t, room.EdgeTiles, 8)
	assert.NotContains(t, room.EdgeTiles, world.Coord{X: 2, Y: 2})
}

// TestNewRoom_BorderTileIsEdge verifies out-of-range neighbours count as wall.
func TestNewRoom_BorderTileIsEdge(t *testing.T) {
	g := world.MustGrid(3, 3)
	room := NewRoom(Regions(g, world.Empty)[0], g)
	assert.Len(t, room.EdgeTiles, 8)
}

// TestRoomGraph_MarkAccessiblePropagates checks transitive marking over a cycle.
func TestRoomGraph_MarkAccessiblePropagates(t *testing.T) {
	g := &RoomGraph{Rooms: make([]Room, 5)}
	g.Connect(0, 1)
	g.Connect(1, 2)
	g.Connect(2, 0)
	g.Connect(3, 4)

	g.MarkAccessible(1)
	for i := 0; i < 3; i++ {
		assert.True(t, g.Rooms[i].AccessibleFromMain, "room %d", i)
	}
	assert.False(t, g.Rooms[3].AccessibleFromMain)
	assert.False(t, g.AllAccessible())

	g.Connect(4, 2)
	assert.True(t, g.AllAccessible())
	assert.True(t, g.Rooms[2].IsConnected(4))
	assert.True(t, g.Rooms[4].IsConnected(2))
}

// TestConnectClosestRooms_TwoRooms verifies the two-room scenario: one passage
// between the nearest edge tiles and both rooms reachable.
func TestConnectClosestRooms_TwoRooms(t *testing.T) {
	g, err := world.ParseGrid(
		"#########",
		"#...#...#",
		"#...#...#",
		"#...#...#",
		"#########",
	)
	require.NoError(t, err)
	rooms, err := ProcessMap(g, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, rooms.Len())

	passages, err := ConnectClosestRooms(g, rooms, 1)
	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, Passage{RoomA: 0, RoomB: 1, From: world.Coord{X: 3, Y: 1}, To: world.Coord{X: 5, Y: 1}}, passages[0])

	for i := range rooms.Rooms {
		assert.True(t, rooms.Rooms[i].AccessibleFromMain, "room %d", i)
	}
	assert.Equal(t, world.Empty, g.Get(4, 1))
	assert.Equal(t, world.Wall, g.Get(4, 3))
	assert.Len(t, Regions(g, world.Empty), 1)
}

// TestConnectClosestRooms_LinksClusters verifies the second pass joins clusters
// that the nearest-neighbour pass leaves apart.
func TestConnectClosestRooms_LinksClusters(t *testing.T) {
	g, err := world.ParseGrid(
		"##########################",
		"#....#...#########...#...#",
		"#....#...#########...#...#",
		"#....#...#########...#...#",
		"##########################",
	)
	require.NoError(t, err)
	rooms, err := ProcessMap(g, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, rooms.Len())
	assert.Equal(t, 0, rooms.Main())

	passages, err := ConnectClosestRooms(g, rooms, 1)
	require.NoError(t, err)
	require.Len(t, passages, 3)
	assert.Equal(t, 0, passages[0].RoomA)
	assert.Equal(t, 1, passages[0].RoomB)
	assert.Equal(t, 2, passages[1].RoomA)
	assert.Equal(t, 3, passages[1].RoomB)
	assert.Equal(t, Passage{RoomA: 2, RoomB: 1, From: world.Coord{X: 18, Y: 1}, To: world.Coord{X: 8, Y: 1}}, passages[2])

	assert.True(t, rooms.AllAccessible())
	assert.Len(t, Regions(g, world.Empty), 1)
}

// TestConnectClosestRooms_SingleRoom checks nothing is carved for one room.
func TestConnectClosestRooms_SingleRoom(t *testing.T) {
	g, err := world.ParseGrid(
		"#####",
		"#...#",
		"#####",
	)
	require.NoError(t, err)
	rooms, err := ProcessMap(g, 1, 1)
	require.NoError(t, err)
	before := g.Clone()
	passages, err := ConnectClosestRooms(g, rooms, 3)
	require.NoError(t, err)
	assert.Empty(t, passages)
	assert.True(t, g.Equal(before))
}
