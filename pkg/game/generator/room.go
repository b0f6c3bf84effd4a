package generator

import (
	"slices"

	"github.com/zyedidia/generic/stack"

	"cavegen/pkg/engine/world"
)

// Room is a surviving empty region. Connections are stored as indices into the
// owning RoomGraph so the symmetric relation needs no back pointers.
type Room struct {
	Tiles []world.Coord
	// EdgeTiles are the tiles with at least one orthogonal Wall neighbour,
	// the candidate passage endpoints.
	EdgeTiles []world.Coord
	Connected []int

	IsMain             bool
	AccessibleFromMain bool
}

// NewRoom builds a room from a region, collecting its edge tiles from grid.
// Neighbours outside the grid count as Wall.
func NewRoom(tiles []world.Coord, grid *world.Grid) Room {
	r := Room{Tiles: tiles}
	for _, c := range tiles {
		for _, d := range world.Orthogonal {
			if grid.At(c.Add(d)) == world.Wall {
				r.EdgeTiles = append(r.EdgeTiles, c)
				break
			}
		}
	}
	return r
}

// Size returns the number of tiles in the room
func (r *Room) Size() int {
	return len(r.Tiles)
}

// IsConnected reports whether the room links directly to room index other
func (r *Room) IsConnected(other int) bool {
	return slices.Contains(r.Connected, other)
}

// RoomGraph is the arena of rooms of one generation pass.
type RoomGraph struct {
	Rooms []Room
}

// Add appends a room and returns its index
func (g *RoomGraph) Add(r Room) int {
	g.Rooms = append(g.Rooms, r)
	return len(g.Rooms) - 1
}

// Len returns the number of rooms
func (g *RoomGraph) Len() int {
	return len(g.Rooms)
}

// Main returns the index of the main room, or -1 if none is marked
func (g *RoomGraph) Main() int {
	for i := range g.Rooms {
		if g.Rooms[i].IsMain {
			return i
		}
	}
	return -1
}

// Connect links rooms a and b symmetrically. If either side is already
// reachable from the main room the other side, and everything linked to it,
// becomes reachable too.
func (g *RoomGraph) Connect(a, b int) {
	if g.Rooms[a].AccessibleFromMain {
		g.MarkAccessible(b)
	} else if g.Rooms[b].AccessibleFromMain {
		g.MarkAccessible(a)
	}
	g.Rooms[a].Connected = append(g.Rooms[a].Connected, b)
	g.Rooms[b].Connected = append(g.Rooms[b].Connected, a)
}

// MarkAccessible marks room i and every room transitively connected to it as
// reachable from the main room. Rooms already reachable are not revisited.
func (g *RoomGraph) MarkAccessible(i int) {
	if g.Rooms[i].AccessibleFromMain {
		return
	}
	pending := stack.New[int]()
	pending.Push(i)
	for pending.Size() > 0 {
		cur := pending.Pop()
		if g.Rooms[cur].AccessibleFromMain {
			continue
		}
		g.Rooms[cur].AccessibleFromMain = true
		for _, n := range g.Rooms[cur].Connected {
			if !g.Rooms[n].AccessibleFromMain {
				pending.Push(n)
			}
		}
	}
}

// AllAccessible reports whether every room is reachable from the main room
func (g *RoomGraph) AllAccessible() bool {
	for i := range g.Rooms {
		if !g.Rooms[i].AccessibleFromMain {
			return false
		}
	}
	return true
}
