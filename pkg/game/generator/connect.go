package generator

import (
	"fmt"

	"cavegen/pkg/engine/world"
)

// candidate is the best edge tile pair found so far by a nearest pair scan.
type candidate struct {
	found        bool
	distance     int
	roomA, roomB int
	tileA, tileB world.Coord
}

// consider scans every edge tile pair of rooms a and b, keeping the first
// pair found with a strictly smaller squared distance.
func (c *candidate) consider(g *RoomGraph, a, b int) {
	for _, tileA := range g.Rooms[a].EdgeTiles {
		for _, tileB := range g.Rooms[b].EdgeTiles {
			d := tileA.SquaredDistance(tileB)
			if c.found && d >= c.distance {
				continue
			}
			*c = candidate{
				found:    true,
				distance: d,
				roomA:    a,
				roomB:    b,
				tileA:    tileA,
				tileB:    tileB,
			}
		}
	}
}

// ConnectClosestRooms links every room to the main room and carves the
// passages into grid.
//
// The first pass links each room that has no connection yet to its nearest
// room. The second pass repeatedly links the closest pair made of one
// unreachable and one reachable room until every room is reachable.
func ConnectClosestRooms(grid *world.Grid, g *RoomGraph, passageWidth int) ([]Passage, error) {
	var passages []Passage
	carve := func(c candidate) {
		g.Connect(c.roomA, c.roomB)
		CarvePassage(grid, c.tileA, c.tileB, passageWidth)
		passages = append(passages, Passage{RoomA: c.roomA, RoomB: c.roomB, From: c.tileA, To: c.tileB})
	}

	for a := range g.Rooms {
		if len(g.Rooms[a].Connected) > 0 {
			continue
		}
		var best candidate
		for b := range g.Rooms {
			if a == b || g.Rooms[a].IsConnected(b) {
				continue
			}
			best.consider(g, a, b)
		}
		if best.found {
			carve(best)
		}
	}

	for {
		var unreachable, reachable []int
		for i := range g.Rooms {
			if g.Rooms[i].AccessibleFromMain {
				reachable = append(reachable, i)
			} else {
				unreachable = append(unreachable, i)
			}
		}
		if len(unreachable) == 0 {
			return passages, nil
		}

		var best candidate
		for _, a := range unreachable {
			for _, b := range reachable {
				best.consider(g, a, b)
			}
		}
		if !best.found {
			return passages, fmt.Errorf("%w: %d rooms without edge tiles", ErrUnreachableRoom, len(unreachable))
		}
		carve(best)
	}
}
