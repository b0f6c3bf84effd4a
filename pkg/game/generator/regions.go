package generator

import (
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Region is one 4-connected component of same-valued tiles, in discovery order.
type Region []world.Coord

// Regions returns every 4-connected region of tile. The grid is scanned x outer,
// y inner and each region is collected by breadth first flood fill, so the
// result is deterministic. Regions are disjoint and cover every tile of that
// type exactly once.
func Regions(grid *world.Grid, tile world.Tile) []Region {
	var regions []Region
	visited := make([]bool, grid.Width()*grid.Height())

	grid.ForEachTile(func(x, y int, t world.Tile) {
		if t != tile || visited[y*grid.Width()+x] {
			return
		}
		regions = append(regions, floodFill(grid, world.Coord{X: x, Y: y}, visited))
	})

	return regions
}

// floodFill collects the region containing start, marking tiles in visited
// (indexed y*width+x).
func floodFill(grid *world.Grid, start world.Coord, visited []bool) Region {
	tile := grid.At(start)
	width := grid.Width()

	var region Region
	q := queue.New[world.Coord]()
	q.Enqueue(start)
	visited[start.Y*width+start.X] = true

	for !q.Empty() {
		c := q.Dequeue()
		region = append(region, c)

		for _, d := range world.Orthogonal {
			n := c.Add(d)
			if !grid.InBounds(n.X, n.Y) || grid.At(n) != tile {
				continue
			}
			if visited[n.Y*width+n.X] {
				continue
			}
			visited[n.Y*width+n.X] = true
			q.Enqueue(n)
		}
	}

	return region
}

// ProcessMap strips wall regions smaller than wallThreshold and fills empty
// regions smaller than roomThreshold, then turns the surviving empty regions
// into rooms. The largest room (first found on ties) is the main room.
func ProcessMap(grid *world.Grid, wallThreshold, roomThreshold int) (*RoomGraph, error) {
	for _, region := range Regions(grid, world.Wall) {
		if len(region) < wallThreshold {
			setTiles(grid, region, world.Empty)
		}
	}

	graph := &RoomGraph{}
	for _, region := range Regions(grid, world.Empty) {
		if len(region) < roomThreshold {
			setTiles(grid, region, world.Wall)
			continue
		}
		graph.Add(NewRoom(region, grid))
	}

	if graph.Len() == 0 {
		return nil, ErrNoSurvivingRooms
	}

	largest := 0
	for i, room := range graph.Rooms {
		if room.Size() > graph.Rooms[largest].Size() {
			largest = i
		}
	}
	graph.Rooms[largest].IsMain = true
	graph.Rooms[largest].AccessibleFromMain = true

	return graph, nil
}

func setTiles(grid *world.Grid, tiles []world.Coord, t world.Tile) {
	for _, c := range tiles {
		grid.Set(c.X, c.Y, t)
	}
}
