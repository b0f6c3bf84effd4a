package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the x and y offsets for this direction. North is +y.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: 1}
	case East:
		return Coord{X: 1, Y: 0}
	case South:
		return Coord{X: 0, Y: -1}
	case West:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{}
	}
}

// Orthogonal are the 4-connected neighbour offsets, in the order rooms check
// for edge tiles: up, down, left, right.
var Orthogonal = [4]Coord{North.Delta(), South.Delta(), West.Delta(), East.Delta()}

// Surrounding are the 8-connected neighbour offsets used by smoothing.
var Surrounding = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// SurroundingWallCount counts Wall tiles among the 8 neighbours of (x, y).
// Neighbours outside the grid count as Wall.
func (g *Grid) SurroundingWallCount(x, y int) int {
	count := 0
	for _, d := range Surrounding {
		if g.Get(x+d.X, y+d.Y) == Wall {
			count++
		}
	}
	return count
}
