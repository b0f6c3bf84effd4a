package world

import "fmt"

// Coord identifies a grid cell
type Coord struct {
	X int
	Y int
}

// SquaredDistance returns the squared euclidean distance between two coords
func (c Coord) SquaredDistance(o Coord) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Add returns c offset by d
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String returns "(x,y)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
