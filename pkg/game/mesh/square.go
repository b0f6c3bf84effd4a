package mesh

import (
	"cavegen/pkg/engine/world"
)

// Configuration bits of a square.
const (
	bitTopLeft     = 8
	bitTopRight    = 4
	bitBottomRight = 2
	bitBottomLeft  = 1
)

// Square is one marching squares cell built from four control nodes.
type Square struct {
	TopLeft, TopRight, BottomRight, BottomLeft *ControlNode
	CentreTop, CentreRight, CentreBottom, CentreLeft *Node

	// Configuration is the 4-bit active corner code: bit 3 top left,
	// bit 2 top right, bit 1 bottom right, bit 0 bottom left.
	Configuration int
}

func newSquare(topLeft, topRight, bottomRight, bottomLeft *ControlNode) *Square {
	s := &Square{
		TopLeft:      topLeft,
		TopRight:     topRight,
		BottomRight:  bottomRight,
		BottomLeft:   bottomLeft,
		CentreTop:    topLeft.Right,
		CentreRight:  bottomRight.Above,
		CentreBottom: bottomLeft.Right,
		CentreLeft:   bottomLeft.Above,
	}
	if topLeft.Active {
		s.Configuration |= bitTopLeft
	}
	if topRight.Active {
		s.Configuration |= bitTopRight
	}
	if bottomRight.Active {
		s.Configuration |= bitBottomRight
	}
	if bottomLeft.Active {
		s.Configuration |= bitBottomLeft
	}
	return s
}

// SquareGrid holds the squares of a map, indexed [x][y].
type SquareGrid struct {
	Squares [][]*Square
}

// NewSquareGrid builds one control node per tile, centred on the origin, and
// one square per 2x2 block of control nodes. Wall tiles are active.
func NewSquareGrid(grid *world.Grid, squareSize float64, plane Plane) *SquareGrid {
	nodeCountX, nodeCountY := grid.Width(), grid.Height()
	mapWidth := float64(nodeCountX) * squareSize
	mapHeight := float64(nodeCountY) * squareSize

	controlNodes := make([][]*ControlNode, nodeCountX)
	for x := 0; x < nodeCountX; x++ {
		controlNodes[x] = make([]*ControlNode, nodeCountY)
		for y := 0; y < nodeCountY; y++ {
			px := -mapWidth/2 + float64(x)*squareSize + squareSize/2
			py := -mapHeight/2 + float64(y)*squareSize + squareSize/2
			pos := Vec3{X: px}.Add(plane.forward().Scale(py))
			controlNodes[x][y] = newControlNode(pos, grid.Get(x, y) == world.Wall, squareSize, plane)
		}
	}

	sg := &SquareGrid{Squares: make([][]*Square, nodeCountX-1)}
	for x := 0; x < nodeCountX-1; x++ {
		sg.Squares[x] = make([]*Square, nodeCountY-1)
		for y := 0; y < nodeCountY-1; y++ {
			sg.Squares[x][y] = newSquare(controlNodes[x][y+1], controlNodes[x+1][y+1], controlNodes[x+1][y], controlNodes[x][y])
		}
	}
	return sg
}

// Width returns the number of squares along x
func (sg *SquareGrid) Width() int {
	return len(sg.Squares)
}

// Height returns the number of squares along y
func (sg *SquareGrid) Height() int {
	if len(sg.Squares) == 0 {
		return 0
	}
	return len(sg.Squares[0])
}
