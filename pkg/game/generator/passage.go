package generator

import (
	"cavegen/pkg/engine/world"
)

// Passage records one carved connection between two rooms.
type Passage struct {
	RoomA, RoomB int
	From, To     world.Coord
}

// Line returns the tiles on the integer line from one coord to another,
// both ends included. It steps along the longer axis and moves along the
// shorter one whenever the accumulated gradient reaches the longer length.
func Line(from, to world.Coord) []world.Coord {
	x, y := from.X, from.Y
	dx, dy := to.X-from.X, to.Y-from.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)
	longest := abs(dx)
	shortest := abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]world.Coord, 0, longest+1)
	gradient := longest / 2
	for i := 0; i < longest; i++ {
		line = append(line, world.Coord{X: x, Y: y})

		if inverted {
			y += step
		} else {
			x += step
		}

		gradient += shortest
		if gradient >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			gradient -= longest
		}
	}
	return append(line, world.Coord{X: x, Y: y})
}

// Circle sets every in-bounds tile within radius r of c (x²+y² <= r²) to Empty
func Circle(grid *world.Grid, c world.Coord, r int) {
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			if x*x+y*y <= r*r {
				grid.Set(c.X+x, c.Y+y, world.Empty)
			}
		}
	}
}

// CarvePassage opens a corridor of the given radius from one tile to another
func CarvePassage(grid *world.Grid, from, to world.Coord, radius int) {
	for _, c := range Line(from, to) {
		Circle(grid, c, radius)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
