// Package world provides the 2D tile grid primitives shared by the cave
// generator and the mesher.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is too small for border logic.
var ErrInvalidDimensions = errors.New("world: grid must be at least 3x3")

// MinSize is the smallest width or height for which border tiles and interior
// tiles are distinct.
const MinSize = 3

// Tile is the occupancy state of a single grid cell.
type Tile uint8

// Tile values. The numeric values match the wall count contribution of a tile.
const (
	Empty Tile = iota
	Wall
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character map symbol for a tile
func (t Tile) Symbol() rune {
	if t == Wall {
		return '#'
	}
	return '.'
}

// Grid is a fixed-size width x height tile map addressed by (x, y).
// The shape never changes after creation; tiles are mutated in place.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates an all-Empty grid with the given dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return newGrid(width, height), nil
}

// MustGrid is like NewGrid but panics on invalid dimensions. Intended for tests
// and hard-coded maps.
func MustGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// ParseGrid builds a grid from rows of '#' (Wall) and anything else (Empty).
// rows[0] is the top row, i.e. the highest y, matching String.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("world: row %d has length %d, want %d", i, len(r), width)
		}
	}
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		y := g.height - 1 - i
		for x := 0; x < width; x++ {
			if r[x] == '#' {
				g.Set(x, y, Wall)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnBorder checks if a position is on the outermost ring of the grid
func (g *Grid) IsOnBorder(x, y int) bool {
	return g.InBounds(x, y) && (x == 0 || x == g.width-1 || y == 0 || y == g.height-1)
}

// Get returns the tile at (x, y). Out-of-range positions read as Wall.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.tiles[y*g.width+x]
}

// At returns the tile at c. Out-of-range positions read as Wall.
func (g *Grid) At(c Coord) Tile {
	return g.Get(c.X, c.Y)
}

// Set stores t at (x, y). Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[y*g.width+x] = t
	return true
}

// Fill sets every tile to t
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Count returns how many tiles equal t
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	copy(c.tiles, g.tiles)
	return c
}

// CopyFrom overwrites g with the tiles of src. Both grids must share a shape.
func (g *Grid) CopyFrom(src *Grid) {
	if src.width != g.width || src.height != g.height {
		panic("world: CopyFrom shape mismatch")
	}
	copy(g.tiles, src.tiles)
}

// Equal reports whether both grids have the same shape and tiles
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i, v := range g.tiles {
		if o.tiles[i] != v {
			return false
		}
	}
	return true
}

// ForEachTile iterates over every tile, x outer and y inner
func (g *Grid) ForEachTile(fn func(x, y int, t Tile)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}

// Rows renders the grid as one string per row, top (highest y) first
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.Get(x, y).Symbol())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String renders the grid with '#' for walls and '.' for empty tiles
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
