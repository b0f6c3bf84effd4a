package world

import "fmt"

// WithBorder returns a copy of g padded on every side by size Wall tiles.
// The padding is cosmetic containment applied right before meshing.
func (g *Grid) WithBorder(size int) (*Grid, error) {
	if size < 0 {
		return nil, fmt.Errorf("world: negative border size %d", size)
	}
	if size == 0 {
		return g.Clone(), nil
	}
	b := newGrid(g.width+size*2, g.height+size*2)
	b.Fill(Wall)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			b.Set(x+size, y+size, g.Get(x, y))
		}
	}
	return b, nil
}
