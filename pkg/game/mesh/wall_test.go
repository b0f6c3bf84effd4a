package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

func holeMesh(t *testing.T, plane Plane) *MeshData {
	t.Helper()
	g := world.MustGrid(5, 5)
	g.Fill(world.Wall)
	g.Set(2, 2, world.Empty)
	m, err := Generate(g, Options{SquareSize: 1, Plane: plane})
	require.NoError(t, err)
	return m
}

// TestExtrudeWalls_QuadPerEdge verifies four vertices and two triangles per outline edge.
func TestExtrudeWalls_QuadPerEdge(t *testing.T) {
	m := holeMesh(t, PlaneXZ)
	require.Len(t, m.Outlines, 1)

	w := ExtrudeWalls(m, DefaultWallHeight, PlaneXZ)
	edges := len(m.Outlines[0]) - 1
	assert.Equal(t, 4, edges)
	assert.Len(t, w.Vertices, edges*4)
	assert.Len(t, w.Triangles, edges*6)

	top := m.Vertices[m.Outlines[0][0]]
	assert.Equal(t, top, w.Vertices[0])
	assert.Equal(t, top.Y-DefaultWallHeight, w.Vertices[2].Y)
	assert.Equal(t, top.X, w.Vertices[2].X)
}

// TestEdgeColliders_ClosedPaths checks 2D outlines become closed point paths.
func TestEdgeColliders_ClosedPaths(t *testing.T) {
	m := holeMesh(t, PlaneXY)
	paths := EdgeColliders(m)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0], 5)
	assert.Equal(t, paths[0][0], paths[0][len(paths[0])-1])
	for i, v := range m.Outlines[0] {
		assert.Equal(t, m.Vertices[v].X, paths[0][i].X)
		assert.Equal(t, m.Vertices[v].Y, paths[0][i].Y)
	}
}
