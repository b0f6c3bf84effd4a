package mesh

// DefaultWallHeight is the extrusion depth used when none is configured
const DefaultWallHeight = 5

// WallMesh is the extruded wall geometry around every outline.
type WallMesh struct {
	Vertices  []Vec3
	Triangles []int
}

// ExtrudeWalls builds one quad per outline edge, dropping each edge by height
// against the plane's up direction.
func ExtrudeWalls(m *MeshData, height float64, plane Plane) *WallMesh {
	w := &WallMesh{}
	drop := plane.Up().Scale(height)
	for _, outline := range m.Outlines {
		for i := 0; i < len(outline)-1; i++ {
			start := len(w.Vertices)
			left := m.Vertices[outline[i]]
			right := m.Vertices[outline[i+1]]
			w.Vertices = append(w.Vertices,
				left,
				right,
				left.Sub(drop),
				right.Sub(drop),
			)
			w.Triangles = append(w.Triangles,
				start+0, start+2, start+3,
				start+3, start+1, start+0,
			)
		}
	}
	return w
}

// EdgePath is one closed 2D collision outline.
type EdgePath []Vec2

// EdgeColliders projects each outline of a 2D mesh onto X/Y points
func EdgeColliders(m *MeshData) []EdgePath {
	paths := make([]EdgePath, 0, len(m.Outlines))
	for _, outline := range m.Outlines {
		path := make(EdgePath, len(outline))
		for i, v := range outline {
			path[i] = PlaneXY.Project(m.Vertices[v])
		}
		paths = append(paths, path)
	}
	return paths
}
