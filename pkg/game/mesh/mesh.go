package mesh

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"cavegen/pkg/engine/world"
)

// Sentinel errors for meshing.
var (
	// ErrInvalidSquareSize indicates a non-positive square size.
	ErrInvalidSquareSize = errors.New("mesh: square size must be positive")
	// ErrInconsistentAdjacency indicates a vertex without triangles, which
	// triangulation never produces.
	ErrInconsistentAdjacency = errors.New("mesh: vertex missing from triangle adjacency")
)

// SaddleMode selects how the two ambiguous opposite-corner configurations
// (5 and 10) are triangulated.
type SaddleMode int

const (
	// SaddleSplit draws each active corner as its own triangle, leaving the
	// two walls pinched apart.
	SaddleSplit SaddleMode = iota
	// SaddleBridge draws one hexagon joining both corners across the cell.
	SaddleBridge
)

// String returns the string representation of a saddle mode
func (m SaddleMode) String() string {
	switch m {
	case SaddleSplit:
		return "split"
	case SaddleBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// ParseSaddleMode parses "split" or "bridge"
func ParseSaddleMode(s string) (SaddleMode, error) {
	switch s {
	case "split", "":
		return SaddleSplit, nil
	case "bridge":
		return SaddleBridge, nil
	}
	return SaddleSplit, fmt.Errorf("mesh: unknown saddle mode %q", s)
}

// Options configures triangulation.
type Options struct {
	SquareSize float64
	Plane      Plane
	Saddle     SaddleMode
}

// DefaultOptions returns unit squares on the 3D floor plane
func DefaultOptions() Options {
	return Options{SquareSize: 1, Plane: PlaneXZ, Saddle: SaddleSplit}
}

// MeshData is the finished surface: vertex positions, index triples and the
// closed outline loops (first index == last index) of the cave silhouette.
type MeshData struct {
	Vertices  []Vec3
	Triangles []int
	Outlines  [][]int
	Is2D      bool
}

// TriangleCount returns the number of triangles
func (m *MeshData) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Triangle returns the i-th index triple
func (m *MeshData) Triangle(i int) Triangle {
	return Triangle{m.Triangles[i*3], m.Triangles[i*3+1], m.Triangles[i*3+2]}
}

// Mesher holds the state of one meshing pass. A Mesher is not reusable.
type Mesher struct {
	opts      Options
	vertices  []Vec3
	triangles []int
	adjacency map[int][]Triangle
	// checked holds vertices excluded from, or already placed on, an outline.
	checked  mapset.Set[int]
	outlines [][]int
}

// NewMesher creates a pass-local mesher
func NewMesher(opts Options) *Mesher {
	return &Mesher{
		opts:      opts,
		adjacency: make(map[int][]Triangle),
		checked:   mapset.New[int](),
	}
}

// Generate triangulates grid and extracts its outlines
func Generate(grid *world.Grid, opts Options) (*MeshData, error) {
	if opts.SquareSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSquareSize, opts.SquareSize)
	}
	m := NewMesher(opts)
	m.Triangulate(NewSquareGrid(grid, opts.SquareSize, opts.Plane))
	if err := m.CalculateOutlines(); err != nil {
		return nil, err
	}
	return m.MeshData(), nil
}

// MeshData returns the accumulated mesh
func (m *Mesher) MeshData() *MeshData {
	return &MeshData{
		Vertices:  m.vertices,
		Triangles: m.triangles,
		Outlines:  m.outlines,
		Is2D:      m.opts.Plane == PlaneXY,
	}
}

// Triangulate converts every square of sg to triangles and excludes the
// vertices on the outer hull of the grid from outline extraction.
func (m *Mesher) Triangulate(sg *SquareGrid) {
	for x := 0; x < sg.Width(); x++ {
		for y := 0; y < sg.Height(); y++ {
			m.triangulateSquare(sg.Squares[x][y])
		}
	}
	m.excludeHull(sg)
}

// excludeHull marks every vertex lying on the grid rim as checked. A rim edge
// is open only because the grid ends there, so following it, or stepping on
// and off the rim where a passage reaches it, would chain unrelated contours.
func (m *Mesher) excludeHull(sg *SquareGrid) {
	w, h := sg.Width(), sg.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			s := sg.Squares[x][y]
			if x == 0 {
				m.excludeNodes(&s.TopLeft.Node, &s.BottomLeft.Node, s.CentreLeft)
			}
			if x == w-1 {
				m.excludeNodes(&s.TopRight.Node, &s.BottomRight.Node, s.CentreRight)
			}
			if y == 0 {
				m.excludeNodes(&s.BottomLeft.Node, &s.BottomRight.Node, s.CentreBottom)
			}
			if y == h-1 {
				m.excludeNodes(&s.TopLeft.Node, &s.TopRight.Node, s.CentreTop)
			}
		}
	}
}

func (m *Mesher) excludeNodes(nodes ...*Node) {
	for _, n := range nodes {
		if n.VertexIndex != unassigned {
			m.checked.Put(n.VertexIndex)
		}
	}
}

func (m *Mesher) triangulateSquare(s *Square) {
	switch s.Configuration {
	case 0:

	// 1 point
	case 1:
		m.meshFromPoints(s.CentreLeft, s.CentreBottom, &s.BottomLeft.Node)
	case 2:
		m.meshFromPoints(&s.BottomRight.Node, s.CentreBottom, s.CentreRight)
	case 4:
		m.meshFromPoints(&s.TopRight.Node, s.CentreRight, s.CentreTop)
	case 8:
		m.meshFromPoints(&s.TopLeft.Node, s.CentreTop, s.CentreLeft)

	// 2 points
	case 3:
		m.meshFromPoints(s.CentreRight, &s.BottomRight.Node, &s.BottomLeft.Node, s.CentreLeft)
	case 6:
		m.meshFromPoints(s.CentreTop, &s.TopRight.Node, &s.BottomRight.Node, s.CentreBottom)
	case 9:
		m.meshFromPoints(&s.TopLeft.Node, s.CentreTop, s.CentreBottom, &s.BottomLeft.Node)
	case 12:
		m.meshFromPoints(&s.TopLeft.Node, &s.TopRight.Node, s.CentreRight, s.CentreLeft)
	case 5:
		if m.opts.Saddle == SaddleBridge {
			m.meshFromPoints(s.CentreTop, &s.TopRight.Node, s.CentreRight, s.CentreBottom, &s.BottomLeft.Node, s.CentreLeft)
			break
		}
		m.meshFromPoints(&s.TopRight.Node, s.CentreRight, s.CentreTop)
		m.meshFromPoints(s.CentreLeft, s.CentreBottom, &s.BottomLeft.Node)
	case 10:
		if m.opts.Saddle == SaddleBridge {
			m.meshFromPoints(&s.TopLeft.Node, s.CentreTop, s.CentreRight, &s.BottomRight.Node, s.CentreBottom, s.CentreLeft)
			break
		}
		m.meshFromPoints(&s.TopLeft.Node, s.CentreTop, s.CentreLeft)
		m.meshFromPoints(&s.BottomRight.Node, s.CentreBottom, s.CentreRight)

	// 3 points
	case 7:
		m.meshFromPoints(s.CentreTop, &s.TopRight.Node, &s.BottomRight.Node, &s.BottomLeft.Node, s.CentreLeft)
	case 11:
		m.meshFromPoints(&s.TopLeft.Node, s.CentreTop, s.CentreRight, &s.BottomRight.Node, &s.BottomLeft.Node)
	case 13:
		m.meshFromPoints(&s.TopLeft.Node, &s.TopRight.Node, s.CentreRight, s.CentreBottom, &s.BottomLeft.Node)
	case 14:
		m.meshFromPoints(&s.TopLeft.Node, &s.TopRight.Node, &s.BottomRight.Node, s.CentreBottom, s.CentreLeft)

	// 4 points, a solid cell has no open edge
	case 15:
		m.meshFromPoints(&s.TopLeft.Node, &s.TopRight.Node, &s.BottomRight.Node, &s.BottomLeft.Node)
		m.checked.Put(s.TopLeft.VertexIndex)
		m.checked.Put(s.TopRight.VertexIndex)
		m.checked.Put(s.BottomRight.VertexIndex)
		m.checked.Put(s.BottomLeft.VertexIndex)
	}
}

// meshFromPoints assigns vertices and fans a convex polygon from its first point
func (m *Mesher) meshFromPoints(points ...*Node) {
	m.assignVertices(points)
	for i := 2; i < len(points); i++ {
		m.createTriangle(points[0], points[i-1], points[i])
	}
}

func (m *Mesher) assignVertices(points []*Node) {
	for _, p := range points {
		if p.VertexIndex == unassigned {
			p.VertexIndex = len(m.vertices)
			m.vertices = append(m.vertices, p.Position)
		}
	}
}

func (m *Mesher) createTriangle(a, b, c *Node) {
	m.triangles = append(m.triangles, a.VertexIndex, b.VertexIndex, c.VertexIndex)

	t := Triangle{a.VertexIndex, b.VertexIndex, c.VertexIndex}
	for _, v := range t {
		m.adjacency[v] = append(m.adjacency[v], t)
	}
}
