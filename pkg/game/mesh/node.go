package mesh

// Vec3 is a position in mesh space
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Vec2 is a point on a 2D outline
type Vec2 struct {
	X, Y float64
}

// Plane selects which axes the grid is laid out on.
type Plane int

const (
	// PlaneXZ lays the floor on X/Z with Y up, for 3D meshes with walls.
	PlaneXZ Plane = iota
	// PlaneXY lays the map on X/Y with Z = 0, for 2D meshes.
	PlaneXY
)

// forward is the direction of increasing grid y on the plane
func (p Plane) forward() Vec3 {
	if p == PlaneXY {
		return Vec3{Y: 1}
	}
	return Vec3{Z: 1}
}

// Up is the direction walls are extruded against
func (p Plane) Up() Vec3 {
	if p == PlaneXY {
		return Vec3{Z: -1}
	}
	return Vec3{Y: 1}
}

// Project returns the in-plane coordinates of v: X and the forward axis
func (p Plane) Project(v Vec3) Vec2 {
	if p == PlaneXY {
		return Vec2{X: v.X, Y: v.Y}
	}
	return Vec2{X: v.X, Y: v.Z}
}

// unassigned marks a node that has no vertex yet
const unassigned = -1

// Node is a mesh position with a lazily assigned vertex index.
type Node struct {
	Position    Vec3
	VertexIndex int
}

func newNode(pos Vec3) *Node {
	return &Node{Position: pos, VertexIndex: unassigned}
}

// ControlNode is a node at a tile centre. It owns the midpoint nodes above it
// and to its right, which neighbouring squares share by reference.
type ControlNode struct {
	Node
	Active bool
	Above  *Node
	Right  *Node
}

func newControlNode(pos Vec3, active bool, squareSize float64, plane Plane) *ControlNode {
	return &ControlNode{
		Node:   Node{Position: pos, VertexIndex: unassigned},
		Active: active,
		Above:  newNode(pos.Add(plane.forward().Scale(squareSize / 2))),
		Right:  newNode(pos.Add(Vec3{X: squareSize / 2})),
	}
}
