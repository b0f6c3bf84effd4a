// Package view maps mesh geometry onto screen pixels for the graphical
// renderer. It has no graphics dependencies so it can be tested headless.
package view

import (
	"math"

	"cavegen/pkg/game/mesh"
)

// MaxBatchVertices is the most vertices one 16-bit indexed draw call can address
const MaxBatchVertices = math.MaxUint16 + 1

// Point is a screen position in pixels
type Point struct {
	X, Y float32
}

// Bounds is an axis aligned box on the mesh plane
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// BoundsOf returns the box around pts. An empty slice gives a zero box.
func BoundsOf(pts []mesh.Vec2) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxX = max(b.MaxX, p.X)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// Transform maps plane coordinates to pixels. Plane y grows up the screen.
type Transform struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

// Fit centres b in a screenW x screenH area inset by margin on every side,
// scaled uniformly and then multiplied by zoom.
func Fit(b Bounds, screenW, screenH int, margin, zoom float64) Transform {
	availW := float64(screenW) - margin*2
	availH := float64(screenH) - margin*2
	scale := 1.0
	if b.Width() > 0 && b.Height() > 0 && availW > 0 && availH > 0 {
		scale = min(availW/b.Width(), availH/b.Height())
	}
	scale *= zoom

	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	return Transform{
		Scale:   scale,
		OriginX: float64(screenW)/2 - cx*scale,
		OriginY: float64(screenH)/2 + cy*scale,
	}
}

// Apply returns the pixel position of p
func (t Transform) Apply(p mesh.Vec2) Point {
	return Point{
		X: float32(t.OriginX + p.X*t.Scale),
		Y: float32(t.OriginY - p.Y*t.Scale),
	}
}

// ProjectAll projects every mesh vertex onto plane
func ProjectAll(vertices []mesh.Vec3, plane mesh.Plane) []mesh.Vec2 {
	out := make([]mesh.Vec2, len(vertices))
	for i, v := range vertices {
		out[i] = plane.Project(v)
	}
	return out
}

// Batch is a run of triangles re-indexed so each index fits in 16 bits.
// Sources maps a batch vertex back to its index in the full mesh.
type Batch struct {
	Sources []int
	Indices []uint16
}

// SplitTriangles cuts a flat triangle index list into batches holding at
// most limit distinct vertices each. Triangles are never split.
func SplitTriangles(triangles []int, limit int) []Batch {
	if limit < 3 {
		limit = 3
	}
	limit = min(limit, MaxBatchVertices)

	var batches []Batch
	cur := Batch{}
	local := make(map[int]uint16)

	flush := func() {
		if len(cur.Indices) > 0 {
			batches = append(batches, cur)
		}
		cur = Batch{}
		local = make(map[int]uint16)
	}

	for i := 0; i+2 < len(triangles); i += 3 {
		tri := triangles[i : i+3]
		fresh := 0
		for j, v := range tri {
			if _, ok := local[v]; ok {
				continue
			}
			if j > 0 && (v == tri[0] || (j == 2 && v == tri[1])) {
				continue
			}
			fresh++
		}
		if len(cur.Sources)+fresh > limit {
			flush()
		}
		for _, v := range tri {
			idx, ok := local[v]
			if !ok {
				idx = uint16(len(cur.Sources))
				local[v] = idx
				cur.Sources = append(cur.Sources, v)
			}
			cur.Indices = append(cur.Indices, idx)
		}
	}
	flush()
	return batches
}
