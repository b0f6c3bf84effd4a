package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"cavegen/pkg/game/level"
	"cavegen/pkg/game/mesh"
	"cavegen/pkg/game/renderer/view"
)

// buildSnapshot projects lvl into a screenW x screenH window
func buildSnapshot(lvl *level.Level, screenW, screenH int, zoom float64, showWalls bool) renderSnapshot {
	snap := renderSnapshot{level: lvl, width: screenW, height: screenH, zoom: zoom, showWalls: showWalls}
	if lvl == nil {
		return snap
	}

	plane := lvl.Config.Plane()
	pts := view.ProjectAll(lvl.Mesh.Vertices, plane)
	tr := view.Fit(boundsOfGrid(lvl), screenW, screenH, mapMargin, zoom)

	screenPts := make([]view.Point, len(pts))
	for i, p := range pts {
		screenPts[i] = tr.Apply(p)
	}

	snap.floor = toBatches(lvl.Mesh.Triangles, screenPts, colorWallFill)

	if showWalls && lvl.Walls != nil {
		// Walls seen from above collapse onto the outlines; offset the bottom
		// ring along screen y so the faces read as depth.
		wallPts := make([]view.Point, len(lvl.Walls.Vertices))
		for i, v := range lvl.Walls.Vertices {
			p := tr.Apply(plane.Project(v))
			p.Y -= float32(v.Y*tr.Scale) * 0.25
			wallPts[i] = p
		}
		snap.walls = toBatches(lvl.Walls.Triangles, wallPts, colorWallFace)
	}

	for _, outline := range lvl.Mesh.Outlines {
		line := make([]view.Point, len(outline))
		for i, v := range outline {
			line[i] = screenPts[v]
		}
		snap.lines = append(snap.lines, line)
	}

	// Grid tiles sit at the centres of squares in the bordered grid.
	tile := func(c mesh.Vec2) view.Point { return tr.Apply(c) }
	for _, p := range lvl.Passages {
		snap.links = append(snap.links, [2]view.Point{
			tile(tileCentre(lvl, p.From.X, p.From.Y)),
			tile(tileCentre(lvl, p.To.X, p.To.Y)),
		})
	}
	if i := lvl.Rooms.Main(); i >= 0 && len(lvl.Rooms.Rooms[i].Tiles) > 0 {
		c := lvl.Rooms.Rooms[i].Tiles[0]
		snap.mainPos = tile(tileCentre(lvl, c.X, c.Y))
		snap.hasMain = true
	}
	return snap
}

// tileCentre returns the plane position of a carved grid tile, matching the
// control node layout of the mesher
func tileCentre(lvl *level.Level, x, y int) mesh.Vec2 {
	s := lvl.Config.SquareSize
	b := lvl.Config.BorderSize
	w := float64(lvl.Bordered.Width())
	h := float64(lvl.Bordered.Height())
	return mesh.Vec2{
		X: -w*s/2 + float64(x+b)*s + s/2,
		Y: -h*s/2 + float64(y+b)*s + s/2,
	}
}

// boundsOfGrid returns the plane box covered by the bordered grid
func boundsOfGrid(lvl *level.Level) view.Bounds {
	s := lvl.Config.SquareSize
	w := float64(lvl.Bordered.Width()) * s
	h := float64(lvl.Bordered.Height()) * s
	return view.Bounds{MinX: -w / 2, MinY: -h / 2, MaxX: w / 2, MaxY: h / 2}
}

// toBatches converts triangles over pts into filled, single colour batches
func toBatches(triangles []int, pts []view.Point, clr color.RGBA) []batch {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	var out []batch
	for _, vb := range view.SplitTriangles(triangles, view.MaxBatchVertices) {
		verts := make([]ebiten.Vertex, len(vb.Sources))
		for i, src := range vb.Sources {
			p := pts[src]
			verts[i] = ebiten.Vertex{
				DstX: p.X, DstY: p.Y,
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			}
		}
		out = append(out, batch{vertices: verts, indices: vb.Indices})
	}
	return out
}

// currentSnapshot returns the cached snapshot, rebuilding it when the
// published level or the view has changed
func (e *EbitenRenderer) currentSnapshot(screenW, screenH int) renderSnapshot {
	lvl := e.session.Current()

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if snap.level == lvl && snap.width == screenW && snap.height == screenH && snap.zoom == e.zoom && snap.showWalls == e.showWalls {
		return snap
	}

	snap = buildSnapshot(lvl, screenW, screenH, e.zoom, e.showWalls)
	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
	return snap
}
