package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"cavegen/pkg/game/level"
	"cavegen/pkg/game/renderer/view"
	"cavegen/pkg/game/state"
)

// renderSnapshot holds geometry projected for one level at one screen size.
// It is rebuilt when the published level, the window or the zoom changes.
type renderSnapshot struct {
	level  *level.Level
	width  int
	height int
	zoom   float64
	// showWalls records the toggle the geometry was built with
	showWalls bool

	floor   []batch
	walls   []batch
	lines   [][]view.Point // closed outlines
	links   [][2]view.Point
	mainPos view.Point
	hasMain bool
}

// batch is one DrawTriangles call
type batch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	zoom float64

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource
	sansFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when zoom changes)
	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	session *state.Session

	// Cached projected geometry
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Messages to display with timestamps for fade-out
	trackedMessages []view.Message
	messagesMutex   sync.RWMutex

	showWalls bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
