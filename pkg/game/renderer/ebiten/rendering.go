package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/game/renderer"
	"cavegen/pkg/game/renderer/view"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw renders the cave to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, mapMargin/2, mapMargin/2,
		float32(screenWidth-mapMargin), float32(screenHeight-mapMargin),
		colorMapBackground, false)

	snap := e.currentSnapshot(screenWidth, screenHeight)
	if snap.level != nil {
		e.drawBatches(screen, snap.floor)
		e.drawBatches(screen, snap.walls)
		e.drawOutlines(screen, snap)
		e.drawPassages(screen, snap)
	}

	if e.sansFontSource == nil {
		return
	}
	e.drawStatusBar(screen, snap)
	e.drawMessages(screen, screenHeight)
}

// drawBatches fills every triangle batch with its vertex colours
func (e *EbitenRenderer) drawBatches(screen *ebiten.Image, batches []batch) {
	op := &ebiten.DrawTrianglesOptions{}
	for _, b := range batches {
		screen.DrawTriangles(b.vertices, b.indices, whiteSubImage, op)
	}
}

// drawOutlines strokes each closed outline
func (e *EbitenRenderer) drawOutlines(screen *ebiten.Image, snap renderSnapshot) {
	width := float32(max(1, snap.zoom))
	for _, line := range snap.lines {
		for i := 0; i < len(line)-1; i++ {
			a, b := line[i], line[i+1]
			vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, width, colorOutline, true)
		}
	}
}

// drawPassages draws passage centre lines and the main room marker
func (e *EbitenRenderer) drawPassages(screen *ebiten.Image, snap renderSnapshot) {
	for _, l := range snap.links {
		vector.StrokeLine(screen, l[0].X, l[0].Y, l[1].X, l[1].Y, 1, colorPassage, true)
	}
	if snap.hasMain {
		vector.DrawFilledCircle(screen, snap.mainPos.X, snap.mainPos.Y, 4, colorMainRoom, true)
	}
}

// drawStatusBar draws the seed and mesh stats panel in the top left corner
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, snap renderSnapshot) {
	face := e.getMonoFontFace()
	lineHeight := int(face.Size) + 6
	x, y := mapMargin+10, mapMargin

	lines := []string{"cavegen " + renderer.Version}
	if lvl := snap.level; lvl != nil {
		lines = append(lines,
			fmt.Sprintf(gotext.Get("STATS_GRID"), lvl.Seed, lvl.Grid.Width(), lvl.Grid.Height(), lvl.Rooms.Len(), len(lvl.Passages)),
			fmt.Sprintf(gotext.Get("STATS_MESH"), len(lvl.Mesh.Vertices), lvl.Mesh.TriangleCount(), len(lvl.Mesh.Outlines), lvl.Config.Saddle),
		)
	} else {
		lines = append(lines, "DENIED{"+gotext.Get("NO_LEVEL")+"}")
	}
	lines = append(lines, gotext.Get("EBITEN_ACTIONS"))

	panelWidth := 0.0
	for _, l := range lines {
		w, _ := text.Measure(plainText(parseMarkup(l)), face, 0)
		panelWidth = max(panelWidth, w)
	}
	vector.DrawFilledRect(screen, float32(x-6), float32(y-4), float32(panelWidth+12), float32(lineHeight*len(lines)+8), colorPanelBackground, false)

	for i, l := range lines {
		e.drawColoredTextSegments(screen, parseMarkup(l), x, y+i*lineHeight, face, 1)
	}

	if e.session.Busy() {
		now := time.Now().UnixMilli()
		alpha := pulse(now, 1000, 0.4, 1)
		segs := []textSegment{{text: gotext.Get("GENERATING"), color: colorAction}}
		e.drawColoredTextSegments(screen, segs, x, y+len(lines)*lineHeight+8, face, alpha)
	}
}

// drawMessages draws the session log bottom-aligned, fading old entries
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, screenHeight int) {
	now := time.Now().UnixMilli()
	entries := e.syncMessages(now)

	face := e.getSansFontFace()
	lineHeight := int(face.Size) + 6
	y := screenHeight - mapMargin - lineHeight*len(entries)
	for i, m := range entries {
		alpha := view.FadeAlpha(m.Timestamp, now, messageHold, messageFade)
		if alpha <= 0 {
			continue
		}
		e.drawColoredTextSegments(screen, parseMarkup(m.Text), mapMargin+10, y+i*lineHeight, face, alpha)
	}
}

// syncMessages tracks the session log, stamping messages the first time
// they are seen
func (e *EbitenRenderer) syncMessages(now int64) []view.Message {
	msgs := e.session.Messages()

	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()
	e.trackedMessages = view.TrackMessages(e.trackedMessages, msgs, now)
	out := make([]view.Message, len(e.trackedMessages))
	copy(out, e.trackedMessages)
	return out
}
