package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/game/renderer"
)

// keyCodes maps Ebiten keys to binding codes, in the order presses are
// resolved when several land in one frame
var keyCodes = []input.KeyCode[ebiten.Key]{
	{Key: ebiten.KeyR, Code: "r"},
	{Key: ebiten.KeySpace, Code: "space"},
	{Key: ebiten.KeyEnter, Code: "enter"},
	{Key: ebiten.KeyS, Code: "s"},
	{Key: ebiten.KeyN, Code: "n"},
	{Key: ebiten.KeyD, Code: "d"},
	{Key: ebiten.KeyP, Code: "p"},
	{Key: ebiten.KeyQ, Code: "q"},
	{Key: ebiten.KeyEscape, Code: "escape"},
}

// checkInput returns the command for this frame's first new press
func checkInput() input.Key {
	now := time.Now()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		raw := input.RawInput{Device: input.DeviceMouse, Code: "mouse_left", Timestamp: now}
		return input.MapToKey(input.NewDebouncedInput(raw))
	}
	return input.FirstPressed(input.DeviceKeyboard, keyCodes, inpututil.IsKeyJustPressed, now)
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		e.showWalls = !e.showWalls
	}

	switch renderer.Apply(e.session, checkInput()) {
	case renderer.ActionQuit:
		return ebiten.Termination
	case renderer.ActionRegenerate:
		// Dropped while a pass is already running.
		e.session.RegenerateAsync(nil)
	}
	return nil
}

// handleZoom handles =/- for zoom and 0 to reset
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.zoom = min(e.zoom+zoomStep, maxZoom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.zoom = max(e.zoom-zoomStep, minZoom)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.zoom = 1
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}
