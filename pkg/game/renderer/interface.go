package renderer

import (
	"cavegen/pkg/game/state"
)

// Version is shown in window titles and status lines
const Version = "0.3.0"

// Renderer defines the interface for cave viewer backends
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Run drives the viewer for s until the user quits
	Run(s *state.Session) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the current renderer
func Run(s *state.Session) error {
	if Current != nil {
		return Current.Run(s)
	}
	return nil
}
