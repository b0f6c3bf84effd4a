package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"cavegen/pkg/game/renderer"
	"cavegen/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  1280,
		windowHeight: 720,
		zoom:         1,
		showWalls:    true,
	}
}

// Init initializes window settings and fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("cavegen " + renderer.Version)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.loadFonts(); err != nil {
		log.Printf("Could not load fonts, text disabled: %v", err)
	}
}

// Run starts the Ebiten game loop for s
func (e *EbitenRenderer) Run(s *state.Session) error {
	e.session = s
	if s.Current() == nil {
		s.RegenerateAsync(nil)
	}
	return ebiten.RunGame(e)
}
