package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = mono
	e.sansFontSource = sans
	return nil
}

// getUIFontSize returns the font size for UI text
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * min(e.windowScale(), 1.5)
	if size < 10 {
		size = 10
	}
	return size
}

// windowScale relates the window height to the default 720 pixel window
func (e *EbitenRenderer) windowScale() float64 {
	if e.windowHeight <= 0 {
		return 1
	}
	return float64(e.windowHeight) / 720
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
		e.cachedMonoFace = nil
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a monospace font face with UI font size (for stats)
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.getSansFontFace()
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   e.cachedUIFontSize,
		}
	}
	return e.cachedMonoFace
}

// invalidateFontCache clears cached font faces (call when the window size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedMonoFace = nil
}
