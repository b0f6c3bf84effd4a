// Package ebiten provides an Ebiten-based mesh viewer for generated caves.
package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWallFill        = color.RGBA{60, 60, 80, 255}    // Wall mesh triangles
	colorWallFace        = color.RGBA{90, 90, 115, 255}   // Extruded wall faces
	colorOutline         = color.RGBA{180, 180, 200, 255} // Outline strokes
	colorPassage         = color.RGBA{255, 200, 100, 255} // Passage centre lines
	colorMainRoom        = color.RGBA{0, 220, 0, 255}     // Main room marker
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Zoom constraints
const (
	minZoom      = 0.5
	maxZoom      = 4.0
	zoomStep     = 0.25
	baseFontSize = 16.0
	mapMargin    = 20
)

// Message fade timing in milliseconds
const (
	messageHold = 4000
	messageFade = 1000
)
