package ebiten

import (
	"image/color"
	"math"
)

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(alpha, 1))

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	r8 := float64(r >> 8)
	g8 := float64(g >> 8)
	b8 := float64(b >> 8)
	a8 := float64(a >> 8)

	// Premultiplied, so scale every channel
	return color.RGBA{uint8(r8 * alpha), uint8(g8 * alpha), uint8(b8 * alpha), uint8(a8 * alpha)}
}

// pulse returns a value between lo and hi following a sine wave with the
// given period in milliseconds
func pulse(now int64, period, lo, hi float64) float64 {
	phase := float64(now%int64(period)) / period
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}
