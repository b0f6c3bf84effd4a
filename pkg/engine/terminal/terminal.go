package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Viewport returns how many grid columns and rows fit in a screen of the
// given size, leaving reserved rows free for status lines. Each grid column
// is drawn two characters wide.
func Viewport(screenW, screenH, gridW, gridH, reserved int) (cols, rows int) {
	cols = min(gridW, screenW/2)
	rows = min(gridH, screenH-reserved)
	return max(cols, 0), max(rows, 0)
}
