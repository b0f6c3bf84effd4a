package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestViewport checks the grid is clipped to the screen.
func TestViewport(t *testing.T) {
	cols, rows := Viewport(80, 24, 64, 36, 4)
	assert.Equal(t, 40, cols)
	assert.Equal(t, 20, rows)

	cols, rows = Viewport(200, 60, 64, 36, 4)
	assert.Equal(t, 64, cols)
	assert.Equal(t, 36, rows)

	cols, rows = Viewport(1, 2, 64, 36, 4)
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, rows)
}
