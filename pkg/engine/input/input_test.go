package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDecode checks the key bindings.
func TestDecode(t *testing.T) {
	tests := []struct {
		in   byte
		want Key
	}{
		{'r', KeyRegenerate},
		{' ', KeyRegenerate},
		{'\r', KeyRegenerate},
		{'S', KeyToggleSaddle},
		{'n', KeyToggleRandomSeed},
		{'d', KeyDump},
		{'p', KeyScreenshot},
		{'q', KeyQuit},
		{3, KeyQuit},
		{'x', KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.in), "byte %q", tt.in)
	}
	assert.Equal(t, "quit", KeyQuit.String())
}

// TestGetBindingsByKey checks codes are grouped per command and sorted.
func TestGetBindingsByKey(t *testing.T) {
	got := GetBindingsByKey()
	assert.Equal(t, []string{"enter", "mouse_left", "r", "space"}, got[KeyRegenerate])
	assert.Equal(t, []string{"ctrl_c", "escape", "q"}, got[KeyQuit])
	assert.Equal(t, []string{"s"}, got[KeyToggleSaddle])
	assert.NotContains(t, got, KeyNone)
}

// TestFirstPressed checks that simultaneous presses resolve by list order.
func TestFirstPressed(t *testing.T) {
	order := []KeyCode[int]{
		{Key: 1, Code: "x"},
		{Key: 2, Code: "q"},
		{Key: 3, Code: "r"},
	}
	down := map[int]bool{}
	pressed := func(k int) bool { return down[k] }
	now := time.Now()

	assert.Equal(t, KeyNone, FirstPressed(DeviceKeyboard, order, pressed, now))

	down[3] = true
	assert.Equal(t, KeyRegenerate, FirstPressed(DeviceKeyboard, order, pressed, now))

	// "x" is unbound, so the next pressed entry wins.
	down[1], down[2] = true, true
	for i := 0; i < 20; i++ {
		assert.Equal(t, KeyQuit, FirstPressed(DeviceKeyboard, order, pressed, now))
	}
}
