// Package input reads single key presses from a raw mode terminal.
package input

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Key is a viewer command decoded from a key press
type Key int

// Viewer commands
const (
	KeyNone Key = iota
	KeyRegenerate
	KeyToggleSaddle
	KeyToggleRandomSeed
	KeyDump
	KeyScreenshot
	KeyQuit
)

// String returns the command name
func (k Key) String() string {
	switch k {
	case KeyRegenerate:
		return "regenerate"
	case KeyToggleSaddle:
		return "toggle_saddle"
	case KeyToggleRandomSeed:
		return "toggle_random_seed"
	case KeyDump:
		return "dump"
	case KeyScreenshot:
		return "screenshot"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// ErrNotTerminal is returned when stdin cannot be put into raw mode.
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// byteCode returns the binding code for a raw terminal byte
func byteCode(b byte) string {
	switch b {
	case ' ':
		return "space"
	case '\r', '\n':
		return "enter"
	case 0x1b:
		return "escape"
	case 3:
		return "ctrl_c"
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return string(rune(b))
}

// Decode maps a raw terminal byte to a command
func Decode(b byte) Key {
	raw := RawInput{
		Device: DeviceTerminal,
		Code:   byteCode(b),
		// Timestamp left zero; terminal input is inherently low frequency.
	}
	return MapToKey(NewDebouncedInput(raw))
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// ReadKey blocks until a recognised key is pressed. The terminal is
// restored before returning.
func ReadKey() (Key, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return KeyNone, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return KeyNone, err
	}
	defer term.Restore(fd, oldState)

	for {
		b, err := readByte()
		if err != nil {
			return KeyNone, err
		}
		if k := Decode(b); k != KeyNone {
			return k, nil
		}
	}
}
