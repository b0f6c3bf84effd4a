package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "r", "space", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Ebiten's just-pressed queries and terminal raw mode already deliver one
// event per press, so this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to commands (3rd-layer bindings).
// Multiple codes may point to the same Key.
var bindings = map[string]Key{
	"r":          KeyRegenerate,
	"space":      KeyRegenerate,
	"enter":      KeyRegenerate,
	"mouse_left": KeyRegenerate,

	"s": KeyToggleSaddle,
	"n": KeyToggleRandomSeed,
	"d": KeyDump,
	"p": KeyScreenshot,

	// Quit
	"q":      KeyQuit,
	"escape": KeyQuit,
	"ctrl_c": KeyQuit,
}

// MapToKey is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns the command.
func MapToKey(ev DebouncedInput) Key {
	if k, ok := bindings[ev.Code]; ok {
		return k
	}
	return KeyNone
}

// GetBindingsByKey returns the current bindings grouped by command.
func GetBindingsByKey() map[Key][]string {
	result := make(map[Key][]string)
	for code, k := range bindings {
		result[k] = append(result[k], code)
	}
	// Ensure stable ordering of codes within each command so help text doesn't flicker.
	for k, codes := range result {
		sort.Strings(codes)
		result[k] = codes
	}
	return result
}

// KeyCode pairs a device key with its binding code.
type KeyCode[K comparable] struct {
	Key  K
	Code string
}

// FirstPressed returns the command of the first entry in order that pressed
// reports and that is bound, or KeyNone. Entries are tried in order so a
// frame with several new presses always resolves the same way.
func FirstPressed[K comparable](dev Device, order []KeyCode[K], pressed func(K) bool, now time.Time) Key {
	for _, kc := range order {
		if !pressed(kc.Key) {
			continue
		}
		raw := RawInput{Device: dev, Code: kc.Code, Timestamp: now}
		if k := MapToKey(NewDebouncedInput(raw)); k != KeyNone {
			return k
		}
	}
	return KeyNone
}
