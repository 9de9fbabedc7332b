package terminal

import "strings"

// ControlKeyState is a snapshot of modifier and lock keys attached to key and mouse events
// Bit values match the Windows dwControlKeyState layout
type ControlKeyState uint16

const (
	ModRightAlt   ControlKeyState = 0x0001
	ModLeftAlt    ControlKeyState = 0x0002
	ModRightCtrl  ControlKeyState = 0x0004
	ModLeftCtrl   ControlKeyState = 0x0008
	ModShift      ControlKeyState = 0x0010
	ModNumLock    ControlKeyState = 0x0020
	ModScrollLock ControlKeyState = 0x0040
	ModCapsLock   ControlKeyState = 0x0080

	ModNone ControlKeyState = 0
)

// modifierMask covers the held modifiers, excluding lock toggles
const modifierMask = ModRightAlt | ModLeftAlt | ModRightCtrl | ModLeftCtrl | ModShift

// Has reports whether all bits of m are set
func (s ControlKeyState) Has(m ControlKeyState) bool {
	return s&m == m
}

// Alt reports whether either alt key is held
func (s ControlKeyState) Alt() bool {
	return s&(ModLeftAlt|ModRightAlt) != 0
}

// Ctrl reports whether either control key is held
func (s ControlKeyState) Ctrl() bool {
	return s&(ModLeftCtrl|ModRightCtrl) != 0
}

// Shift reports whether shift is held
func (s ControlKeyState) Shift() bool {
	return s&ModShift != 0
}

// Modifiers drops the lock toggles, leaving held modifier keys
func (s ControlKeyState) Modifiers() ControlKeyState {
	return s & modifierMask
}

var modifierNames = []struct {
	bit  ControlKeyState
	name string
}{
	{ModLeftCtrl, "lctrl"},
	{ModRightCtrl, "rctrl"},
	{ModLeftAlt, "lalt"},
	{ModRightAlt, "ralt"},
	{ModShift, "shift"},
	{ModCapsLock, "capslock"},
	{ModNumLock, "numlock"},
	{ModScrollLock, "scrolllock"},
}

func (s ControlKeyState) String() string {
	if s == ModNone {
		return "none"
	}
	var parts []string
	for _, m := range modifierNames {
		if s&m.bit != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "+")
}
