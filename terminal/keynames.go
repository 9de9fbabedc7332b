package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// keyToName maps key codes to canonical config string names
var keyToName = map[KeyCode]string{
	KeyBackspace:   "backspace",
	KeyTab:         "tab",
	KeyEnter:       "enter",
	KeyShift:       "shift",
	KeyCapsLock:    "caps_lock",
	KeyNumLock:     "num_lock",
	KeyEscape:      "escape",
	KeyPageUp:      "page_up",
	KeyPageDown:    "page_down",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyDelete:      "delete",
	KeyInsert:      "insert",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyPrintScreen: "print_screen",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]KeyCode

func init() {
	for n := 1; n <= MaxFunctionKey; n++ {
		keyToName[FunctionKey(n).Code] = fmt.Sprintf("f%d", n)
	}
	nameToKey = make(map[string]KeyCode, len(keyToName)+4)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
}

// KeyName returns the canonical string name for a key
// Characters name themselves; "space" is used for ' '
func KeyName(k Key) string {
	if k.Code == KeyChar {
		if k.Char == ' ' {
			return "space"
		}
		return string(k.Char)
	}
	return keyToName[k.Code]
}

// KeyByName resolves a canonical name or a single character to a Key
// Returns the zero Key and false if name is unknown
func KeyByName(name string) (Key, bool) {
	if name == "space" {
		return CharKey(' '), true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return CharKey(r), true
	}
	if code, ok := nameToKey[strings.ToLower(name)]; ok {
		return NamedKey(code), true
	}
	return Key{}, false
}

// Binding is a key plus the modifiers that must be held
type Binding struct {
	Key  Key
	Mods ControlKeyState // Normalized to ModLeftCtrl/ModLeftAlt/ModShift
}

// ParseBinding parses "ctrl+q", "alt+x", "shift+tab" or a bare key name
func ParseBinding(s string) (Binding, error) {
	var b Binding
	parts := strings.Split(s, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == len(parts)-1 {
			k, ok := KeyByName(p)
			if !ok {
				return Binding{}, fmt.Errorf("unknown key %q in binding %q", p, s)
			}
			b.Key = k
			break
		}
		switch strings.ToLower(p) {
		case "ctrl", "control":
			b.Mods |= ModLeftCtrl
		case "alt", "meta":
			b.Mods |= ModLeftAlt
		case "shift":
			b.Mods |= ModShift
		default:
			return Binding{}, fmt.Errorf("unknown modifier %q in binding %q", p, s)
		}
	}
	return b, nil
}

// Matches reports whether a key-press event triggers the binding
// Left and right variants of ctrl and alt are treated alike
func (b Binding) Matches(ev Event) bool {
	if ev.Type != EventKeyPressed || ev.Key != b.Key {
		return false
	}
	mods := normalizeMods(ev.State)
	if b.Key.Code == KeyChar {
		// Shift is already folded into the character
		mods &^= ModShift
		return mods == b.Mods&^ModShift
	}
	return mods == b.Mods
}

func (b Binding) String() string {
	var sb strings.Builder
	if b.Mods.Ctrl() {
		sb.WriteString("ctrl+")
	}
	if b.Mods.Alt() {
		sb.WriteString("alt+")
	}
	if b.Mods.Shift() {
		sb.WriteString("shift+")
	}
	sb.WriteString(KeyName(b.Key))
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler
func (b Binding) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Binding) UnmarshalText(text []byte) error {
	parsed, err := ParseBinding(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func normalizeMods(s ControlKeyState) ControlKeyState {
	var m ControlKeyState
	if s.Ctrl() {
		m |= ModLeftCtrl
	}
	if s.Alt() {
		m |= ModLeftAlt
	}
	if s.Shift() {
		m |= ModShift
	}
	return m
}
