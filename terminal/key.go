// @lixen: #focus{sys[io],input[keys]}
package terminal

import "fmt"

// KeyCode identifies a key independent of the platform encoding
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyChar         // Printable character (check Key.Char)

	KeyBackspace
	KeyTab
	KeyEnter
	KeyShift
	KeyCapsLock
	KeyNumLock
	KeyEscape
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyInsert
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPrintScreen

	// Function keys, contiguous so FunctionKey can index them
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// MaxFunctionKey is the highest function key number reported
const MaxFunctionKey = 24

// Key is an immutable key value: a printable character or a named key
type Key struct {
	Code KeyCode
	Char rune // Valid when Code == KeyChar
}

// CharKey returns the key producing r
func CharKey(r rune) Key {
	return Key{Code: KeyChar, Char: r}
}

// NamedKey returns the key for a non-character code
func NamedKey(code KeyCode) Key {
	return Key{Code: code}
}

// FunctionKey returns F1..F24; n outside that range yields the zero Key
func FunctionKey(n int) Key {
	if n < 1 || n > MaxFunctionKey {
		return Key{}
	}
	return Key{Code: KeyF1 + KeyCode(n-1)}
}

// Function returns the function key number, or 0 if k is not a function key
func (k Key) Function() int {
	if k.Code < KeyF1 || k.Code > KeyF24 {
		return 0
	}
	return int(k.Code-KeyF1) + 1
}

// IsChar reports whether k is the character r
func (k Key) IsChar(r rune) bool {
	return k.Code == KeyChar && k.Char == r
}

func (k Key) String() string {
	if k.Code == KeyChar {
		return fmt.Sprintf("Char(%q)", k.Char)
	}
	if name, ok := keyToName[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k.Code))
}
