// @focus: #sys { io } #input { keys }
package terminal

// tildeKeys maps the numeric parameter of CSI n ~ sequences
// Covers xterm, screen, linux and rxvt numbering
var tildeKeys = map[int]KeyCode{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome, // rxvt
	8:  KeyEnd,  // rxvt
	11: KeyF1,   // rxvt F1-F5
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
	25: KeyF13,
	26: KeyF14,
	28: KeyF15,
	29: KeyF16,
	31: KeyF17,
	32: KeyF18,
	33: KeyF19,
	34: KeyF20,
}

// letterKeys maps the final byte of CSI and SS3 key sequences
var letterKeys = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// rxvtShiftArrows maps CSI a-d (shift) and SS3 a-d (ctrl) arrow variants
var rxvtShiftArrows = map[byte]KeyCode{
	'a': KeyUp,
	'b': KeyDown,
	'c': KeyRight,
	'd': KeyLeft,
}

// linuxFunctionKeys maps the linux console ESC [ [ A..E sequences
var linuxFunctionKeys = map[byte]KeyCode{
	'A': KeyF1,
	'B': KeyF2,
	'C': KeyF3,
	'D': KeyF4,
	'E': KeyF5,
}

// keypadKeys maps SS3 sequences sent by the keypad in application mode
var keypadKeys = map[byte]Key{
	'M': NamedKey(KeyEnter),
	'X': CharKey('='),
	'j': CharKey('*'),
	'k': CharKey('+'),
	'l': CharKey(','),
	'm': CharKey('-'),
	'n': CharKey('.'),
	'o': CharKey('/'),
	'p': CharKey('0'),
	'q': CharKey('1'),
	'r': CharKey('2'),
	's': CharKey('3'),
	't': CharKey('4'),
	'u': CharKey('5'),
	'v': CharKey('6'),
	'w': CharKey('7'),
	'x': CharKey('8'),
	'y': CharKey('9'),
}

// xtermModifiers decodes the xterm modifier parameter (1 + bitmask)
func xtermModifiers(p int) ControlKeyState {
	if p < 2 {
		return ModNone
	}
	bits := p - 1
	var s ControlKeyState
	if bits&1 != 0 {
		s |= ModShift
	}
	if bits&2 != 0 {
		s |= ModLeftAlt
	}
	if bits&4 != 0 {
		s |= ModLeftCtrl
	}
	if bits&8 != 0 { // meta
		s |= ModLeftAlt
	}
	return s
}

// controlKey maps a C0 byte to its key
// Ctrl+letter reports the lowercase letter with ModLeftCtrl
func controlKey(b byte) (Key, ControlKeyState) {
	switch b {
	case 0x00:
		return CharKey(' '), ModLeftCtrl
	case 0x08:
		return NamedKey(KeyBackspace), ModNone
	case 0x09:
		return NamedKey(KeyTab), ModNone
	case 0x0a, 0x0d:
		return NamedKey(KeyEnter), ModNone
	case 0x1b:
		return NamedKey(KeyEscape), ModNone
	case 0x1c:
		return CharKey('\\'), ModLeftCtrl
	case 0x1d:
		return CharKey(']'), ModLeftCtrl
	case 0x1e:
		return CharKey('^'), ModLeftCtrl
	case 0x1f:
		return CharKey('_'), ModLeftCtrl
	case 0x7f:
		return NamedKey(KeyBackspace), ModNone
	}
	if b >= 0x01 && b <= 0x1a {
		return CharKey(rune('a' + b - 1)), ModLeftCtrl
	}
	return Key{}, ModNone
}
