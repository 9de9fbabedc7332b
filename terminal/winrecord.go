// @lixen: #focus{sys[io,input],input[console]}
package terminal

import (
	"encoding/binary"
	"unicode/utf16"
)

// Console input record event types
const (
	keyEventType              = 0x0001
	mouseEventType            = 0x0002
	windowBufferSizeEventType = 0x0004
)

// Mouse event flags (dwEventFlags)
const (
	mouseMoved    = 0x0001
	doubleClick   = 0x0002
	mouseWheeled  = 0x0004
	mouseHWheeled = 0x0008
)

// Mouse button state bits (dwButtonState low word)
const (
	fromLeft1stButtonPressed = 0x0001
	rightmostButtonPressed   = 0x0002
)

// Virtual key codes
const (
	vkBack     = 0x08
	vkTab      = 0x09
	vkReturn   = 0x0D
	vkShift    = 0x10
	vkCapital  = 0x14
	vkEscape   = 0x1B
	vkPrior    = 0x21
	vkNext     = 0x22
	vkEnd      = 0x23
	vkHome     = 0x24
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkSnapshot = 0x2C
	vkInsert   = 0x2D
	vkDelete   = 0x2E
	vkF1       = 0x70
	vkF24      = 0x87
	vkNumLock  = 0x90
)

// virtualKeys maps virtual key codes of named keys; function keys are computed from vkF1
var virtualKeys = map[uint16]KeyCode{
	vkBack:     KeyBackspace,
	vkTab:      KeyTab,
	vkReturn:   KeyEnter,
	vkShift:    KeyShift,
	vkCapital:  KeyCapsLock,
	vkNumLock:  KeyNumLock,
	vkEscape:   KeyEscape,
	vkPrior:    KeyPageUp,
	vkNext:     KeyPageDown,
	vkHome:     KeyHome,
	vkEnd:      KeyEnd,
	vkDelete:   KeyDelete,
	vkInsert:   KeyInsert,
	vkLeft:     KeyLeft,
	vkRight:    KeyRight,
	vkUp:       KeyUp,
	vkDown:     KeyDown,
	vkSnapshot: KeyPrintScreen,
}

// controlKeyStateMask keeps the modifier and lock bits, dropping ENHANCED_KEY
const controlKeyStateMask = 0x00FF

// inputRecordSize is sizeof(INPUT_RECORD)
const inputRecordSize = 20

// inputRecord mirrors INPUT_RECORD: a WORD tag, padding, and a 16-byte union
type inputRecord struct {
	EventType uint16
	_         [2]byte
	Event     [16]byte
}

type keyRecord struct {
	keyDown         bool
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

type mouseRecord struct {
	x, y        int16
	buttonState uint32
	controlKeys uint32
	eventFlags  uint32
}

// key decodes KEY_EVENT_RECORD
func (r *inputRecord) key() keyRecord {
	e := r.Event[:]
	return keyRecord{
		keyDown:         binary.LittleEndian.Uint32(e[0:4]) != 0,
		repeatCount:     binary.LittleEndian.Uint16(e[4:6]),
		virtualKeyCode:  binary.LittleEndian.Uint16(e[6:8]),
		virtualScanCode: binary.LittleEndian.Uint16(e[8:10]),
		unicodeChar:     binary.LittleEndian.Uint16(e[10:12]),
		controlKeyState: binary.LittleEndian.Uint32(e[12:16]),
	}
}

// mouse decodes MOUSE_EVENT_RECORD
func (r *inputRecord) mouse() mouseRecord {
	e := r.Event[:]
	return mouseRecord{
		x:           int16(binary.LittleEndian.Uint16(e[0:2])),
		y:           int16(binary.LittleEndian.Uint16(e[2:4])),
		buttonState: binary.LittleEndian.Uint32(e[4:8]),
		controlKeys: binary.LittleEndian.Uint32(e[8:12]),
		eventFlags:  binary.LittleEndian.Uint32(e[12:16]),
	}
}

// windowSize decodes WINDOW_BUFFER_SIZE_RECORD
func (r *inputRecord) windowSize() (w, h int) {
	e := r.Event[:]
	return int(int16(binary.LittleEndian.Uint16(e[0:2]))), int(int16(binary.LittleEndian.Uint16(e[2:4])))
}

// recordTranslator flattens console input records into events
type recordTranslator struct {
	// Leading UTF-16 surrogate waiting for its pair
	highSurrogate uint16

	// Window origin in buffer coordinates; mouse positions are reported window-relative
	originX, originY int
}

// translate pushes the events of one record into q
// Returns true when the record reports a buffer resize; the caller re-queries the size
func (t *recordTranslator) translate(rec *inputRecord, q *eventQueue) bool {
	switch rec.EventType {
	case keyEventType:
		t.translateKey(rec.key(), q)
	case mouseEventType:
		t.translateMouse(rec.mouse(), q)
	case windowBufferSizeEventType:
		return true
	}
	return false
}

func (t *recordTranslator) translateKey(kr keyRecord, q *eventQueue) {
	state := ControlKeyState(kr.controlKeyState & controlKeyStateMask)
	key, ok := t.keyFor(kr, state)
	if !ok {
		return
	}

	ev := KeyReleased(key, state)
	if kr.keyDown {
		ev = KeyPressed(key, state)
	}
	n := int(kr.repeatCount)
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		q.push(ev)
	}
}

// keyFor maps a key record to a Key
// With ctrl or alt held, letter keys report the ASCII letter, uppercase only with shift
func (t *recordTranslator) keyFor(kr keyRecord, state ControlKeyState) (Key, bool) {
	vk := kr.virtualKeyCode
	if code, ok := virtualKeys[vk]; ok {
		return NamedKey(code), true
	}
	if vk >= vkF1 && vk <= vkF24 {
		return FunctionKey(int(vk-vkF1) + 1), true
	}

	if (state.Ctrl() || state.Alt()) && vk >= 'A' && vk <= 'Z' {
		if state.Shift() {
			return CharKey(rune(vk)), true
		}
		return CharKey(rune(vk + 'a' - 'A')), true
	}

	ch := kr.unicodeChar
	if ch == 0 {
		return Key{}, false
	}
	if utf16.IsSurrogate(rune(ch)) {
		if ch < 0xDC00 {
			t.highSurrogate = ch
			return Key{}, false
		}
		if t.highSurrogate == 0 {
			return Key{}, false
		}
		r := utf16.DecodeRune(rune(t.highSurrogate), rune(ch))
		t.highSurrogate = 0
		return CharKey(r), true
	}
	t.highSurrogate = 0
	return CharKey(rune(ch)), true
}

func (t *recordTranslator) translateMouse(mr mouseRecord, q *eventQueue) {
	state := ControlKeyState(mr.controlKeys & controlKeyStateMask)
	x, y := int(mr.x)-t.originX, int(mr.y)-t.originY
	left := mr.buttonState&fromLeft1stButtonPressed != 0
	right := mr.buttonState&rightmostButtonPressed != 0
	amount := int(int16(mr.buttonState >> 16))

	switch mr.eventFlags {
	case 0:
		q.push(MouseButtonChange(x, y, left, right, state))
	case doubleClick:
		q.push(MouseDoubleClick(x, y, left, right, state))
	case mouseHWheeled:
		q.push(MouseHorizontalWheel(x, y, amount, state))
	case mouseWheeled:
		q.push(MouseWheel(x, y, amount, state))
	case mouseMoved:
		q.push(MouseMove(x, y, state))
	}
}
