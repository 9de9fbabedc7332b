// @lixen: #focus{sys[io,input],input[decode]}
package terminal

import (
	"time"
	"unicode/utf8"
)

// DefaultEscapeTimeout is how long a lone ESC waits for the rest of a sequence
const DefaultEscapeTimeout = 50 * time.Millisecond

// maxSequenceLen bounds the bytes scanned for a sequence terminator before it is discarded
const maxSequenceLen = 32

// inputDecoder converts the raw byte stream of a terminal into events
// Incomplete trailing sequences stay buffered until more bytes arrive or flush is called
type inputDecoder struct {
	buf   []byte
	mouse mouseTracker
}

func newInputDecoder(now func() time.Time) *inputDecoder {
	if now == nil {
		now = time.Now
	}
	return &inputDecoder{
		buf:   make([]byte, 0, 256),
		mouse: mouseTracker{now: now},
	}
}

// feed appends data and emits every complete event
func (d *inputDecoder) feed(data []byte, emit func(Event)) {
	d.buf = append(d.buf, data...)
	d.drain(false, emit)
}

// flush resolves buffered bytes once the escape timeout has passed
func (d *inputDecoder) flush(emit func(Event)) {
	d.drain(true, emit)
}

// pending reports whether a partial sequence is buffered
func (d *inputDecoder) pending() bool {
	return len(d.buf) > 0
}

func (d *inputDecoder) drain(final bool, emit func(Event)) {
	consumed := d.parse(d.buf, final, emit)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	if consumed > 0 {
		copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:len(d.buf)-consumed]
	}
}

// parse decodes data and returns bytes consumed, stopping at an incomplete sequence unless final
func (d *inputDecoder) parse(data []byte, final bool, emit func(Event)) int {
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x1b:
			n := d.parseEscape(data[i:], emit)
			if n == 0 {
				if !final {
					return i
				}
				// Timed out: ESC [ and ESC O alone are Alt chords, anything else starts with a plain Escape
				if len(data)-i == 2 && (data[i+1] == '[' || data[i+1] == 'O') {
					emit(charEvent(rune(data[i+1]), ModLeftAlt))
					n = 2
				} else {
					emit(KeyPressed(NamedKey(KeyEscape), ModNone))
					n = 1
				}
			}
			i += n

		case b < 0x20 || b == 0x7f:
			k, mods := controlKey(b)
			emit(KeyPressed(k, mods))
			i++

		case b < 0x80:
			emit(charEvent(rune(b), ModNone))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				if !final {
					return i
				}
				i++ // Truncated UTF-8 after timeout, drop the byte
				continue
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError || size > 1 {
				emit(charEvent(r, ModNone))
			}
			i += size
		}
	}
	return i
}

// charEvent reports a character key; ASCII capitals carry ModShift like native console records
func charEvent(r rune, mods ControlKeyState) Event {
	if r >= 'A' && r <= 'Z' {
		mods |= ModShift
	}
	return KeyPressed(CharKey(r), mods)
}

// parseEscape decodes a sequence starting with ESC, returns 0 when incomplete
func (d *inputDecoder) parseEscape(data []byte, emit func(Event)) int {
	if len(data) < 2 {
		return 0
	}

	c := data[1]
	switch {
	case c == '[':
		return d.parseCSI(data, emit)
	case c == 'O':
		return d.parseSS3(data, emit)
	case c == 0x1b:
		emit(KeyPressed(NamedKey(KeyEscape), ModLeftAlt))
		return 2
	case c < 0x20 || c == 0x7f:
		k, mods := controlKey(c)
		emit(KeyPressed(k, mods|ModLeftAlt))
		return 2
	case c < 0x80:
		emit(charEvent(rune(c), ModLeftAlt))
		return 2
	}

	if !utf8.FullRune(data[1:]) {
		return 0
	}
	r, size := utf8.DecodeRune(data[1:])
	emit(charEvent(r, ModLeftAlt))
	return 1 + size
}

// parseCSI decodes ESC [ sequences: keys, urxvt and X10 mouse, SGR mouse via parseSGRMouse
// Unknown but well-formed sequences are consumed silently
func (d *inputDecoder) parseCSI(data []byte, emit func(Event)) int {
	if len(data) < 3 {
		return 0
	}

	switch data[2] {
	case '<':
		return d.parseSGRMouse(data, emit)
	case 'M':
		return d.parseX10Mouse(data, emit)
	case '[':
		// Linux console F1-F5: ESC [ [ A..E
		if len(data) < 4 {
			return 0
		}
		if code, ok := linuxFunctionKeys[data[3]]; ok {
			emit(KeyPressed(NamedKey(code), ModNone))
		}
		return 4
	}

	end := 2
	for end < len(data) {
		b := data[end]
		if (b >= 0x40 && b <= 0x7e) || b == '$' {
			break
		}
		if b < 0x20 || b > 0x7e {
			return end // Malformed, drop what was read
		}
		end++
		if end-2 > maxSequenceLen {
			return end
		}
	}
	if end >= len(data) {
		return 0
	}

	final := data[end]
	params, ok := parseParams(data[2:end])
	if !ok {
		return end + 1
	}

	switch final {
	case '~', '$', '^', '@':
		if len(params) == 0 {
			break
		}
		code, known := tildeKeys[params[0]]
		if !known {
			break
		}
		var mods ControlKeyState
		switch final {
		case '~':
			if len(params) > 1 {
				mods = xtermModifiers(params[1])
			}
		case '$':
			mods = ModShift
		case '^':
			mods = ModLeftCtrl
		case '@':
			mods = ModLeftCtrl | ModShift
		}
		emit(KeyPressed(NamedKey(code), mods))

	case 'M':
		// urxvt 1015: ESC [ Cb ; Cx ; Cy M
		if len(params) == 3 {
			d.mouse.report(params[0]-32, params[1]-1, params[2]-1, false, emit)
		}

	case 'Z':
		emit(KeyPressed(NamedKey(KeyTab), ModShift))

	default:
		if code, known := letterKeys[final]; known {
			var mods ControlKeyState
			if len(params) > 1 {
				mods = xtermModifiers(params[1])
			}
			emit(KeyPressed(NamedKey(code), mods))
		} else if code, known := rxvtShiftArrows[final]; known {
			emit(KeyPressed(NamedKey(code), ModShift))
		}
	}
	return end + 1
}

// parseParams splits "n;n;n" into integers; private markers and other bytes fail
func parseParams(p []byte) ([]int, bool) {
	if len(p) == 0 {
		return nil, true
	}
	params := make([]int, 0, 4)
	val := 0
	for _, b := range p {
		switch {
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return nil, false
			}
		case b == ';':
			params = append(params, val)
			val = 0
		default:
			return nil, false
		}
	}
	return append(params, val), true
}

// parseSS3 decodes ESC O sequences: cursor and function keys, keypad application mode
func (d *inputDecoder) parseSS3(data []byte, emit func(Event)) int {
	if len(data) < 3 {
		return 0
	}

	i := 2
	mod := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		mod = mod*10 + int(data[i]-'0')
		i++
		if i > 4 {
			return i
		}
	}
	if i >= len(data) {
		return 0
	}

	final := data[i]
	mods := xtermModifiers(mod)
	if code, ok := letterKeys[final]; ok {
		emit(KeyPressed(NamedKey(code), mods))
	} else if code, ok := rxvtShiftArrows[final]; ok {
		emit(KeyPressed(NamedKey(code), mods|ModLeftCtrl))
	} else if k, ok := keypadKeys[final]; ok {
		emit(KeyPressed(k, mods))
	}
	return i + 1
}

// parseSGRMouse decodes ESC [ < Btn ; X ; Y M/m
func (d *inputDecoder) parseSGRMouse(data []byte, emit func(Event)) int {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		if end-3 > maxSequenceLen {
			return end
		}
		end++
	}
	if end >= len(data) {
		return 0
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1
	}
	d.mouse.report(btn, x-1, y-1, data[end] == 'm', emit)
	return end + 1
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	params, ok := parseParams(data)
	if !ok || len(params) != 3 {
		return 0, 0, 0, false
	}
	return params[0], params[1], params[2], true
}

// parseX10Mouse decodes ESC [ M Cb Cx Cy with each value offset by 32
func (d *inputDecoder) parseX10Mouse(data []byte, emit func(Event)) int {
	if len(data) < 6 {
		return 0
	}
	cb := int(data[3]) - 32
	x := int(data[4]) - 33
	y := int(data[5]) - 33
	if cb >= 0 && x >= 0 && y >= 0 {
		d.mouse.report(cb, x, y, false, emit)
	}
	return 6
}
