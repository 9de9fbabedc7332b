//go:build windows

// @lixen: #focus{sys[term,io],input[console]}
package terminal

import (
	"errors"
	"unicode/utf16"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	kernel32                         = windows.NewLazySystemDLL("kernel32.dll")
	procGetNumberOfConsoleInputEvent = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procReadConsoleInputW            = kernel32.NewProc("ReadConsoleInputW")
	procFillConsoleOutputCharacterW  = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute   = kernel32.NewProc("FillConsoleOutputAttribute")
	procWriteConsoleOutputCharacterW = kernel32.NewProc("WriteConsoleOutputCharacterW")
	procWriteConsoleOutputAttribute  = kernel32.NewProc("WriteConsoleOutputAttribute")
)

// Record layout must match INPUT_RECORD
var _ [inputRecordSize]byte = [unsafe.Sizeof(inputRecord{})]byte{}

// idleWait is the input wait in milliseconds between window size checks
const idleWait = 100

const consoleInputMode = windows.ENABLE_WINDOW_INPUT | windows.ENABLE_MOUSE_INPUT | windows.ENABLE_EXTENDED_FLAGS

// coordArg packs a COORD for by-value passing
func coordArg(x, y int) uintptr {
	return uintptr(uint16(int16(x))) | uintptr(uint16(int16(y)))<<16
}

// callProc invokes a console API returning BOOL
func callProc(name string, proc *windows.LazyProc, args ...uintptr) error {
	r1, _, err := proc.Call(args...)
	if r1 == 0 {
		return newSyscallError(name, err)
	}
	return nil
}

// winSurface writes regions into the console screen buffer
// Region coordinates are window-relative; origin is the window's top-left in buffer coordinates
type winSurface struct {
	out              windows.Handle
	originX, originY int
	width, height    int
}

func (s *winSurface) size() (int, int) {
	return s.width, s.height
}

func (s *winSurface) fillRect(r rect, bg Color) error {
	attr := bg.WindowsBackground()
	var written uint32
	for y := r.y; y < r.y+r.h; y++ {
		at := coordArg(s.originX+r.x, s.originY+y)
		if err := callProc("FillConsoleOutputCharacter", procFillConsoleOutputCharacterW,
			uintptr(s.out), uintptr(' '), uintptr(r.w), at, uintptr(unsafe.Pointer(&written))); err != nil {
			return err
		}
		if err := callProc("FillConsoleOutputAttribute", procFillConsoleOutputAttribute,
			uintptr(s.out), uintptr(attr), uintptr(r.w), at, uintptr(unsafe.Pointer(&written))); err != nil {
			return err
		}
	}
	return nil
}

// writeGlyphs writes each horizontal run with a text call followed by an attribute call
func (s *winSurface) writeGlyphs(bg, fg Color, glyphs []glyph) error {
	attr := bg.WindowsBackground() | fg.WindowsForeground()
	for start := 0; start < len(glyphs); {
		end := start + 1
		cells := glyphs[start].width
		for end < len(glyphs) && glyphs[end].y == glyphs[start].y &&
			glyphs[end].x == glyphs[end-1].x+glyphs[end-1].width {
			cells += glyphs[end].width
			end++
		}

		var units []uint16
		for _, g := range glyphs[start:end] {
			units = append(units, utf16.Encode([]rune(g.text))...)
		}
		attrs := make([]uint16, cells)
		for i := range attrs {
			attrs[i] = attr
		}

		at := coordArg(s.originX+glyphs[start].x, s.originY+glyphs[start].y)
		var written uint32
		if err := callProc("WriteConsoleOutputCharacter", procWriteConsoleOutputCharacterW,
			uintptr(s.out), uintptr(unsafe.Pointer(&units[0])), uintptr(len(units)), at,
			uintptr(unsafe.Pointer(&written))); err != nil {
			return err
		}
		if err := callProc("WriteConsoleOutputAttribute", procWriteConsoleOutputAttribute,
			uintptr(s.out), uintptr(unsafe.Pointer(&attrs[0])), uintptr(len(attrs)), at,
			uintptr(unsafe.Pointer(&written))); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// windowsConsole reads console input records and writes the screen buffer directly
type windowsConsole struct {
	in, out   windows.Handle
	oldInMode uint32

	surface    *winSurface
	queue      *eventQueue
	translator recordTranslator
	log        *zap.Logger

	size reportedSize

	closed bool
}

func openWindows(cfg Config, o *options) (*windowsConsole, error) {
	log := o.logger()
	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, newSyscallError("GetStdHandle", err)
	}
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, newSyscallError("GetStdHandle", err)
	}

	var oldMode uint32
	if err := windows.GetConsoleMode(in, &oldMode); err != nil {
		return nil, newSyscallError("GetConsoleMode", err)
	}

	c := &windowsConsole{
		in:        in,
		out:       out,
		oldInMode: oldMode,
		surface:   &winSurface{out: out},
		queue:     newEventQueue(cfg.QueueSize, log),
		log:       log,
	}
	if err := c.refreshWindow(); err != nil {
		return nil, err
	}
	c.size = reportedSize{width: c.surface.width, height: c.surface.height}

	if err := windows.SetConsoleMode(in, consoleInputMode); err != nil {
		return nil, newSyscallError("SetConsoleMode", err)
	}
	registerEmergencyRestore(func() { windows.SetConsoleMode(in, oldMode) })

	log.Debug("console opened",
		zap.Int("width", c.surface.width),
		zap.Int("height", c.surface.height))
	return c, nil
}

// refreshWindow re-reads the visible window rectangle
func (c *windowsConsole) refreshWindow() error {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.out, &info); err != nil {
		return newSyscallError("GetConsoleScreenBufferInfo", err)
	}
	win := info.Window
	s := c.surface
	s.originX, s.originY = int(win.Left), int(win.Top)
	s.width = int(win.Right-win.Left) + 1
	s.height = int(win.Bottom-win.Top) + 1
	c.translator.originX, c.translator.originY = s.originX, s.originY
	return nil
}

// Clear blanks the whole screen buffer with its current attribute and homes the cursor
func (c *windowsConsole) Clear() error {
	if c.closed {
		return ErrClosed
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.out, &info); err != nil {
		return newSyscallError("GetConsoleScreenBufferInfo", err)
	}
	cells := uint32(info.Size.X) * uint32(info.Size.Y)
	var written uint32
	if err := callProc("FillConsoleOutputCharacter", procFillConsoleOutputCharacterW,
		uintptr(c.out), uintptr(' '), uintptr(cells), coordArg(0, 0), uintptr(unsafe.Pointer(&written))); err != nil {
		return err
	}
	if err := callProc("FillConsoleOutputAttribute", procFillConsoleOutputAttribute,
		uintptr(c.out), uintptr(info.Attributes), uintptr(cells), coordArg(0, 0), uintptr(unsafe.Pointer(&written))); err != nil {
		return err
	}
	if err := windows.SetConsoleCursorPosition(c.out, windows.Coord{X: 0, Y: 0}); err != nil {
		return newSyscallError("SetConsoleCursorPosition", err)
	}
	return nil
}

func (c *windowsConsole) FullScreen() (Region, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if err := c.refreshWindow(); err != nil {
		return nil, err
	}
	return newRegion(c.surface, 0, 0, c.surface.width, c.surface.height), nil
}

func (c *windowsConsole) NextEvent() (Event, error) {
	for {
		if c.closed {
			return Event{}, ErrClosed
		}
		if ev, ok := c.queue.pop(); ok {
			return ev, nil
		}

		var pending uint32
		if err := callProc("GetNumberOfConsoleInputEvents", procGetNumberOfConsoleInputEvent,
			uintptr(c.in), uintptr(unsafe.Pointer(&pending))); err != nil {
			return Event{}, err
		}

		if pending == 0 {
			// Window resizes do not always produce a record
			if err := c.refreshWindow(); err != nil {
				return Event{}, err
			}
			if c.size.update(c.surface.width, c.surface.height) {
				c.pushResize()
				continue
			}
			if ev, err := windows.WaitForSingleObject(c.in, idleWait); ev == windows.WAIT_FAILED {
				return Event{}, newSyscallError("WaitForSingleObject", err)
			}
			continue
		}

		var rec inputRecord
		var read uint32
		if err := callProc("ReadConsoleInput", procReadConsoleInputW,
			uintptr(c.in), uintptr(unsafe.Pointer(&rec)), 1, uintptr(unsafe.Pointer(&read))); err != nil {
			return Event{}, err
		}
		if read == 0 {
			continue
		}
		if c.translator.translate(&rec, c.queue) {
			if err := c.refreshWindow(); err != nil {
				return Event{}, err
			}
			// Buffer-only resizes leave the window unchanged
			if c.size.update(c.surface.width, c.surface.height) {
				c.pushResize()
			}
		}
	}
}

// pushResize queues the size just recorded by c.size
func (c *windowsConsole) pushResize() {
	w, h := c.size.width, c.size.height
	c.log.Debug("resize detected", zap.Int("width", w), zap.Int("height", h))
	c.queue.push(Resize(w, h))
}

// Close restores the saved input mode; standard handles stay open
func (c *windowsConsole) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	clearEmergencyRestore()

	var errs []error
	if err := windows.SetConsoleMode(c.in, c.oldInMode); err != nil {
		c.log.Warn("failed to restore console mode", zap.Error(err))
		errs = append(errs, newSyscallError("SetConsoleMode", err))
	}
	c.log.Debug("console closed")
	return errors.Join(errs...)
}
