// @lixen: #focus{sys[term],render[tcell]}
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// tcellColors maps Color to the tcell palette entry at the same ANSI index
var tcellColors [ColorCount]tcell.Color

// tcellToColor is the reverse of tcellColors
var tcellToColor = make(map[tcell.Color]Color, ColorCount)

func init() {
	for c := Color(0); c < ColorCount; c++ {
		tc := tcell.PaletteColor(int(ansiIndex[c]))
		tcellColors[c] = tc
		tcellToColor[tc] = c
	}
}

func tcellStyle(bg, fg Color) tcell.Style {
	return tcell.StyleDefault.
		Background(tcellColors[bg&0x0f]).
		Foreground(tcellColors[fg&0x0f])
}

// tcellSurface draws regions into a tcell screen
type tcellSurface struct {
	screen tcell.Screen
}

func (s *tcellSurface) size() (int, int) {
	return s.screen.Size()
}

func (s *tcellSurface) fillRect(r rect, bg Color) error {
	style := tcellStyle(bg, bg)
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *tcellSurface) writeGlyphs(bg, fg Color, glyphs []glyph) error {
	style := tcellStyle(bg, fg)
	for _, g := range glyphs {
		runes := []rune(g.text)
		s.screen.SetContent(g.x, g.y, runes[0], runes[1:], style)
		// tcell owns the trailing cell of wide runes; keep its width model in step with layout
		if g.width == 2 && runewidth.RuneWidth(runes[0]) == 1 {
			s.screen.SetContent(g.x+1, g.y, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// tcellConsole adapts a tcell screen to Console
type tcellConsole struct {
	screen  tcell.Screen
	surface *tcellSurface
	queue   *eventQueue
	mouse   mouseTracker
	buttons tcell.ButtonMask
	log     *zap.Logger

	size   reportedSize
	closed bool
}

// NewTcellConsole wraps an initialized tcell screen
// Closing the console finalizes the screen
func NewTcellConsole(screen tcell.Screen, opts ...Option) Console {
	o := newOptions(opts)
	return newTcellConsole(screen, o.configOrDefault(), o)
}

func newTcellConsole(screen tcell.Screen, cfg Config, o *options) *tcellConsole {
	log := o.logger()
	screen.EnableMouse()
	screen.HideCursor()
	w, h := screen.Size()
	c := &tcellConsole{
		screen:  screen,
		surface: &tcellSurface{screen: screen},
		queue:   newEventQueue(cfg.QueueSize, log),
		mouse:   mouseTracker{now: o.clock()},
		log:     log,
		size:    reportedSize{width: w, height: h},
	}
	log.Debug("tcell console opened", zap.Int("width", w), zap.Int("height", h))
	return c
}

// openTcell initializes the platform tcell screen
func openTcell(cfg Config, o *options) (Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &UnsupportedTerminalError{Details: err.Error()}
	}
	if err := screen.Init(); err != nil {
		return nil, newIOError("tcell.Init", err)
	}
	return newTcellConsole(screen, cfg, o), nil
}

func (c *tcellConsole) Clear() error {
	if c.closed {
		return ErrClosed
	}
	c.screen.Clear()
	c.screen.Show()
	return nil
}

func (c *tcellConsole) FullScreen() (Region, error) {
	if c.closed {
		return nil, ErrClosed
	}
	w, h := c.screen.Size()
	return newRegion(c.surface, 0, 0, w, h), nil
}

func (c *tcellConsole) NextEvent() (Event, error) {
	for {
		if c.closed {
			return Event{}, ErrClosed
		}
		if ev, ok := c.queue.pop(); ok {
			return ev, nil
		}
		tev := c.screen.PollEvent()
		if tev == nil {
			return Event{}, ErrClosed
		}
		c.convert(tev)
	}
}

func (c *tcellConsole) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.screen.Fini()
	c.log.Debug("tcell console closed")
	return nil
}

// convert queues the events corresponding to one tcell event
func (c *tcellConsole) convert(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, mods, ok := convertTcellKey(e)
		if ok {
			c.queue.push(KeyPressed(key, mods))
		}

	case *tcell.EventMouse:
		c.convertMouse(e)

	case *tcell.EventResize:
		// Stale notifications collapse against the live size
		w, h := c.screen.Size()
		if !c.size.update(w, h) {
			return
		}
		c.log.Debug("resize detected", zap.Int("width", w), zap.Int("height", h))
		c.queue.push(Resize(w, h))

	case *tcell.EventError:
		c.log.Warn("tcell error event", zap.Error(e))
	}
}

func convertTcellMods(m tcell.ModMask) ControlKeyState {
	var s ControlKeyState
	if m&tcell.ModShift != 0 {
		s |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		s |= ModLeftAlt
	}
	if m&tcell.ModCtrl != 0 {
		s |= ModLeftCtrl
	}
	return s
}

// tcellKeys maps named tcell keys
var tcellKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyRight:      KeyRight,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyPrint:      KeyPrintScreen,
}

// convertTcellKey maps a tcell key event; ctrl letters follow the native console convention
func convertTcellKey(e *tcell.EventKey) (Key, ControlKeyState, bool) {
	mods := convertTcellMods(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		if r >= 'A' && r <= 'Z' {
			mods |= ModShift
		}
		return CharKey(r), mods, true
	case k == tcell.KeyBacktab:
		return NamedKey(KeyTab), mods | ModShift, true
	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		return FunctionKey(int(k-tcell.KeyF1) + 1), mods, true
	}

	if code, ok := tcellKeys[k]; ok {
		return NamedKey(code), mods, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return CharKey(rune('a' + k - tcell.KeyCtrlA)), mods | ModLeftCtrl, true
	}
	if k == tcell.KeyCtrlSpace {
		return CharKey(' '), mods | ModLeftCtrl, true
	}
	return Key{}, ModNone, false
}

// convertMouse replays tcell button transitions through the mouse tracker
func (c *tcellConsole) convertMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	buttons := e.Buttons()
	cb := 0
	mods := e.Modifiers()
	if mods&tcell.ModShift != 0 {
		cb |= mouseFlagShift
	}
	if mods&(tcell.ModAlt|tcell.ModMeta) != 0 {
		cb |= mouseFlagAlt
	}
	if mods&tcell.ModCtrl != 0 {
		cb |= mouseFlagCtrl
	}
	emit := func(ev Event) { c.queue.push(ev) }

	wheels := []struct {
		mask tcell.ButtonMask
		id   int
	}{
		{tcell.WheelUp, 0},
		{tcell.WheelDown, 1},
		{tcell.WheelLeft, 2},
		{tcell.WheelRight, 3},
	}
	for _, w := range wheels {
		if buttons&w.mask != 0 {
			c.mouse.report(cb|mouseFlagWheel|w.id, x, y, false, emit)
		}
	}

	pressed := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	changed := pressed ^ c.buttons
	c.buttons = pressed
	if changed == 0 {
		if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) == 0 {
			c.mouse.report(cb|mouseFlagMotion, x, y, false, emit)
		}
		return
	}

	transitions := []struct {
		mask tcell.ButtonMask
		id   int
	}{
		{tcell.ButtonPrimary, mouseBtnLeft},
		{tcell.ButtonMiddle, mouseBtnMiddle},
		{tcell.ButtonSecondary, mouseBtnRight},
	}
	for _, t := range transitions {
		if changed&t.mask != 0 {
			c.mouse.report(cb|t.id, x, y, pressed&t.mask == 0, emit)
		}
	}
}
