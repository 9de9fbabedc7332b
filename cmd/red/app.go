// @lixen: #focus{app[red],render[view]}
package main

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rut/terminal"
	"github.com/lixenwraith/rut/terminal/tui"
)

// wheelLines is the scroll distance of one wheel notch
const wheelLines = 3

// app draws one buffer in a framed view above a status row
type app struct {
	console terminal.Console
	theme   Theme
	buf     *buffer
	scroll  *tui.ScrollState
	log     *zap.Logger
}

func newApp(console terminal.Console, theme Theme, buf *buffer, log *zap.Logger) *app {
	if log == nil {
		log = zap.NewNop()
	}
	return &app{
		console: console,
		theme:   theme,
		buf:     buf,
		scroll:  tui.NewScrollState(buf.lineCount(), 0),
		log:     log,
	}
}

// run renders, then handles events until a quit binding is pressed
func (a *app) run() error {
	if err := a.console.Clear(); err != nil {
		return err
	}
	if err := a.render(); err != nil {
		return err
	}
	for {
		ev, err := a.console.NextEvent()
		if err != nil {
			return err
		}
		quit, redraw := a.handle(ev)
		if quit {
			a.log.Debug("quit requested", zap.Stringer("event", ev))
			return nil
		}
		if redraw {
			if err := a.render(); err != nil {
				return err
			}
		}
	}
}

// handle applies one event to the view state
// Returns whether to quit and whether the screen needs redrawing
func (a *app) handle(ev terminal.Event) (quit, redraw bool) {
	keys := a.theme.Keys
	before := a.scroll.Offset

	switch ev.Type {
	case terminal.EventResize:
		a.log.Debug("resize", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		return false, true
	case terminal.EventMouseWheel:
		if ev.Amount > 0 {
			a.scroll.ScrollBy(-wheelLines)
		} else {
			a.scroll.ScrollBy(wheelLines)
		}
	case terminal.EventKeyPressed:
		switch {
		case matchesAny(keys.Quit, ev):
			return true, false
		case matchesAny(keys.LineUp, ev):
			a.scroll.ScrollBy(-1)
		case matchesAny(keys.LineDown, ev):
			a.scroll.ScrollBy(1)
		case matchesAny(keys.PageUp, ev):
			a.scroll.PageUp()
		case matchesAny(keys.PageDown, ev):
			a.scroll.PageDown()
		case matchesAny(keys.Top, ev):
			a.scroll.Home()
		case matchesAny(keys.Bottom, ev):
			a.scroll.End()
		}
	}
	return false, a.scroll.Offset != before
}

// render redraws the whole screen at its current size
func (a *app) render() error {
	root, err := a.console.FullScreen()
	if err != nil {
		return err
	}
	if root.Width() < 1 || root.Height() < 1 {
		return nil
	}

	body, status := tui.SplitBottom(root, 1)
	if err := a.renderBuffer(body); err != nil {
		return err
	}
	return a.renderStatus(status)
}

func (a *app) renderBuffer(r terminal.Region) error {
	t := a.theme.Buffer
	if err := r.Fill(t.Bg); err != nil {
		return err
	}
	// Frame needs at least one inner cell
	if r.Width() < 3 || r.Height() < 3 {
		return nil
	}

	frame := terminal.NewFrame(r)
	if err := frame.DrawFrame(t.Bg, t.FrameFg, t.Frame); err != nil {
		return err
	}

	inner := frame.Inside()
	a.scroll.SetTotal(a.buf.lineCount())
	a.scroll.SetVisible(inner.Height())

	for y := 0; y < inner.Height(); y++ {
		i := a.scroll.Offset + y
		if i >= a.buf.lineCount() {
			break
		}
		line := tui.Truncate(a.buf.lines[i], inner.Width())
		if line == "" {
			continue
		}
		if err := inner.Print(0, y, t.Bg, t.Fg, line); err != nil {
			return err
		}
	}

	// Scrollbar replaces the right edge of the frame when the view overflows
	if a.scroll.Total > a.scroll.Visible {
		track := r.SubRegion(r.Width()-1, 1, 1, r.Height()-2)
		return tui.ScrollBar(track, 0, a.scroll, t.Bg, t.FrameFg)
	}
	return nil
}

func (a *app) renderStatus(r terminal.Region) error {
	t := a.theme.Status
	sections := []tui.BarSection{
		{Value: t.Text, ValueFg: t.Fg, Priority: 3},
		{Value: a.buf.name, ValueFg: t.Fg, Priority: 1},
		{Value: a.scroll.Indicator(), ValueFg: t.Fg, Priority: 2},
	}
	opts := tui.DefaultBarOpts()
	opts.Bg = t.Bg
	opts.SepFg = t.Fg
	opts.Align = tui.BarAlignDistribute
	return tui.StatusBar(r, sections, opts)
}
