package main

import (
	"fmt"

	"github.com/lixenwraith/rut/terminal"
	"github.com/lixenwraith/rut/terminal/tui"
)

// maxLog is the number of events kept on screen
const maxLog = 10

var quitKeys = []terminal.Binding{
	{Key: terminal.CharKey('c'), Mods: terminal.ModLeftCtrl},
	{Key: terminal.CharKey('q'), Mods: terminal.ModLeftCtrl},
}

// inspector logs incoming events and lets the user drag a marker around
type inspector struct {
	log []string

	// Draggable object state
	objX, objY int
	dragging   bool
	placed     bool
}

// addLog appends an entry, dropping the oldest past maxLog
func (in *inspector) addLog(s string) {
	if len(in.log) >= maxLog {
		copy(in.log, in.log[1:])
		in.log = in.log[:maxLog-1]
	}
	in.log = append(in.log, s)
}

// handle records ev and updates the marker; returns true on a quit key
func (in *inspector) handle(ev terminal.Event) bool {
	if ev.Type == terminal.EventKeyPressed {
		for _, b := range quitKeys {
			if b.Matches(ev) {
				return true
			}
		}
	}
	in.addLog(ev.String())

	switch ev.Type {
	case terminal.EventMouseButton:
		if ev.LeftButton && ev.Y == in.objY && ev.X >= in.objX && ev.X < in.objX+3 {
			in.dragging = true
		} else if !ev.LeftButton {
			in.dragging = false
		}
	case terminal.EventMouseMove:
		if in.dragging {
			in.objX, in.objY = ev.X, ev.Y
		}
	}
	return false
}

// render draws title, event log, marker and status line over the whole screen
func (in *inspector) render(root terminal.Region) error {
	w, h := root.Width(), root.Height()
	if w < 4 || h < 4 {
		return root.Fill(terminal.Blue)
	}
	if !in.placed {
		in.objX, in.objY = w/2, h/2
		in.placed = true
	}
	// Clamp to screen
	in.objX = max(0, min(in.objX, w-3))
	in.objY = max(0, min(in.objY, h-1))

	if err := root.Fill(terminal.Blue); err != nil {
		return err
	}

	// Title and spacer, event log, spacer, status line
	rows := tui.SplitV(root, 2, float64(h-4), 1, 1)
	header, logArea, status := rows[0], rows[1], rows[3]

	title := tui.PadCenter(tui.Truncate("rut events - press keys, move mouse, drag the [X] - ctrl+c to quit", w), w)
	if err := header.Print(0, 0, terminal.Cyan, terminal.White, title); err != nil {
		return err
	}

	for i, entry := range in.log {
		if i >= logArea.Height() {
			break
		}
		if err := logArea.Print(1, i, terminal.Blue, terminal.LightGray, tui.Truncate(entry, w-2)); err != nil {
			return err
		}
	}

	fg := terminal.LightGreen
	if in.dragging {
		fg = terminal.Yellow
	}
	if err := root.Print(in.objX, in.objY, terminal.Cyan, fg, "[X]"); err != nil {
		return err
	}

	return tui.StatusBar(status, []tui.BarSection{
		{Label: "size ", Value: fmt.Sprintf("%dx%d", w, h), LabelFg: terminal.LightGray, ValueFg: terminal.White, Priority: 2},
		{Label: "object ", Value: fmt.Sprintf("%d,%d", in.objX, in.objY), LabelFg: terminal.LightGray, ValueFg: terminal.White, Priority: 1},
		{Label: "dragging ", Value: fmt.Sprint(in.dragging), LabelFg: terminal.LightGray, ValueFg: terminal.White},
	}, tui.BarOpts{Bg: terminal.DarkGray, SepFg: terminal.LightGray, Align: tui.BarAlignLeft})
}

// run loops until a quit key or a console error
func run(console terminal.Console) error {
	in := &inspector{}
	for {
		root, err := console.FullScreen()
		if err != nil {
			return err
		}
		if err := in.render(root); err != nil {
			return err
		}
		ev, err := console.NextEvent()
		if err != nil {
			return err
		}
		if in.handle(ev) {
			return nil
		}
	}
}
