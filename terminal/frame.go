package terminal

import (
	"fmt"
	"strings"
)

// FrameStyle selects the box drawing glyph set of a frame
type FrameStyle uint8

const (
	FrameSingle        FrameStyle = iota // ┌─┐│└┘
	FrameSingleRounded                   // ╭─╮│╰╯
	FrameDashed                          // ┌┄┐┊└┘
	FrameDouble                          // ╔═╗║╚╝
)

// Glyph positions within a frame glyph set
const (
	frameH  = 0 // horizontal
	frameV  = 1 // vertical
	frameTL = 2 // top-left
	frameTR = 3 // top-right
	frameBL = 4 // bottom-left
	frameBR = 5 // bottom-right
)

var frameGlyphs = [...][6]rune{
	FrameSingle:        {'─', '│', '┌', '┐', '└', '┘'},
	FrameSingleRounded: {'─', '│', '╭', '╮', '╰', '╯'},
	FrameDashed:        {'┄', '┊', '┌', '┐', '└', '┘'},
	FrameDouble:        {'═', '║', '╔', '╗', '╚', '╝'},
}

var frameStyleNames = [...]string{
	FrameSingle:        "single",
	FrameSingleRounded: "rounded",
	FrameDashed:        "dashed",
	FrameDouble:        "double",
}

// Glyphs returns horizontal, vertical, top-left, top-right, bottom-left, bottom-right
// Unknown styles fall back to FrameSingle
func (s FrameStyle) Glyphs() [6]rune {
	if int(s) >= len(frameGlyphs) {
		return frameGlyphs[FrameSingle]
	}
	return frameGlyphs[s]
}

func (s FrameStyle) String() string {
	if int(s) >= len(frameStyleNames) {
		return fmt.Sprintf("FrameStyle(%d)", uint8(s))
	}
	return frameStyleNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s FrameStyle) MarshalText() ([]byte, error) {
	if int(s) >= len(frameStyleNames) {
		return nil, fmt.Errorf("invalid frame style %d", uint8(s))
	}
	return []byte(frameStyleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *FrameStyle) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "single_rounded" || name == "single-rounded" {
		name = "rounded"
	}
	for i, n := range frameStyleNames {
		if n == name {
			*s = FrameStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown frame style %q", string(text))
}

// Frame decorates a region with border drawing
type Frame struct {
	Region
}

// NewFrame wraps r
func NewFrame(r Region) Frame {
	return Frame{Region: r}
}

// DrawFrame draws a border on the region edge
// Requires Width() >= 2 and Height() >= 2
func (f Frame) DrawFrame(bg, fg Color, style FrameStyle) error {
	g := style.Glyphs()
	w, h := f.Width(), f.Height()

	horizontal := strings.Repeat(string(g[frameH]), w)
	if err := f.Print(0, 0, bg, fg, horizontal); err != nil {
		return err
	}
	if err := f.Print(0, h-1, bg, fg, horizontal); err != nil {
		return err
	}

	for y := 1; y < h-1; y++ {
		if err := f.PrintChar(0, y, bg, fg, g[frameV]); err != nil {
			return err
		}
		if err := f.PrintChar(w-1, y, bg, fg, g[frameV]); err != nil {
			return err
		}
	}

	corners := [4]struct {
		x, y int
		ch   rune
	}{
		{0, 0, g[frameTL]},
		{w - 1, 0, g[frameTR]},
		{0, h - 1, g[frameBL]},
		{w - 1, h - 1, g[frameBR]},
	}
	for _, c := range corners {
		if err := f.PrintChar(c.x, c.y, bg, fg, c.ch); err != nil {
			return err
		}
	}
	return nil
}

// Inside returns the region inset by one cell on every side
func (f Frame) Inside() Region {
	return f.SubRegion(1, 1, f.Width()-2, f.Height()-2)
}
