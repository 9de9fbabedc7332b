// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// attrCache is the terminal state one console shares across all of its regions
// Sibling regions mutate the same cache, so calls must be serialized by the caller
type attrCache struct {
	bg, fg      Color
	colorsValid bool

	// Cell the terminal cursor will write to next
	x, y        int
	cursorValid bool
}

// invalidate forces the next write to re-emit colors and cursor position
func (c *attrCache) invalidate() {
	c.colorsValid = false
	c.cursorValid = false
}

// ansiSurface renders regions as ANSI sequences into a byte stream
type ansiSurface struct {
	w     *bufio.Writer
	seq   FunctionSequences
	cache *attrCache

	width, height int
	debugFill     bool
}

// newANSISurface creates a surface writing to out with a fresh cache
func newANSISurface(out io.Writer, seq FunctionSequences, width, height int, debugFill bool) *ansiSurface {
	return &ansiSurface{
		w:         bufio.NewWriterSize(out, 16384),
		seq:       seq,
		cache:     &attrCache{},
		width:     width,
		height:    height,
		debugFill: debugFill,
	}
}

func (s *ansiSurface) size() (int, int) {
	return s.width, s.height
}

// resize updates screen dimensions; cursor tracking is dropped since the terminal may have reflowed
func (s *ansiSurface) resize(width, height int) {
	s.width = width
	s.height = height
	s.cache.cursorValid = false
}

// setColors emits SGR only when the pair differs from the cached pair
func (s *ansiSurface) setColors(bg, fg Color) {
	c := s.cache
	if c.colorsValid && c.bg == bg && c.fg == fg {
		return
	}
	writeColors(s.w, bg, fg)
	c.bg, c.fg = bg, fg
	c.colorsValid = true
}

// moveTo emits CUP only when the cursor is not already at (x, y)
func (s *ansiSurface) moveTo(x, y int) {
	c := s.cache
	if c.cursorValid && c.x == x && c.y == y {
		return
	}
	writeCursorPos(s.w, x, y)
	c.x, c.y = x, y
	c.cursorValid = true
}

// advance records n columns written at the cursor
func (s *ansiSurface) advance(n int) {
	c := s.cache
	c.x += n
	// Past the last column the terminal is in pending-wrap state
	if c.x >= s.width {
		c.cursorValid = false
	}
}

func (s *ansiSurface) writeGlyphs(bg, fg Color, glyphs []glyph) error {
	s.setColors(bg, fg)
	for _, g := range glyphs {
		s.moveTo(g.x, g.y)
		s.w.WriteString(g.text)
		s.advance(g.width)
	}
	return s.flush("write")
}

func (s *ansiSurface) fillRect(r rect, bg Color) error {
	if s.debugFill {
		return s.debugFillRect(r, bg)
	}

	// Foreground is invisible on blanks, keep the cached one to avoid an SGR
	fg := White
	if s.cache.colorsValid {
		fg = s.cache.fg
	}
	s.setColors(bg, fg)
	blank := strings.Repeat(" ", r.w)
	for y := r.y; y < r.y+r.h; y++ {
		s.moveTo(r.x, y)
		s.w.WriteString(blank)
		s.advance(r.w)
	}
	return s.flush("write")
}

// debugFillRect renders a visible fill glyph per row and stamps the size label
func (s *ansiSurface) debugFillRect(r rect, bg Color) error {
	fg := DarkGray
	if bg == DarkGray {
		fg = LightGray
	}
	s.setColors(bg, fg)
	row := strings.Repeat("░", r.w)
	for y := r.y; y < r.y+r.h; y++ {
		s.moveTo(r.x, y)
		s.w.WriteString(row)
		s.advance(r.w)
	}

	label := fmt.Sprintf("%dx%d", r.w, r.h)
	if len(label) <= r.w {
		s.setColors(bg, White)
		s.moveTo(r.x, r.y)
		s.w.WriteString(label)
		s.advance(len(label))
	}
	return s.flush("write")
}

// clearScreen emits the family's clear sequence, which homes the cursor
func (s *ansiSurface) clearScreen() error {
	s.w.WriteString(s.seq.ClearScreen)
	s.cache.x, s.cache.y = 0, 0
	s.cache.cursorValid = true
	return s.flush("write")
}

// writeSequences emits raw control strings and drops cached state
func (s *ansiSurface) writeSequences(seqs ...string) error {
	for _, q := range seqs {
		s.w.WriteString(q)
	}
	s.cache.invalidate()
	return s.flush("write")
}

func (s *ansiSurface) flush(call string) error {
	if err := s.w.Flush(); err != nil {
		return newIOError(call, err)
	}
	return nil
}
