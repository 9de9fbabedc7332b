// @lixen: #focus{sys[term,output],render[region]}
package terminal

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Region is a rectangular drawing surface bound to one console
// All coordinates are relative to the region's origin
// A region must not be used after its console is closed
type Region interface {
	// Width and Height are fixed for the region's lifetime
	Width() int
	Height() int

	// Bounds returns the absolute screen offset and the size
	Bounds() (x, y, w, h int)

	// Fill paints every cell of the region with the background color
	Fill(bg Color) error

	// Print writes text at (x, y), wrapping at the right edge and stopping at the bottom edge
	Print(x, y int, bg, fg Color, text string) error

	// PrintChar writes a single character at (x, y)
	PrintChar(x, y int, bg, fg Color, ch rune) error

	// SubRegion returns a region at (x, y) relative to this one, sharing its console
	// The rectangle is not validated against the parent; callers keep it in bounds
	SubRegion(x, y, w, h int) Region

	// Clear fills the region with Black
	Clear() error
}

// rect is an absolute screen rectangle
type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool {
	return r.w <= 0 || r.h <= 0
}

// intersect clips r to o
func (r rect) intersect(o rect) rect {
	x0, y0 := max(r.x, o.x), max(r.y, o.y)
	x1, y1 := min(r.x+r.w, o.x+o.w), min(r.y+r.h, o.y+o.h)
	if x1 <= x0 || y1 <= y0 {
		return rect{}
	}
	return rect{x: x0, y: y0, w: x1 - x0, h: y1 - y0}
}

// glyph is one laid-out grapheme cluster at absolute screen coordinates
type glyph struct {
	x, y  int
	text  string
	width int // Display columns, 1 or 2
}

// surface is the backend capability shared by every region of one console
// Implementations hold the console's attribute cache; regions never copy it
type surface interface {
	size() (w, h int)
	fillRect(r rect, bg Color) error
	writeGlyphs(bg, fg Color, glyphs []glyph) error
}

// region is the Region implementation used by all backends
type region struct {
	s surface
	r rect
}

func newRegion(s surface, x, y, w, h int) *region {
	return &region{s: s, r: rect{x: x, y: y, w: w, h: h}}
}

func (g *region) Width() int  { return g.r.w }
func (g *region) Height() int { return g.r.h }

func (g *region) Bounds() (x, y, w, h int) {
	return g.r.x, g.r.y, g.r.w, g.r.h
}

func (g *region) Fill(bg Color) error {
	sw, sh := g.s.size()
	r := g.r.intersect(rect{w: sw, h: sh})
	if r.empty() {
		return nil
	}
	return g.s.fillRect(r, bg)
}

func (g *region) Print(x, y int, bg, fg Color, text string) error {
	sw, sh := g.s.size()
	glyphs := layout(g.r, rect{w: sw, h: sh}, x, y, text)
	if len(glyphs) == 0 {
		return nil
	}
	return g.s.writeGlyphs(bg, fg, glyphs)
}

func (g *region) PrintChar(x, y int, bg, fg Color, ch rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return g.Print(x, y, bg, fg, string(buf[:n]))
}

func (g *region) SubRegion(x, y, w, h int) Region {
	return newRegion(g.s, g.r.x+x, g.r.y+y, w, h)
}

func (g *region) Clear() error {
	return g.Fill(Black)
}

// layout places text into r starting at relative (x, y)
// Clusters wrap at the right edge of r, '\n' moves to the start of the next row,
// other control characters are dropped and output stops at the bottom edge
// Cells outside screen are skipped but still advance the pen
func layout(r, screen rect, x, y int, text string) []glyph {
	if r.empty() {
		return nil
	}

	var glyphs []glyph
	cx, cy := x, y
	state := -1
	rest := text
	for len(rest) > 0 && cy < r.h {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)

		if cluster == "\n" || cluster == "\r\n" {
			cx = 0
			cy++
			continue
		}
		first, _ := utf8.DecodeRuneInString(cluster)
		if first < 0x20 || first == 0x7f {
			continue
		}
		width := boundaries >> uniseg.ShiftWidth
		if width <= 0 || width > r.w {
			continue
		}

		if cx+width > r.w {
			cx = 0
			cy++
			if cy >= r.h {
				break
			}
		}

		ax, ay := r.x+cx, r.y+cy
		if cx >= 0 && cy >= 0 && ax >= screen.x && ay >= screen.y &&
			ax+width <= screen.x+screen.w && ay < screen.y+screen.h {
			glyphs = append(glyphs, glyph{x: ax, y: ay, text: cluster, width: width})
		}
		cx += width
	}
	return glyphs
}
