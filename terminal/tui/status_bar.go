package tui

import "github.com/lixenwraith/rut/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label    string
	Value    string
	LabelFg  terminal.Color
	ValueFg  terminal.Color
	Priority int // Higher = survives truncation
}

// BarAlign specifies status bar alignment mode
type BarAlign uint8

const (
	BarAlignRight      BarAlign = iota // Pack sections from right
	BarAlignLeft                       // Pack sections from left
	BarAlignDistribute                 // Evenly space sections
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Between sections, default " │ "
	SepFg     terminal.Color
	Bg        terminal.Color
	Align     BarAlign
	Padding   int // Left/right padding, default 1
}

// DefaultBarOpts returns sensible defaults
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepFg:     terminal.DarkGray,
		Padding:   1,
		Align:     BarAlignRight,
	}
}

// StatusBar fills row 0 of r with opts.Bg and renders the sections on it
func StatusBar(r terminal.Region, sections []BarSection, opts BarOpts) error {
	if r.Height() < 1 || r.Width() < 1 {
		return nil
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	row := r.SubRegion(0, 0, r.Width(), 1)
	if err := row.Fill(opts.Bg); err != nil {
		return err
	}
	if len(sections) == 0 {
		return nil
	}

	sepW := TextWidth(opts.Separator)
	widths := make([]int, len(sections))
	for i, sec := range sections {
		widths[i] = TextWidth(sec.Label) + TextWidth(sec.Value)
	}

	availW := r.Width() - opts.Padding*2
	if availW <= 0 {
		return nil
	}
	sections, widths = truncateSections(sections, widths, sepW, availW)
	totalW := packedWidth(widths, sepW)

	// Content area excludes padding; Print would wrap past the right edge
	area := row.SubRegion(opts.Padding, 0, availW, 1)
	var x int
	switch opts.Align {
	case BarAlignRight:
		x = max(0, availW-totalW)
	case BarAlignLeft, BarAlignDistribute:
		x = 0
	}

	gap := sepW
	if opts.Align == BarAlignDistribute && len(sections) > 1 {
		gap = max(0, (availW-totalW+sepW*(len(sections)-1))/(len(sections)-1))
	}

	for i, sec := range sections {
		var err error
		if x, err = printClipped(area, x, opts.Bg, sec.LabelFg, sec.Label); err != nil {
			return err
		}
		if x, err = printClipped(area, x, opts.Bg, sec.ValueFg, sec.Value); err != nil {
			return err
		}
		if i == len(sections)-1 {
			break
		}
		if opts.Align == BarAlignDistribute {
			x += gap
			continue
		}
		if x, err = printClipped(area, x, opts.Bg, opts.SepFg, opts.Separator); err != nil {
			return err
		}
	}
	return nil
}

// printClipped prints text at column x of a one-row region without wrapping
// Returns the column after the text
func printClipped(r terminal.Region, x int, bg, fg terminal.Color, text string) (int, error) {
	room := r.Width() - x
	if room <= 0 || text == "" {
		return x + TextWidth(text), nil
	}
	if TextWidth(text) > room {
		text = Truncate(text, room)
	}
	if err := r.Print(x, 0, bg, fg, text); err != nil {
		return x, err
	}
	return x + TextWidth(text), nil
}

func packedWidth(widths []int, sepW int) int {
	total := 0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += sepW
		}
	}
	return total
}

// truncateSections removes lowest priority sections until fit
func truncateSections(sections []BarSection, widths []int, sepW, availW int) ([]BarSection, []int) {
	// Copy to avoid modifying original
	secs := make([]BarSection, len(sections))
	copy(secs, sections)
	ws := make([]int, len(widths))
	copy(ws, widths)

	for packedWidth(ws, sepW) > availW && len(secs) > 1 {
		// Find lowest priority, earliest wins ties
		minIdx := 0
		for i, sec := range secs {
			if sec.Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
		ws = append(ws[:minIdx], ws[minIdx+1:]...)
	}

	return secs, ws
}
