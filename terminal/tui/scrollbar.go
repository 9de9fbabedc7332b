package tui

import "github.com/lixenwraith/rut/terminal"

const (
	scrollTrack = '░'
	scrollThumb = '█'
	scrollRail  = '│'
)

// ScrollBar draws a vertical scrollbar track with thumb in column x
func ScrollBar(r terminal.Region, x int, s *ScrollState, bg, fg terminal.Color) error {
	trackH := r.Height()
	if x < 0 || x >= r.Width() || trackH < 1 {
		return nil
	}

	// No scrolling needed or track too small
	if s.Total <= s.Visible || trackH < 3 {
		for y := 0; y < trackH; y++ {
			if err := r.PrintChar(x, y, bg, fg, scrollRail); err != nil {
				return err
			}
		}
		return nil
	}

	thumbY, thumbH := thumbSpan(trackH, s.Offset, s.Visible, s.Total)
	for y := 0; y < trackH; y++ {
		ch := scrollTrack
		if y >= thumbY && y < thumbY+thumbH {
			ch = scrollThumb
		}
		if err := r.PrintChar(x, y, bg, fg, ch); err != nil {
			return err
		}
	}
	return nil
}

// thumbSpan returns the thumb's first row and length within a track
func thumbSpan(trackH, offset, visible, total int) (y, h int) {
	h = max(1, min((visible*trackH)/total, trackH))
	if maxScroll := total - visible; maxScroll > 0 {
		y = (offset * (trackH - h)) / maxScroll
	}
	y = max(0, min(y, trackH-h))
	return y, h
}
