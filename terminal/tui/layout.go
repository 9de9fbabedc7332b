package tui

import "github.com/lixenwraith/rut/terminal"

// Center returns a centered region of given size within outer
func Center(outer terminal.Region, w, h int) terminal.Region {
	w = min(w, outer.Width())
	h = min(h, outer.Height())
	x := (outer.Width() - w) / 2
	y := (outer.Height() - h) / 2
	return outer.SubRegion(x, y, w, h)
}

// SplitBottom carves n rows off the bottom of r
// Returns the remaining top part and the bottom strip
func SplitBottom(r terminal.Region, n int) (top, bottom terminal.Region) {
	n = max(0, min(n, r.Height()))
	top = r.SubRegion(0, 0, r.Width(), r.Height()-n)
	bottom = r.SubRegion(0, r.Height()-n, r.Width(), n)
	return top, bottom
}

// SplitH splits region horizontally by ratios
// Ratios are normalized if they don't sum to 1.0
func SplitH(r terminal.Region, ratios ...float64) []terminal.Region {
	if len(ratios) == 0 {
		return nil
	}

	sum := ratioSum(ratios)
	regions := make([]terminal.Region, len(ratios))
	x := 0
	remaining := r.Width()

	for i, ratio := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = remaining // Last one gets remainder to avoid rounding gaps
		} else {
			w = min(int(float64(r.Width())*ratio/sum+0.5), remaining)
		}
		regions[i] = r.SubRegion(x, 0, w, r.Height())
		x += w
		remaining -= w
	}

	return regions
}

// SplitV splits region vertically by ratios
func SplitV(r terminal.Region, ratios ...float64) []terminal.Region {
	if len(ratios) == 0 {
		return nil
	}

	sum := ratioSum(ratios)
	regions := make([]terminal.Region, len(ratios))
	y := 0
	remaining := r.Height()

	for i, ratio := range ratios {
		var h int
		if i == len(ratios)-1 {
			h = remaining
		} else {
			h = min(int(float64(r.Height())*ratio/sum), remaining)
		}
		regions[i] = r.SubRegion(0, y, r.Width(), h)
		y += h
		remaining -= h
	}

	return regions
}

func ratioSum(ratios []float64) float64 {
	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}
	return sum
}
