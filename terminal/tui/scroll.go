package tui

// ScrollState tracks the first visible line of a scrollable view
type ScrollState struct {
	Offset  int // First visible item index
	Total   int // Total item count
	Visible int // Visible item count (viewport height)
}

// NewScrollState creates initialized scroll state
func NewScrollState(total, visible int) *ScrollState {
	return &ScrollState{Total: total, Visible: visible}
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// ScrollTo sets offset to specific position
func (s *ScrollState) ScrollTo(pos int) {
	s.Offset = pos
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// PageUp scrolls up by half visible height
func (s *ScrollState) PageUp() {
	s.ScrollBy(-PageDelta(s.Visible))
}

// PageDown scrolls down by half visible height
func (s *ScrollState) PageDown() {
	s.ScrollBy(PageDelta(s.Visible))
}

// Home scrolls to the first item
func (s *ScrollState) Home() {
	s.ScrollTo(0)
}

// End scrolls so the last item is on the bottom row
func (s *ScrollState) End() {
	s.ScrollTo(s.Total)
}

// SetTotal updates total count and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Clamp()
}

// SetVisible updates visible count and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = visible
	s.Clamp()
}

// AtTop returns true if scrolled to top
func (s *ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom returns true if scrolled to bottom
func (s *ScrollState) AtBottom() bool {
	if s.Total <= s.Visible {
		return true
	}
	return s.Offset >= s.Total-s.Visible
}

// Indicator returns "Top", "Bot", "All" or a two-digit percentage
func (s *ScrollState) Indicator() string {
	switch {
	case s.Total <= s.Visible:
		return "All"
	case s.Offset <= 0:
		return "Top"
	case s.AtBottom():
		return "Bot"
	}
	pct := min(ScrollPercent(s.Offset, s.Visible, s.Total), 99)
	return string(rune('0'+pct/10)) + string(rune('0'+pct%10)) + "%"
}

// ScrollPercent returns scroll position as 0-100 percentage
func ScrollPercent(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	pct := (scroll * 100) / (total - visible)
	return max(0, min(pct, 100))
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	return max(visible/2, 1)
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	return max(0, min(scroll, total-visible))
}
