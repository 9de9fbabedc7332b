package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// TextWidth returns the display width of s in terminal columns
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW columns
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, ellipsis)
}

// TruncateLeft truncates with … prefix, keeps end of string
func TruncateLeft(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return ellipsis
	}
	return ellipsis + runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxW+1, "")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadCenter centers string within width columns
func PadCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// ExpandTabs replaces tabs with spaces up to the next multiple of tabWidth
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
