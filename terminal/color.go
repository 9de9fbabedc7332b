package terminal

import (
	"fmt"
	"strings"
)

// Color is one of the 16 portable console colors
// Values follow the CGA bit layout (blue=1, green=2, red=4, intensity=8)
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// ColorCount is the number of portable colors
const ColorCount = 16

var colorNames = [ColorCount]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light-gray",
	"dark-gray", "light-blue", "light-green", "light-cyan", "light-red", "light-magenta", "yellow", "white",
}

// ansiIndex maps Color to the ANSI palette slot (0-7 normal, 8-15 bright)
// ANSI orders the base colors red=1, green=2, blue=4, the reverse of CGA
// Color values are not SGR offsets: Blue emits 34 and Red emits 31
var ansiIndex = [ColorCount]uint8{
	Black:        0,
	Blue:         4,
	Green:        2,
	Cyan:         6,
	Red:          1,
	Magenta:      5,
	Brown:        3,
	LightGray:    7,
	DarkGray:     8,
	LightBlue:    12,
	LightGreen:   10,
	LightCyan:    14,
	LightRed:     9,
	LightMagenta: 13,
	Yellow:       11,
	White:        15,
}

// Windows console attribute bits
const (
	foregroundBlue      = 0x0001
	foregroundGreen     = 0x0002
	foregroundRed       = 0x0004
	foregroundIntensity = 0x0008
	backgroundBlue      = 0x0010
	backgroundGreen     = 0x0020
	backgroundRed       = 0x0040
	backgroundIntensity = 0x0080
)

var winForeground = [ColorCount]uint16{
	Black:        0,
	Blue:         foregroundBlue,
	Green:        foregroundGreen,
	Cyan:         foregroundGreen | foregroundBlue,
	Red:          foregroundRed,
	Magenta:      foregroundRed | foregroundBlue,
	Brown:        foregroundRed | foregroundGreen,
	LightGray:    foregroundRed | foregroundGreen | foregroundBlue,
	DarkGray:     foregroundIntensity,
	LightBlue:    foregroundBlue | foregroundIntensity,
	LightGreen:   foregroundGreen | foregroundIntensity,
	LightCyan:    foregroundGreen | foregroundBlue | foregroundIntensity,
	LightRed:     foregroundRed | foregroundIntensity,
	LightMagenta: foregroundRed | foregroundBlue | foregroundIntensity,
	Yellow:       foregroundRed | foregroundGreen | foregroundIntensity,
	White:        foregroundRed | foregroundGreen | foregroundBlue | foregroundIntensity,
}

var winBackground = [ColorCount]uint16{
	Black:        0,
	Blue:         backgroundBlue,
	Green:        backgroundGreen,
	Cyan:         backgroundGreen | backgroundBlue,
	Red:          backgroundRed,
	Magenta:      backgroundRed | backgroundBlue,
	Brown:        backgroundRed | backgroundGreen,
	LightGray:    backgroundRed | backgroundGreen | backgroundBlue,
	DarkGray:     backgroundIntensity,
	LightBlue:    backgroundBlue | backgroundIntensity,
	LightGreen:   backgroundGreen | backgroundIntensity,
	LightCyan:    backgroundGreen | backgroundBlue | backgroundIntensity,
	LightRed:     backgroundRed | backgroundIntensity,
	LightMagenta: backgroundRed | backgroundBlue | backgroundIntensity,
	Yellow:       backgroundRed | backgroundGreen | backgroundIntensity,
	White:        backgroundRed | backgroundGreen | backgroundBlue | backgroundIntensity,
}

// Valid reports whether c is one of the 16 defined colors
func (c Color) Valid() bool {
	return c < ColorCount
}

// ANSIForeground returns the SGR foreground parameter (30-37, 90-97)
func (c Color) ANSIForeground() int {
	i := int(ansiIndex[c&0x0f])
	if i < 8 {
		return 30 + i
	}
	return 90 + i - 8
}

// ANSIBackground returns the SGR background parameter (40-47, 100-107)
func (c Color) ANSIBackground() int {
	i := int(ansiIndex[c&0x0f])
	if i < 8 {
		return 40 + i
	}
	return 100 + i - 8
}

// WindowsForeground returns the console character attribute for c as foreground
func (c Color) WindowsForeground() uint16 {
	return winForeground[c&0x0f]
}

// WindowsBackground returns the console character attribute for c as background
func (c Color) WindowsBackground() uint16 {
	return winBackground[c&0x0f]
}

// String returns the kebab-case name of the color
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color name, case-insensitive; '_' and ' ' are accepted for '-'
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
