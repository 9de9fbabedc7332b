package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c      Color
		fg, bg int
	}{
		{Black, 30, 40},
		{Red, 31, 41},
		{Green, 32, 42},
		{Brown, 33, 43},
		{Blue, 34, 44},
		{Magenta, 35, 45},
		{Cyan, 36, 46},
		{LightGray, 37, 47},
		{DarkGray, 90, 100},
		{LightRed, 91, 101},
		{LightGreen, 92, 102},
		{Yellow, 93, 103},
		{LightBlue, 94, 104},
		{LightMagenta, 95, 105},
		{LightCyan, 96, 106},
		{White, 97, 107},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			assert.Equal(t, tt.fg, tt.c.ANSIForeground())
			assert.Equal(t, tt.bg, tt.c.ANSIBackground())
		})
	}
}

// TestColorWindowsDistinct verifies every color maps to its own attribute
func TestColorWindowsDistinct(t *testing.T) {
	fgs := make(map[uint16]Color)
	bgs := make(map[uint16]Color)
	for c := Color(0); c < ColorCount; c++ {
		fg, bg := c.WindowsForeground(), c.WindowsBackground()
		if prev, dup := fgs[fg]; dup {
			t.Errorf("%s and %s share foreground attribute %#x", prev, c, fg)
		}
		if prev, dup := bgs[bg]; dup {
			t.Errorf("%s and %s share background attribute %#x", prev, c, bg)
		}
		fgs[fg], bgs[bg] = c, c

		assert.Equal(t, fg<<4, bg, "background is the foreground shifted one nibble for %s", c)
	}

	assert.Equal(t, uint16(foregroundRed|foregroundGreen|foregroundIntensity), Yellow.WindowsForeground())
	assert.Equal(t, uint16(backgroundBlue), Blue.WindowsBackground())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"Light-Blue", LightBlue},
		{"light_magenta", LightMagenta},
		{" dark gray ", DarkGray},
		{"WHITE", White},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	_, err := ParseColor("orange")
	assert.EqualError(t, err, `unknown color "orange"`)
}

func TestColorText(t *testing.T) {
	b, err := LightCyan.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "light-cyan", string(b))

	var c Color
	require.NoError(t, c.UnmarshalText([]byte("yellow")))
	assert.Equal(t, Yellow, c)
	assert.Error(t, c.UnmarshalText([]byte("mauve")))
	assert.Equal(t, Yellow, c, "failed unmarshal leaves the value untouched")

	_, err = Color(16).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Color(16)", Color(16).String())
	assert.False(t, Color(16).Valid())
}
