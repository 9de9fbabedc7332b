package terminal

import "strings"

// FunctionSequences is a terminal family's table of control sequences
// Tables are immutable once selected for a console
type FunctionSequences struct {
	Name string // Family name the table was registered under

	EnterCA            string // Alternate screen on
	ExitCA             string // Alternate screen off
	ShowCursor         string
	HideCursor         string
	ClearScreen        string
	ResetAllAttributes string
	Underline          string
	Bold               string
	Blink              string
	Reverse            string
	EnterKeypad        string
	ExitKeypad         string
	EnterMouse         string
	ExitMouse          string
}

// Attribute sequences shared by every family
const (
	seqUnderline = "\x1b[4m"
	seqBold      = "\x1b[1m"
	seqBlink     = "\x1b[5m"
	seqReverse   = "\x1b[7m"
)

// Mouse tracking: press/release (1000), drag (1002), urxvt (1015) and SGR (1006) encodings
const (
	seqEnterMouse = "\x1b[?1000h\x1b[?1002h\x1b[?1015h\x1b[?1006h"
	seqExitMouse  = "\x1b[?1006l\x1b[?1015l\x1b[?1002l\x1b[?1000l"
)

var (
	rxvt256ColorSequences = FunctionSequences{
		Name:               "rxvt-256color",
		EnterCA:            "\x1b7\x1b[?47h",
		ExitCA:             "\x1b[2J\x1b[?47l\x1b8",
		ShowCursor:         "\x1b[?25h",
		HideCursor:         "\x1b[?25l",
		ClearScreen:        "\x1b[H\x1b[2J",
		ResetAllAttributes: "\x1b[m",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
		EnterKeypad:        "\x1b=",
		ExitKeypad:         "\x1b>",
		EnterMouse:         seqEnterMouse,
		ExitMouse:          seqExitMouse,
	}

	etermSequences = FunctionSequences{
		Name:               "Eterm",
		EnterCA:            "\x1b7\x1b[?47h",
		ExitCA:             "\x1b[2J\x1b[?47l\x1b8",
		ShowCursor:         "\x1b[?25h",
		HideCursor:         "\x1b[?25l",
		ClearScreen:        "\x1b[H\x1b[2J",
		ResetAllAttributes: "\x1b[m",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
	}

	screenSequences = FunctionSequences{
		Name:               "screen",
		EnterCA:            "\x1b[?1049h",
		ExitCA:             "\x1b[?1049l",
		ShowCursor:         "\x1b[34h\x1b[?25h",
		HideCursor:         "\x1b[?25l",
		ClearScreen:        "\x1b[H\x1b[2J",
		ResetAllAttributes: "\x1b[m",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
		EnterKeypad:        "\x1b[?1h\x1b=",
		ExitKeypad:         "\x1b[?1l\x1b>",
		EnterMouse:         seqEnterMouse,
		ExitMouse:          seqExitMouse,
	}

	rxvtUnicodeSequences = FunctionSequences{
		Name:               "rxvt-unicode",
		EnterCA:            "\x1b[?1049h",
		ExitCA:             "\x1b[r\x1b[?1049l",
		ShowCursor:         "\x1b[?25h",
		HideCursor:         "\x1b[?25l",
		ClearScreen:        "\x1b[H\x1b[2J",
		ResetAllAttributes: "\x1b[m\x1b(B",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
		EnterKeypad:        "\x1b=",
		ExitKeypad:         "\x1b>",
		EnterMouse:         seqEnterMouse,
		ExitMouse:          seqExitMouse,
	}

	// Linux console: no alternate screen, keypad or mouse tracking
	linuxSequences = FunctionSequences{
		Name:               "linux",
		ShowCursor:         "\x1b[?25h\x1b[?0c",
		HideCursor:         "\x1b[?25l\x1b[?1c",
		ClearScreen:        "\x1b[H\x1b[J",
		ResetAllAttributes: "\x1b[0;10m",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
	}

	xtermSequences = FunctionSequences{
		Name:               "xterm",
		EnterCA:            "\x1b[?1049h",
		ExitCA:             "\x1b[?1049l",
		ShowCursor:         "\x1b[?12l\x1b[?25h",
		HideCursor:         "\x1b[?25l",
		ClearScreen:        "\x1b[H\x1b[2J",
		ResetAllAttributes: "\x1b(B\x1b[m",
		Underline:          seqUnderline,
		Bold:               seqBold,
		Blink:              seqBlink,
		Reverse:            seqReverse,
		EnterKeypad:        "\x1b[?1h\x1b=",
		ExitKeypad:         "\x1b[?1l\x1b>",
		EnterMouse:         seqEnterMouse,
		ExitMouse:          seqExitMouse,
	}
)

// terminalFamilies is searched in order; the first substring hit wins
var terminalFamilies = []*FunctionSequences{
	&rxvt256ColorSequences,
	&etermSequences,
	&screenSequences,
	&rxvtUnicodeSequences,
	&linuxSequences,
	&xtermSequences,
}

// LookupSequences resolves a TERM value to its family table
// Exact name match wins, then the first family whose name is contained in term
func LookupSequences(term string) (FunctionSequences, error) {
	if term == "" {
		return FunctionSequences{}, &UnsupportedTerminalError{Details: "TERM environment variable is not set"}
	}
	for _, f := range terminalFamilies {
		if f.Name == term {
			return *f, nil
		}
	}
	for _, f := range terminalFamilies {
		if strings.Contains(term, f.Name) {
			return *f, nil
		}
	}
	return FunctionSequences{}, &UnsupportedTerminalError{Details: "no sequences known for TERM=" + term}
}

// Families returns the registered family names in lookup order
func Families() []string {
	names := make([]string, len(terminalFamilies))
	for i, f := range terminalFamilies {
		names[i] = f.Name
	}
	return names
}
