package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/rut/terminal"
)

// Theme holds colors, frame style and key bindings, loadable from TOML
type Theme struct {
	Status StatusTheme `toml:"status"`
	Buffer BufferTheme `toml:"buffer"`
	Keys   KeyTheme    `toml:"keys"`
}

// StatusTheme styles the bottom status row
type StatusTheme struct {
	Bg   terminal.Color `toml:"bg"`
	Fg   terminal.Color `toml:"fg"`
	Text string         `toml:"text"`
}

// BufferTheme styles the framed buffer view
type BufferTheme struct {
	Bg       terminal.Color      `toml:"bg"`
	Fg       terminal.Color      `toml:"fg"`
	FrameFg  terminal.Color      `toml:"frame_fg"`
	Frame    terminal.FrameStyle `toml:"frame"`
	TabWidth int                 `toml:"tab_width"`
}

// KeyTheme lists the bindings for each action; any binding triggers it
type KeyTheme struct {
	Quit     []terminal.Binding `toml:"quit"`
	LineUp   []terminal.Binding `toml:"line_up"`
	LineDown []terminal.Binding `toml:"line_down"`
	PageUp   []terminal.Binding `toml:"page_up"`
	PageDown []terminal.Binding `toml:"page_down"`
	Top      []terminal.Binding `toml:"top"`
	Bottom   []terminal.Binding `toml:"bottom"`
}

const welcomeText = "*** WELCOME TO R.E.D ***"

// DefaultTheme returns the built-in look: dark red status bar and double frame
func DefaultTheme() Theme {
	return Theme{
		Status: StatusTheme{
			Bg:   terminal.Red,
			Fg:   terminal.White,
			Text: welcomeText,
		},
		Buffer: BufferTheme{
			Bg:       terminal.Black,
			Fg:       terminal.White,
			FrameFg:  terminal.Red,
			Frame:    terminal.FrameDouble,
			TabWidth: 4,
		},
		Keys: KeyTheme{
			Quit:     mustBindings("escape", "ctrl+q", "ctrl+c"),
			LineUp:   mustBindings("up", "k"),
			LineDown: mustBindings("down", "j"),
			PageUp:   mustBindings("page_up", "ctrl+u"),
			PageDown: mustBindings("page_down", "ctrl+d", "space"),
			Top:      mustBindings("home", "g"),
			Bottom:   mustBindings("end", "G"),
		},
	}
}

// LoadTheme overlays the TOML file at path on the default theme
// An empty path returns the defaults
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("failed to read theme: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&theme); err != nil {
		return theme, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	if err := theme.Validate(); err != nil {
		return theme, err
	}
	return theme, nil
}

// Validate checks values the decoder cannot
func (t Theme) Validate() error {
	if t.Buffer.TabWidth < 1 || t.Buffer.TabWidth > 16 {
		return fmt.Errorf("buffer.tab_width must be 1-16, got %d", t.Buffer.TabWidth)
	}
	if len(t.Keys.Quit) == 0 {
		return fmt.Errorf("keys.quit must have at least one binding")
	}
	return nil
}

func mustBindings(specs ...string) []terminal.Binding {
	out := make([]terminal.Binding, len(specs))
	for i, s := range specs {
		b, err := terminal.ParseBinding(s)
		if err != nil {
			panic(err)
		}
		out[i] = b
	}
	return out
}

func matchesAny(bindings []terminal.Binding, ev terminal.Event) bool {
	for _, b := range bindings {
		if b.Matches(ev) {
			return true
		}
	}
	return false
}
