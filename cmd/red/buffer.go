package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/rut/terminal/tui"
)

// buffer is a read-only list of display lines
type buffer struct {
	name  string
	lines []string
}

// scratchName is shown when no file is given
const scratchName = "[scratch]"

func newScratchBuffer() *buffer {
	return &buffer{name: scratchName}
}

// loadBuffer reads path and splits it into lines with tabs expanded
func loadBuffer(path string, tabWidth int) (*buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return newBuffer(filepath.Base(path), string(data), tabWidth), nil
}

func newBuffer(name, text string, tabWidth int) *buffer {
	text = strings.TrimSuffix(text, "\n")
	b := &buffer{name: name}
	if text == "" {
		return b
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		b.lines = append(b.lines, tui.ExpandTabs(line, tabWidth))
	}
	return b
}

func (b *buffer) lineCount() int {
	return len(b.lines)
}
