package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Empty", text: "", want: nil},
		{name: "Trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "CRLF", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "Blank lines kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "Tabs expanded", text: "\tx\nab\ty", want: []string{"    x", "ab  y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer("t", tt.text, 4)
			assert.Equal(t, tt.want, b.lines)
			assert.Equal(t, len(tt.want), b.lineCount())
		})
	}
}

func TestLoadBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	b, err := loadBuffer(path, 4)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", b.name)
	assert.Equal(t, []string{"one", "two"}, b.lines)

	_, err = loadBuffer(filepath.Join(t.TempDir(), "missing.txt"), 4)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, scratchName, newScratchBuffer().name)
	assert.Zero(t, newScratchBuffer().lineCount())
}
