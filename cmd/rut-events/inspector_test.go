package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rut/terminal"
)

func TestInspectorLog(t *testing.T) {
	in := &inspector{}
	for i := 0; i < maxLog+3; i++ {
		in.handle(terminal.Resize(i, i))
	}
	require.Len(t, in.log, maxLog)
	assert.Equal(t, "Resize{width=3 height=3}", in.log[0])
	assert.Equal(t, fmt.Sprintf("Resize{width=%d height=%d}", maxLog+2, maxLog+2), in.log[maxLog-1])
}

func TestInspectorQuit(t *testing.T) {
	in := &inspector{}
	assert.True(t, in.handle(terminal.KeyPressed(terminal.CharKey('c'), terminal.ModLeftCtrl)))
	assert.True(t, in.handle(terminal.KeyPressed(terminal.CharKey('q'), terminal.ModRightCtrl)))
	assert.False(t, in.handle(terminal.KeyPressed(terminal.CharKey('q'), terminal.ModNone)))
	assert.Len(t, in.log, 1, "quit keys are not logged")
}

func TestInspectorDrag(t *testing.T) {
	in := &inspector{objX: 10, objY: 5, placed: true}

	// Press outside the marker does nothing
	in.handle(terminal.MouseButtonChange(0, 0, true, false, terminal.ModNone))
	assert.False(t, in.dragging)
	in.handle(terminal.MouseButtonChange(0, 0, false, false, terminal.ModNone))

	in.handle(terminal.MouseButtonChange(11, 5, true, false, terminal.ModNone))
	assert.True(t, in.dragging)
	in.handle(terminal.MouseMove(20, 7, terminal.ModNone))
	assert.Equal(t, [2]int{20, 7}, [2]int{in.objX, in.objY})

	in.handle(terminal.MouseButtonChange(20, 7, false, false, terminal.ModNone))
	assert.False(t, in.dragging)
	in.handle(terminal.MouseMove(1, 1, terminal.ModNone))
	assert.Equal(t, [2]int{20, 7}, [2]int{in.objX, in.objY})
}

func TestInspectorRender(t *testing.T) {
	sim, err := terminal.NewSimulation(60, 12)
	require.NoError(t, err)
	defer sim.Close()

	in := &inspector{}
	in.handle(terminal.KeyPressed(terminal.NamedKey(terminal.KeyF5), terminal.ModNone))
	root, err := sim.FullScreen()
	require.NoError(t, err)
	require.NoError(t, in.render(root))

	assert.Contains(t, sim.Row(0), "rut events")
	assert.Contains(t, sim.Row(2), "KeyPressed{key=f5 state=none}")
	assert.Contains(t, sim.Row(6), "[X]")
	assert.Equal(t, [2]int{30, 6}, [2]int{in.objX, in.objY})
	assert.Contains(t, sim.Row(11), "size 60x12")
	assert.Equal(t, terminal.DarkGray, sim.Background(0, 11))
}

// TestInspectorLayout checks the log stops above the spacer row on short screens
func TestInspectorLayout(t *testing.T) {
	tests := []struct {
		name    string
		h       int
		logRows int
	}{
		{"Short", 8, 4},
		{"Minimal", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := terminal.NewSimulation(40, tt.h)
			require.NoError(t, err)
			defer sim.Close()

			in := &inspector{objX: 30, objY: 0, placed: true}
			for i := 0; i < maxLog; i++ {
				in.handle(terminal.Resize(i, i))
			}
			root, err := sim.FullScreen()
			require.NoError(t, err)
			require.NoError(t, in.render(root))

			for i := 0; i < tt.logRows; i++ {
				assert.Contains(t, sim.Row(2+i), fmt.Sprintf("Resize{width=%d height=%d}", i, i))
			}
			assert.Empty(t, strings.TrimSpace(sim.Row(tt.h-2)))
			assert.Contains(t, sim.Row(tt.h-1), fmt.Sprintf("size 40x%d", tt.h))
		})
	}
}

func TestRunUntilQuit(t *testing.T) {
	sim, err := terminal.NewSimulation(40, 10)
	require.NoError(t, err)
	defer sim.Close()

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModCtrl)
	require.NoError(t, run(sim))

	found := false
	for y := 0; y < 10; y++ {
		if strings.Contains(sim.Row(y), "Char('a')") {
			found = true
		}
	}
	assert.True(t, found, "logged key shown on screen")
}
