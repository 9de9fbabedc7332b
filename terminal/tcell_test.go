package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T, w, h int, opts ...Option) *Simulation {
	t.Helper()
	sim, err := NewSimulation(w, h, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { sim.Close() })
	return sim
}

func nextEvent(t *testing.T, c Console) Event {
	t.Helper()
	ev, err := c.NextEvent()
	require.NoError(t, err)
	return ev
}

func TestConvertTcellKey(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		want  Key
		state ControlKeyState
	}{
		{"Rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), CharKey('a'), ModNone},
		{"Capital", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), CharKey('A'), ModShift},
		{"Alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), CharKey('x'), ModLeftAlt},
		{"Ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), CharKey('q'), ModLeftCtrl},
		{"Up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), NamedKey(KeyUp), ModNone},
		{"Shift end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModShift), NamedKey(KeyEnd), ModShift},
		{"F5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), FunctionKey(5), ModNone},
		{"F24", tcell.NewEventKey(tcell.KeyF24, 0, tcell.ModCtrl), FunctionKey(24), ModLeftCtrl},
		{"Backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), NamedKey(KeyTab), ModShift},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), NamedKey(KeyEscape), ModNone},
		{"Delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), NamedKey(KeyDelete), ModNone},
		{"Print", tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone), NamedKey(KeyPrintScreen), ModNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, mods, ok := convertTcellKey(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, k)
			assert.Equal(t, tt.state, mods)
		})
	}

	_, _, ok := convertTcellKey(tcell.NewEventKey(tcell.KeyCancel, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestSimulationKeys(t *testing.T) {
	sim := newTestSimulation(t, 20, 5)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyPgDn, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'c', tcell.ModCtrl)

	assert.Equal(t, KeyPressed(CharKey('j'), ModNone), nextEvent(t, sim))
	assert.Equal(t, KeyPressed(NamedKey(KeyPageDown), ModNone), nextEvent(t, sim))
	assert.Equal(t, KeyPressed(CharKey('c'), ModLeftCtrl), nextEvent(t, sim))
}

func TestSimulationMouse(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(t, 20, 10, withClock(clock.now))

	sim.InjectMouse(3, 4, tcell.ButtonPrimary, tcell.ModNone)
	sim.InjectMouse(6, 4, tcell.ButtonPrimary, tcell.ModNone)
	sim.InjectMouse(6, 4, tcell.ButtonNone, tcell.ModNone)
	sim.InjectMouse(1, 1, tcell.ButtonSecondary, tcell.ModCtrl)
	sim.InjectMouse(1, 1, tcell.ButtonNone, tcell.ModNone)
	sim.InjectMouse(2, 2, tcell.WheelDown, tcell.ModNone)
	sim.InjectMouse(2, 2, tcell.WheelRight, tcell.ModNone)
	sim.InjectMouse(9, 9, tcell.ButtonNone, tcell.ModNone)

	want := []Event{
		MouseButtonChange(3, 4, true, false, ModNone),
		MouseMove(6, 4, ModNone),
		MouseButtonChange(6, 4, false, false, ModNone),
		MouseButtonChange(1, 1, false, true, ModLeftCtrl),
		MouseButtonChange(1, 1, false, false, ModNone),
		MouseWheel(2, 2, -WheelDelta, ModNone),
		MouseHorizontalWheel(2, 2, WheelDelta, ModNone),
		MouseMove(9, 9, ModNone),
	}
	for i, w := range want {
		assert.Equal(t, w, nextEvent(t, sim), "event %d", i)
	}
}

func TestSimulationDoubleClick(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(t, 20, 10, withClock(clock.now))

	sim.InjectMouse(5, 5, tcell.ButtonPrimary, tcell.ModNone)
	sim.InjectMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	assert.Equal(t, EventMouseButton, nextEvent(t, sim).Type)
	assert.Equal(t, EventMouseButton, nextEvent(t, sim).Type)

	clock.advance(150 * time.Millisecond)
	sim.InjectMouse(5, 5, tcell.ButtonPrimary, tcell.ModNone)
	assert.Equal(t, MouseDoubleClick(5, 5, true, false, ModNone), nextEvent(t, sim))
}

// TestSimulationResize checks a notification matching the live size is dropped
func TestSimulationResize(t *testing.T) {
	sim := newTestSimulation(t, 20, 10)

	sim.Resize(30, 8)
	assert.Equal(t, Resize(30, 8), nextEvent(t, sim))

	root, err := sim.FullScreen()
	require.NoError(t, err)
	assert.Equal(t, 30, root.Width())
	assert.Equal(t, 8, root.Height())

	require.NoError(t, sim.Screen().PostEvent(tcell.NewEventResize(30, 8)))
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, KeyPressed(NamedKey(KeyEnter), ModNone), nextEvent(t, sim))
}

func TestSimulationColors(t *testing.T) {
	sim := newTestSimulation(t, ColorCount, 1)
	root, err := sim.FullScreen()
	require.NoError(t, err)

	for c := Color(0); c < ColorCount; c++ {
		require.NoError(t, root.PrintChar(int(c), 0, c, White-c, 'x'))
	}
	for c := Color(0); c < ColorCount; c++ {
		ch, bg, fg := sim.Cell(int(c), 0)
		assert.Equal(t, 'x', ch)
		assert.Equal(t, c, bg, "bg %s", c)
		assert.Equal(t, White-c, fg, "fg %s", White-c)
	}
}

func TestSimulationWideText(t *testing.T) {
	sim := newTestSimulation(t, 6, 2)
	root, err := sim.FullScreen()
	require.NoError(t, err)

	require.NoError(t, root.Print(0, 0, Black, White, "a世b"))
	assert.Equal(t, "a世b  ", sim.Row(0))
	ch, _, _ := sim.Cell(1, 0)
	assert.Equal(t, '世', ch)
}

func TestSimulationClosed(t *testing.T) {
	sim, err := NewSimulation(10, 5)
	require.NoError(t, err)
	require.NoError(t, sim.Close())
	require.NoError(t, sim.Close())

	_, err = sim.NextEvent()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = sim.FullScreen()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, sim.Clear(), ErrClosed)
}

func TestNewTcellConsole(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(12, 3)

	c := NewTcellConsole(screen, WithConfig(Config{QueueSize: 8}))
	defer c.Close()

	root, err := c.FullScreen()
	require.NoError(t, err)
	assert.Equal(t, 12, root.Width())
	require.NoError(t, c.Clear())

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	assert.Equal(t, KeyPressed(CharKey('z'), ModNone), nextEvent(t, c))
}
