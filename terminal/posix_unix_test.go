//go:build linux

package terminal

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer collects the terminal output read from the pty master
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

type ptyHarness struct {
	master *os.File
	slave  *os.File
	out    *syncBuffer
}

func newPtyHarness(t *testing.T) *ptyHarness {
	t.Helper()
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	h := &ptyHarness{master: master, slave: slave, out: &syncBuffer{}}
	go io.Copy(h.out, master)
	t.Cleanup(func() {
		slave.Close()
		master.Close()
	})
	return h
}

func (h *ptyHarness) open(t *testing.T) *posixConsole {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Term = "xterm-256color"
	cfg.TTY = h.slave.Name()
	c, err := openPOSIX(cfg, newOptions(nil))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func (h *ptyHarness) outputContains(t *testing.T, s string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(h.out.String()), []byte(s))
	}, 2*time.Second, 10*time.Millisecond, "output missing %q", s)
}

func TestPOSIXOpenAndDraw(t *testing.T) {
	h := newPtyHarness(t)
	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{Cols: 40, Rows: 12}))
	c := h.open(t)

	h.outputContains(t, "\x1b[?1049h")
	h.outputContains(t, "\x1b[?1006h")

	root, err := c.FullScreen()
	require.NoError(t, err)
	assert.Equal(t, 40, root.Width())
	assert.Equal(t, 12, root.Height())

	require.NoError(t, root.Print(2, 1, Blue, Yellow, "hello"))
	h.outputContains(t, "\x1b[93;44m\x1b[2;3Hhello")

	require.NoError(t, c.Close())
	h.outputContains(t, "\x1b[?1049l")
	require.NoError(t, c.Close())

	_, err = c.NextEvent()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = c.FullScreen()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPOSIXZeroSizeFallback(t *testing.T) {
	h := newPtyHarness(t)
	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{}))
	c := h.open(t)

	root, err := c.FullScreen()
	require.NoError(t, err)
	assert.Equal(t, fallbackWidth, root.Width())
	assert.Equal(t, fallbackHeight, root.Height())
}

func TestPOSIXInput(t *testing.T) {
	h := newPtyHarness(t)
	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{Cols: 80, Rows: 24}))
	c := h.open(t)

	_, err := h.master.Write([]byte("a\x1b[A\x1b[<0;5;3M\x11"))
	require.NoError(t, err)

	want := []Event{
		KeyPressed(CharKey('a'), ModNone),
		KeyPressed(NamedKey(KeyUp), ModNone),
		MouseButtonChange(4, 2, true, false, ModNone),
		KeyPressed(CharKey('q'), ModLeftCtrl),
	}
	for i, w := range want {
		ev, err := c.NextEvent()
		require.NoError(t, err)
		assert.Equal(t, w, ev, "event %d", i)
	}
}

func TestPOSIXLoneEscape(t *testing.T) {
	h := newPtyHarness(t)
	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{Cols: 80, Rows: 24}))
	c := h.open(t)

	_, err := h.master.Write([]byte("\x1b"))
	require.NoError(t, err)

	ev, err := c.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, KeyPressed(NamedKey(KeyEscape), ModNone), ev)
}

// TestPOSIXResize checks a size change is picked up without SIGWINCH reaching the process
func TestPOSIXResize(t *testing.T) {
	h := newPtyHarness(t)
	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{Cols: 80, Rows: 24}))
	c := h.open(t)

	require.NoError(t, pty.Setsize(h.master, &pty.Winsize{Cols: 100, Rows: 30}))
	ev, err := c.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, Resize(100, 30), ev)

	root, err := c.FullScreen()
	require.NoError(t, err)
	assert.Equal(t, 100, root.Width())
}

func TestPOSIXOpenErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Term = "vt52"
	_, err := openPOSIX(cfg, newOptions(nil))
	assert.ErrorIs(t, err, ErrUnsupportedTerminal)

	cfg.Term = "xterm"
	cfg.TTY = t.TempDir() + "/missing"
	_, err = openPOSIX(cfg, newOptions(nil))
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
