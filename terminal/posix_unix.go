//go:build unix

// @lixen: #focus{sys[term,io],input[posix]}
package terminal

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollInterval is the idle wait in milliseconds between terminal size checks
const pollInterval = 100

// fallbackWidth and fallbackHeight apply when the device reports a zero size
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// posixConsole drives a terminal device with ANSI sequences
type posixConsole struct {
	cfg Config
	log *zap.Logger

	tty      *os.File
	fd       int
	oldState *term.State

	surface *ansiSurface
	decoder *inputDecoder
	queue   *eventQueue
	sigCh   chan os.Signal
	readBuf []byte

	size reportedSize

	closed bool
}

// openPOSIX resolves the terminal family, enters raw mode and switches to the alternate screen
func openPOSIX(cfg Config, o *options) (*posixConsole, error) {
	log := o.logger()
	seq, err := LookupSequences(cfg.Term)
	if err != nil {
		return nil, err
	}
	log.Debug("terminal family resolved", zap.String("term", cfg.Term), zap.String("family", seq.Name))

	tty, err := os.OpenFile(cfg.TTY, os.O_RDWR, 0)
	if err != nil {
		return nil, newIOError("open "+cfg.TTY, err)
	}
	fd := int(tty.Fd())

	w, h, err := windowSize(fd)
	if err != nil {
		tty.Close()
		return nil, err
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		tty.Close()
		return nil, newSyscallError("tcsetattr", err)
	}

	c := &posixConsole{
		cfg:      cfg,
		log:      log,
		tty:      tty,
		fd:       fd,
		oldState: old,
		surface:  newANSISurface(tty, seq, w, h, cfg.DebugFill),
		decoder:  newInputDecoder(o.clock()),
		queue:    newEventQueue(cfg.QueueSize, log),
		sigCh:    make(chan os.Signal, 1),
		readBuf:  make([]byte, 256),
		size:     reportedSize{width: w, height: h},
	}
	signal.Notify(c.sigCh, syscall.SIGWINCH)
	registerEmergencyRestore(func() { term.Restore(fd, old) })

	if err := c.surface.writeSequences(seq.EnterCA, seq.HideCursor, seq.EnterKeypad, seq.EnterMouse); err != nil {
		c.Close()
		return nil, err
	}

	log.Debug("console opened", zap.Int("width", w), zap.Int("height", h))
	return c, nil
}

// windowSize queries the device size via TIOCGWINSZ
func windowSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, newSyscallError("ioctl(TIOCGWINSZ)", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight, nil
	}
	return int(ws.Col), int(ws.Row), nil
}

func (c *posixConsole) Clear() error {
	if c.closed {
		return ErrClosed
	}
	return c.surface.clearScreen()
}

// FullScreen re-queries the device so the region matches the live size
func (c *posixConsole) FullScreen() (Region, error) {
	if c.closed {
		return nil, ErrClosed
	}
	w, h, err := windowSize(c.fd)
	if err != nil {
		return nil, err
	}
	if w != c.surface.width || h != c.surface.height {
		c.surface.resize(w, h)
	}
	return newRegion(c.surface, 0, 0, w, h), nil
}

func (c *posixConsole) NextEvent() (Event, error) {
	for {
		if c.closed {
			return Event{}, ErrClosed
		}
		if ev, ok := c.queue.pop(); ok {
			return ev, nil
		}

		select {
		case <-c.sigCh:
			if err := c.checkResize(); err != nil {
				return Event{}, err
			}
			continue
		default:
		}

		timeout := pollInterval
		if c.decoder.pending() {
			timeout = int(c.cfg.EscapeTimeout.Milliseconds())
		}

		fds := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return Event{}, newSyscallError("poll", err)
		}

		if n == 0 {
			// Idle: resolve a dangling escape, then look for resizes that raised no signal
			if c.decoder.pending() {
				c.decoder.flush(c.push)
				continue
			}
			if err := c.checkResize(); err != nil {
				return Event{}, err
			}
			continue
		}

		rn, err := unix.Read(c.fd, c.readBuf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return Event{}, newIOError("read", err)
		}
		if rn == 0 {
			return Event{}, newIOError("read", os.ErrClosed)
		}
		c.decoder.feed(c.readBuf[:rn], c.push)
	}
}

func (c *posixConsole) push(ev Event) {
	c.queue.push(ev)
}

// checkResize queues a Resize when the device size differs from the cached one
func (c *posixConsole) checkResize() error {
	w, h, err := windowSize(c.fd)
	if err != nil {
		return err
	}
	if !c.size.update(w, h) {
		return nil
	}
	if w != c.surface.width || h != c.surface.height {
		c.surface.resize(w, h)
	}
	c.log.Debug("resize detected", zap.Int("width", w), zap.Int("height", h))
	c.queue.push(Resize(w, h))
	return nil
}

// Close leaves the alternate screen, restores the saved termios and closes the device
func (c *posixConsole) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	signal.Stop(c.sigCh)
	clearEmergencyRestore()

	var errs []error
	seq := c.surface.seq
	if err := c.surface.writeSequences(seq.ExitMouse, seq.ExitKeypad, seq.ResetAllAttributes, seq.ShowCursor, seq.ExitCA); err != nil {
		errs = append(errs, err)
	}
	if err := term.Restore(c.fd, c.oldState); err != nil {
		c.log.Warn("failed to restore terminal mode", zap.Error(err))
		errs = append(errs, newSyscallError("tcsetattr", err))
	}
	if err := c.tty.Close(); err != nil {
		errs = append(errs, newIOError("close", err))
	}

	c.log.Debug("console closed")
	return errors.Join(errs...)
}
