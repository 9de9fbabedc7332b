package terminal

import "go.uber.org/zap"

// Console is the root handle to a physical terminal or console window
// It owns the device, the cached drawing state and the pending event queue
// Only one console may be open per process; methods must not be called concurrently
type Console interface {
	// Clear erases the whole screen and homes the cursor
	Clear() error

	// FullScreen returns a region spanning the current screen size
	FullScreen() (Region, error)

	// NextEvent blocks until a key, mouse or resize event is available
	NextEvent() (Event, error)

	// Close restores the terminal state; further calls return nil
	Close() error
}

// Open creates the console selected by configuration
// Settings come from the environment (see Config) unless WithConfig is given
func Open(opts ...Option) (Console, error) {
	o := newOptions(opts)
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	log := o.logger()
	log.Debug("opening console",
		zap.String("backend", cfg.Backend),
		zap.String("term", cfg.Term),
		zap.String("tty", cfg.TTY))

	if cfg.Backend == BackendTcell {
		return openTcell(cfg, o)
	}
	return openNative(cfg, o)
}

// reportedSize is the screen size last delivered through a Resize event
type reportedSize struct {
	width, height int
}

// update records (w, h) and reports whether it differs from the last delivered size
// Notifications that leave the size unchanged are collapsed by callers
func (s *reportedSize) update(w, h int) bool {
	if w == s.width && h == s.height {
		return false
	}
	s.width, s.height = w, h
	return true
}
