package terminal

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Backend names accepted by Config.Backend
const (
	BackendNative = "native" // POSIX terminal or Windows console, by build platform
	BackendTcell  = "tcell"
)

// Config holds console settings, loaded from the environment
type Config struct {
	Term          string        `envconfig:"TERM"`
	TTY           string        `envconfig:"RUT_TTY" default:"/dev/tty"`
	Backend       string        `envconfig:"RUT_BACKEND" default:"native"`
	DebugFill     bool          `envconfig:"RUT_DEBUG_FILL" default:"false"`
	EscapeTimeout time.Duration `envconfig:"RUT_ESCAPE_TIMEOUT" default:"50ms"`
	QueueSize     int           `envconfig:"RUT_QUEUE_SIZE" default:"512"`
}

// DefaultConfig returns the built-in defaults without reading the environment
func DefaultConfig() Config {
	return Config{
		TTY:           "/dev/tty",
		Backend:       BackendNative,
		EscapeTimeout: DefaultEscapeTimeout,
		QueueSize:     DefaultQueueSize,
	}
}

// LoadConfig reads Config from environment variables
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load console config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNative, BackendTcell:
	default:
		return fmt.Errorf("invalid backend %q: want %q or %q", c.Backend, BackendNative, BackendTcell)
	}
	if c.EscapeTimeout <= 0 {
		return fmt.Errorf("escape timeout must be positive, got %s", c.EscapeTimeout)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue size must be positive, got %d", c.QueueSize)
	}
	return nil
}

// Option customizes Open
type Option func(*options)

type options struct {
	cfg     *Config
	term    *string
	tty     *string
	backend *string
	log     *zap.Logger
	now     func() time.Time
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig replaces environment loading with cfg
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithTerm overrides the terminal type
func WithTerm(term string) Option {
	return func(o *options) { o.term = &term }
}

// WithTTY overrides the terminal device path
func WithTTY(path string) Option {
	return func(o *options) { o.tty = &path }
}

// WithBackend selects BackendNative or BackendTcell
func WithBackend(name string) Option {
	return func(o *options) { o.backend = &name }
}

// WithLogger sets the diagnostic logger; the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// withClock replaces time.Now for double-click timing
func withClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func (o *options) apply(cfg Config) Config {
	if o.term != nil {
		cfg.Term = *o.term
	}
	if o.tty != nil {
		cfg.TTY = *o.tty
	}
	if o.backend != nil {
		cfg.Backend = *o.backend
	}
	return cfg
}

// config resolves the effective Config, reading the environment unless WithConfig was given
func (o *options) config() (Config, error) {
	var cfg Config
	if o.cfg != nil {
		cfg = *o.cfg
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	cfg = o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configOrDefault is config without environment access
func (o *options) configOrDefault() Config {
	cfg := DefaultConfig()
	if o.cfg != nil {
		cfg = *o.cfg
	}
	cfg = o.apply(cfg)
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.EscapeTimeout <= 0 {
		cfg.EscapeTimeout = DefaultEscapeTimeout
	}
	return cfg
}

func (o *options) logger() *zap.Logger {
	if o.log == nil {
		return zap.NewNop()
	}
	return o.log
}

func (o *options) clock() func() time.Time {
	if o.now == nil {
		return time.Now
	}
	return o.now
}
