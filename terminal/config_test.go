package terminal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clearConsoleEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TERM", "RUT_TTY", "RUT_BACKEND", "RUT_DEBUG_FILL", "RUT_ESCAPE_TIMEOUT", "RUT_QUEUE_SIZE"} {
		// Empty values override envconfig defaults; unset after registering the restore
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConsoleEnv(t)
	t.Setenv("TERM", "xterm-256color")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	want := DefaultConfig()
	want.Term = "xterm-256color"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigEnv(t *testing.T) {
	clearConsoleEnv(t)
	t.Setenv("TERM", "screen")
	t.Setenv("RUT_TTY", "/dev/pts/9")
	t.Setenv("RUT_BACKEND", "tcell")
	t.Setenv("RUT_DEBUG_FILL", "true")
	t.Setenv("RUT_ESCAPE_TIMEOUT", "120ms")
	t.Setenv("RUT_QUEUE_SIZE", "64")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Term:          "screen",
		TTY:           "/dev/pts/9",
		Backend:       BackendTcell,
		DebugFill:     true,
		EscapeTimeout: 120 * time.Millisecond,
		QueueSize:     64,
	}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    string
	}{
		{"RUT_BACKEND", "curses", `invalid backend "curses"`},
		{"RUT_QUEUE_SIZE", "0", "queue size must be positive"},
		{"RUT_QUEUE_SIZE", "many", "failed to load console config"},
		{"RUT_ESCAPE_TIMEOUT", "-1s", "escape timeout must be positive"},
		{"RUT_DEBUG_FILL", "perhaps", "failed to load console config"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearConsoleEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOptionsOverride(t *testing.T) {
	base := DefaultConfig()
	base.Term = "linux"

	o := newOptions([]Option{
		WithConfig(base),
		WithTerm("xterm"),
		WithTTY("/dev/pts/3"),
		WithBackend(BackendTcell),
	})
	cfg, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, "xterm", cfg.Term)
	assert.Equal(t, "/dev/pts/3", cfg.TTY)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, DefaultQueueSize, cfg.QueueSize)

	_, err = newOptions([]Option{WithConfig(base), WithBackend("gui")}).config()
	assert.Error(t, err)
}

func TestOptionsDefaults(t *testing.T) {
	o := newOptions(nil)
	assert.NotNil(t, o.logger())
	assert.NotNil(t, o.clock())

	cfg := newOptions([]Option{WithConfig(Config{})}).configOrDefault()
	assert.Equal(t, DefaultQueueSize, cfg.QueueSize)
	assert.Equal(t, DefaultEscapeTimeout, cfg.EscapeTimeout)

	log := zap.NewExample()
	assert.Same(t, log, newOptions([]Option{WithLogger(log)}).logger())

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o = newOptions([]Option{withClock(func() time.Time { return fixed })})
	assert.Equal(t, fixed, o.clock()())
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(WithConfig(Config{Backend: "gui", EscapeTimeout: time.Second, QueueSize: 1}))
	assert.ErrorContains(t, err, `invalid backend "gui"`)
}
