package terminal

import (
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyscallError(t *testing.T) {
	assert.NoError(t, newSyscallError("ioctl", nil))

	err := newSyscallError("ioctl(TIOCGWINSZ)", syscall.ENOTTY)
	var se *SyscallError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, uint32(syscall.ENOTTY), se.Code)
	assert.Equal(t, "ioctl(TIOCGWINSZ)", se.Call)
	assert.True(t, errors.Is(err, syscall.ENOTTY))
	assert.Contains(t, err.Error(), "system call ioctl(TIOCGWINSZ) failed with code: [")

	plain := newSyscallError("poll", errors.New("boom"))
	require.True(t, errors.As(plain, &se))
	assert.Zero(t, se.Code)
	assert.Equal(t, "system call poll failed with code: [0] boom", plain.Error())
}

func TestIOError(t *testing.T) {
	assert.NoError(t, newIOError("read", nil))

	err := newIOError("write", io.ErrShortWrite)
	assert.Equal(t, "i/o error when calling write: short write", err.Error())
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}

func TestUnsupportedTerminalError(t *testing.T) {
	var err error = &UnsupportedTerminalError{Details: "TERM=vt52"}
	assert.Equal(t, "unsupported terminal: TERM=vt52", err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedTerminal))
	assert.False(t, errors.Is(err, ErrClosed))
}
