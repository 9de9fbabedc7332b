package terminal

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrUnsupportedTerminal matches every *UnsupportedTerminalError via errors.Is
	ErrUnsupportedTerminal = errors.New("unsupported terminal")
	// ErrUnsupportedPlatform is returned by Open on platforms without a native backend
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrClosed is returned by operations on a closed console
	ErrClosed = errors.New("console closed")
)

// SyscallError reports a failed platform call with its native code and message
type SyscallError struct {
	Call    string
	Code    uint32
	Message string
	Err     error
}

func (e *SyscallError) Error() string {
	return fmt.Sprintf("system call %s failed with code: [%d] %s", e.Call, e.Code, e.Message)
}

func (e *SyscallError) Unwrap() error {
	return e.Err
}

// newSyscallError wraps err from call, extracting the errno when present
func newSyscallError(call string, err error) error {
	if err == nil {
		return nil
	}
	se := &SyscallError{Call: call, Message: err.Error(), Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		se.Code = uint32(errno)
	}
	return se
}

// IOError reports a failed read or write against the terminal device
type IOError struct {
	Call string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error when calling %s: %v", e.Call, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(call string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Call: call, Err: err}
}

// UnsupportedTerminalError reports a missing or unrecognized terminal type
type UnsupportedTerminalError struct {
	Details string
}

func (e *UnsupportedTerminalError) Error() string {
	return "unsupported terminal: " + e.Details
}

// Is makes errors.Is(err, ErrUnsupportedTerminal) hold
func (e *UnsupportedTerminalError) Is(target error) bool {
	return target == ErrUnsupportedTerminal
}
