//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package terminal

// resetTerminalMode is a no-op where no console registered a restore action
func resetTerminalMode() {}
