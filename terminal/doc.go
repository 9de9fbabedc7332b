// @focus: #sys { term }
// Package terminal provides a portable console for drawing colored text and frames
// into rectangular regions and for receiving keyboard, mouse and resize events.
//
// Backends:
//   - POSIX: raw mode on the tty device, ANSI sequences chosen from TERM, ioctl size query
//   - Windows: console screen buffer writes and console input records
//   - tcell: any tcell.Screen, including the in-memory Simulation used by tests
//
// Regions carved from one console share its drawing state, so all calls against a
// console and its regions must come from a single goroutine.
package terminal
