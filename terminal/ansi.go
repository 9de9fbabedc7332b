// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi         = []byte("\x1b[")
	csiRIS      = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0     = []byte("\x1b[0m")
	csiCursorOn = []byte("\x1b[?25h")

	// Generic teardown for crash paths, when the family table is not at hand
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiKeypadExit    = []byte("\x1b[?1l\x1b>")
	csiMouseOff      = []byte(seqExitMouse)
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes CUP for zero-based (x, y): ESC[{row};{col}H
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeColors writes SGR ESC[{fg};{bg}m
func writeColors(w *bufio.Writer, bg, fg Color) {
	w.Write(csi)
	writeInt(w, fg.ANSIForeground())
	w.WriteByte(';')
	writeInt(w, bg.ANSIBackground())
	w.WriteByte('m')
}
