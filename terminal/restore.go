package terminal

import (
	"io"
	"os"
	"sync"
)

// emergency holds the restore action of the open console for crash paths
var emergency struct {
	sync.Mutex
	restore func()
}

func registerEmergencyRestore(fn func()) {
	emergency.Lock()
	emergency.restore = fn
	emergency.Unlock()
}

func clearEmergencyRestore() {
	emergency.Lock()
	emergency.restore = nil
	emergency.Unlock()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiKeypadExit)
	w.Write(csiCursorOn)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	emergency.Lock()
	restore := emergency.restore
	emergency.restore = nil
	emergency.Unlock()

	// Escape sequences alone don't restore the input mode
	if restore != nil {
		restore()
		return
	}
	resetTerminalMode()
}
