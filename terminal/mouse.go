package terminal

import "time"

// doubleClickInterval bounds the gap between presses reported as a double click
const doubleClickInterval = 400 * time.Millisecond

// Button numbers in xterm mouse reports (low two bits)
const (
	mouseBtnLeft    = 0
	mouseBtnMiddle  = 1
	mouseBtnRight   = 2
	mouseBtnRelease = 3 // X10 and urxvt: release of any button
)

// Flag bits in xterm mouse reports
const (
	mouseFlagShift  = 4
	mouseFlagAlt    = 8
	mouseFlagCtrl   = 16
	mouseFlagMotion = 32
	mouseFlagWheel  = 64
	mouseFlagExtra  = 128 // Buttons 8-11
)

// mouseTracker turns xterm mouse reports into events
// Terminals report single transitions, so held buttons and the last press are tracked here
type mouseTracker struct {
	left, right bool

	lastButton int
	lastX      int
	lastY      int
	lastAt     time.Time
	hasLast    bool

	now func() time.Time
}

// report decodes one mouse report; x and y are zero-based
// release is set for SGR 'm' reports, other encodings signal release through the button bits
func (m *mouseTracker) report(cb, x, y int, release bool, emit func(Event)) {
	var mods ControlKeyState
	if cb&mouseFlagShift != 0 {
		mods |= ModShift
	}
	if cb&mouseFlagAlt != 0 {
		mods |= ModLeftAlt
	}
	if cb&mouseFlagCtrl != 0 {
		mods |= ModLeftCtrl
	}

	button := cb & 3
	switch {
	case cb&mouseFlagExtra != 0:
		return

	case cb&mouseFlagWheel != 0:
		if release {
			return
		}
		switch button {
		case 0:
			emit(MouseWheel(x, y, WheelDelta, mods))
		case 1:
			emit(MouseWheel(x, y, -WheelDelta, mods))
		case 2:
			emit(MouseHorizontalWheel(x, y, -WheelDelta, mods))
		case 3:
			emit(MouseHorizontalWheel(x, y, WheelDelta, mods))
		}

	case cb&mouseFlagMotion != 0:
		emit(MouseMove(x, y, mods))

	case release || button == mouseBtnRelease:
		if button == mouseBtnRelease {
			m.left, m.right = false, false
		} else {
			m.setButton(button, false)
		}
		emit(MouseButtonChange(x, y, m.left, m.right, mods))

	default:
		m.setButton(button, true)
		now := m.now()
		if m.hasLast && m.lastButton == button && m.lastX == x && m.lastY == y &&
			now.Sub(m.lastAt) <= doubleClickInterval {
			m.hasLast = false
			emit(MouseDoubleClick(x, y, m.left, m.right, mods))
			return
		}
		m.lastButton, m.lastX, m.lastY, m.lastAt = button, x, y, now
		m.hasLast = true
		emit(MouseButtonChange(x, y, m.left, m.right, mods))
	}
}

func (m *mouseTracker) setButton(button int, down bool) {
	switch button {
	case mouseBtnLeft:
		m.left = down
	case mouseBtnRight:
		m.right = down
	}
}
