package terminal

import "fmt"

// EventType distinguishes event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyPressed
	EventKeyReleased
	EventMouseButton      // Button state changed (press or release)
	EventMouseDoubleClick // Second press of the same button in place
	EventMouseHorizontalWheel
	EventMouseWheel
	EventMouseMove
	EventResize
)

// WheelDelta is the wheel amount reported for one notch
const WheelDelta = 120

// Event is a keyboard, mouse or resize notification
// Fields not relevant to Type are zero
type Event struct {
	Type  EventType
	Key   Key             // Key events
	State ControlKeyState // Key and mouse events

	// Mouse events, zero-based cell coordinates
	X, Y        int
	LeftButton  bool
	RightButton bool
	Amount      int // Wheel events: positive is up/right, WheelDelta per notch

	// Resize events
	Width, Height int
}

// KeyPressed returns a key-down event
func KeyPressed(k Key, state ControlKeyState) Event {
	return Event{Type: EventKeyPressed, Key: k, State: state}
}

// KeyReleased returns a key-up event
func KeyReleased(k Key, state ControlKeyState) Event {
	return Event{Type: EventKeyReleased, Key: k, State: state}
}

// MouseButtonChange returns a button state change; left/right report the buttons now held
func MouseButtonChange(x, y int, left, right bool, state ControlKeyState) Event {
	return Event{Type: EventMouseButton, X: x, Y: y, LeftButton: left, RightButton: right, State: state}
}

// MouseDoubleClick returns a double-click event
func MouseDoubleClick(x, y int, left, right bool, state ControlKeyState) Event {
	return Event{Type: EventMouseDoubleClick, X: x, Y: y, LeftButton: left, RightButton: right, State: state}
}

// MouseWheel returns a vertical wheel event
func MouseWheel(x, y, amount int, state ControlKeyState) Event {
	return Event{Type: EventMouseWheel, X: x, Y: y, Amount: amount, State: state}
}

// MouseHorizontalWheel returns a horizontal wheel event
func MouseHorizontalWheel(x, y, amount int, state ControlKeyState) Event {
	return Event{Type: EventMouseHorizontalWheel, X: x, Y: y, Amount: amount, State: state}
}

// MouseMove returns a pointer motion event
func MouseMove(x, y int, state ControlKeyState) Event {
	return Event{Type: EventMouseMove, X: x, Y: y, State: state}
}

// Resize returns a resize event carrying the new full-screen size
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// IsKey reports whether e is a key press or release
func (e Event) IsKey() bool {
	return e.Type == EventKeyPressed || e.Type == EventKeyReleased
}

// IsMouse reports whether e is any mouse event
func (e Event) IsMouse() bool {
	return e.Type >= EventMouseButton && e.Type <= EventMouseMove
}

func (t EventType) String() string {
	switch t {
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventMouseButton:
		return "MouseButtonStateChange"
	case EventMouseDoubleClick:
		return "MouseDoubleClick"
	case EventMouseHorizontalWheel:
		return "MouseHorizontalWheel"
	case EventMouseWheel:
		return "MouseWheel"
	case EventMouseMove:
		return "MouseMove"
	case EventResize:
		return "Resize"
	default:
		return "None"
	}
}

func (e Event) String() string {
	switch e.Type {
	case EventKeyPressed, EventKeyReleased:
		return fmt.Sprintf("%s{key=%s state=%s}", e.Type, e.Key, e.State)
	case EventMouseButton, EventMouseDoubleClick:
		return fmt.Sprintf("%s{x=%d y=%d left=%t right=%t state=%s}",
			e.Type, e.X, e.Y, e.LeftButton, e.RightButton, e.State)
	case EventMouseWheel, EventMouseHorizontalWheel:
		return fmt.Sprintf("%s{x=%d y=%d amount=%d state=%s}", e.Type, e.X, e.Y, e.Amount, e.State)
	case EventMouseMove:
		return fmt.Sprintf("%s{x=%d y=%d state=%s}", e.Type, e.X, e.Y, e.State)
	case EventResize:
		return fmt.Sprintf("%s{width=%d height=%d}", e.Type, e.Width, e.Height)
	default:
		return e.Type.String()
	}
}
