package pronto

// Event is a raw input event delivered by a Device.
// The set of events is closed; Window ignores anything it does not know.
type Event interface {
	isEvent()
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

// KeyPressEvent reports a key transition to pressed.
type KeyPressEvent struct {
	Key Key
}

// KeyReleaseEvent reports a key transition to released.
type KeyReleaseEvent struct {
	Key Key
}

// MouseButtonPressEvent reports a mouse button transition to pressed.
type MouseButtonPressEvent struct {
	Button Button
}

// MouseButtonReleaseEvent reports a mouse button transition to released.
type MouseButtonReleaseEvent struct {
	Button Button
}

// MouseWheelEvent reports a scroll of Delta wheel steps.
// Positive values scroll up (away from the user).
type MouseWheelEvent struct {
	Delta float32
}

// MouseMoveEvent reports the cursor position in window-local pixels.
type MouseMoveEvent struct {
	X, Y float32
}

func (CloseEvent) isEvent()              {}
func (KeyPressEvent) isEvent()           {}
func (KeyReleaseEvent) isEvent()         {}
func (MouseButtonPressEvent) isEvent()   {}
func (MouseButtonReleaseEvent) isEvent() {}
func (MouseWheelEvent) isEvent()         {}
func (MouseMoveEvent) isEvent()          {}

// isTermination reports whether e asks the frame loop to stop.
func isTermination(e Event) bool {
	switch e := e.(type) {
	case CloseEvent:
		return true
	case KeyPressEvent:
		return e.Key == KeyEscape
	}
	return false
}
