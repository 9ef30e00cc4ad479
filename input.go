package pronto

// InputState tracks keyboard and mouse state across frames.
//
// The pressed maps hold the last known state of every key and button. The
// delta maps hold only transitions delivered since the last Clear, so a
// "just pressed" query is true for exactly one frame.
//
// The zero value is ready to use.
type InputState struct {
	keys       map[Key]bool
	keysDelta  map[Key]bool
	mouse      map[Button]bool
	mouseDelta map[Button]bool
	mouseX     float32
	mouseY     float32
	wheel      float32
	wheelDelta float32
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	s := &InputState{}
	s.init()
	return s
}

func (s *InputState) init() {
	if s.keys != nil {
		return
	}
	s.keys = make(map[Key]bool)
	s.keysDelta = make(map[Key]bool)
	s.mouse = make(map[Button]bool)
	s.mouseDelta = make(map[Button]bool)
}

// Clear starts a new frame: it forgets all transitions and the wheel delta.
// Held state, mouse position and the cumulative wheel are kept.
func (s *InputState) Clear() {
	s.init()
	clear(s.keysDelta)
	clear(s.mouseDelta)
	s.wheelDelta = 0
}

// Handle folds one event into the state. Unknown events are ignored.
func (s *InputState) Handle(e Event) {
	s.init()
	switch e := e.(type) {
	case KeyPressEvent:
		s.keys[e.Key] = true
		s.keysDelta[e.Key] = true
	case KeyReleaseEvent:
		s.keys[e.Key] = false
		s.keysDelta[e.Key] = false
	case MouseButtonPressEvent:
		s.mouse[e.Button] = true
		s.mouseDelta[e.Button] = true
	case MouseButtonReleaseEvent:
		s.mouse[e.Button] = false
		s.mouseDelta[e.Button] = false
	case MouseWheelEvent:
		// Only the last scroll of a frame is visible as the delta.
		s.wheel += e.Delta
		s.wheelDelta = e.Delta
	case MouseMoveEvent:
		s.mouseX, s.mouseY = e.X, e.Y
	}
}

// KeyPressed reports whether key is currently held.
func (s *InputState) KeyPressed(key Key) bool {
	return s.keys[key]
}

// KeyJustPressed reports whether key went down during the current frame.
func (s *InputState) KeyJustPressed(key Key) bool {
	return s.keysDelta[key]
}

// KeyJustReleased reports whether key went up during the current frame.
func (s *InputState) KeyJustReleased(key Key) bool {
	down, ok := s.keysDelta[key]
	return ok && !down
}

// MousePressed reports whether button is currently held.
func (s *InputState) MousePressed(button Button) bool {
	return s.mouse[button]
}

// MouseJustPressed reports whether button went down during the current frame.
func (s *InputState) MouseJustPressed(button Button) bool {
	return s.mouseDelta[button]
}

// MouseJustReleased reports whether button went up during the current frame.
func (s *InputState) MouseJustReleased(button Button) bool {
	down, ok := s.mouseDelta[button]
	return ok && !down
}

// MousePosition returns the last known cursor position in window pixels.
func (s *InputState) MousePosition() (x, y float32) {
	return s.mouseX, s.mouseY
}

// MouseWheel returns the cumulative scroll since the state was created.
func (s *InputState) MouseWheel() float32 {
	return s.wheel
}

// MouseWheelDelta returns the scroll delivered during the current frame.
func (s *InputState) MouseWheelDelta() float32 {
	return s.wheelDelta
}
