package pronto

import "image"

// Device is the window system a Window draws into and reads input from.
//
// A Device is driven from a single goroutine: the one that calls
// Window.Update. Backends that receive input on other goroutines must
// buffer it until PollEvent is called.
type Device interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)

	// PollEvent returns the next pending input event without blocking.
	// ok is false when no event is pending.
	PollEvent() (e Event, ok bool)

	// Present shows frame on screen. It may block for display pacing.
	Present(frame *image.RGBA) error

	// Close releases the device. Close is idempotent.
	Close() error
}

// DeviceConfig describes the window a backend should open.
//
// VSync and KeyRepeat are passed through to the window system; pronto
// itself does not pace frames or filter repeated key presses.
type DeviceConfig struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	VSync      bool
	KeyRepeat  bool
}

// Resizer is implemented by devices whose size can change after creation.
// Window checks for a new size once per frame and resizes its rasterizer.
type Resizer interface {
	Device

	// Resized reports whether the size changed since the last call.
	Resized() bool
}
