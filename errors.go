package pronto

import "errors"

// Sentinel errors for the pronto package.
var (
	// ErrTerminated is returned by Window.Update when the user closed the
	// window or pressed Escape. It is a normal exit signal, not a failure.
	ErrTerminated = errors.New("pronto: window terminated")

	// ErrNoBackend is returned when no device backend is registered or
	// available on this system.
	ErrNoBackend = errors.New("pronto: no backend available")

	// ErrResourceLoad is returned when a texture or font cannot be read or
	// decoded.
	ErrResourceLoad = errors.New("pronto: resource load failed")

	// ErrUnsupportedFormat is returned when resource data is not an image
	// or font format pronto can decode.
	ErrUnsupportedFormat = errors.New("pronto: unsupported resource format")

	// ErrInvalidSize is returned when a window is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("pronto: invalid window size")
)

// BackendNotFoundError is returned when a requested backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "pronto: backend not found: " + e.Name
}

// BackendUnavailableError is returned when a backend is registered but
// reports itself unavailable on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "pronto: backend unavailable: " + e.Name
}
