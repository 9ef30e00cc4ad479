package pronto

import (
	"log/slog"
	"time"
)

// Option configures a Window during creation.
//
// Example:
//
//	w, err := pronto.New(800, 600, "sketch",
//	    pronto.WithBackend("headless"),
//	    pronto.WithBackground(pronto.White))
type Option func(*options)

// options holds optional configuration for Window creation.
type options struct {
	backend    string
	registry   *Registry
	device     Device
	rasterizer Rasterizer
	arena      *Arena
	logger     *slog.Logger
	clock      func() time.Time
	background Color
	vsync      bool
	keyRepeat  bool
}

// defaultOptions returns the default window options.
func defaultOptions() options {
	return options{
		registry:   globalRegistry,
		clock:      time.Now,
		background: LightGray,
		vsync:      true,
		keyRepeat:  false,
	}
}

// WithBackend selects a registered backend by name instead of the highest
// priority available one.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithRegistry selects backends from r instead of the global registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithDevice uses d directly, bypassing backend selection.
// The window size is taken from d.
func WithDevice(d Device) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithRasterizer replaces the default gg-backed rasterizer.
// The rasterizer must already match the device size.
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithArena makes the window draw from a caller-owned arena, so several
// windows can share loaded textures and fonts.
func WithArena(a *Arena) Option {
	return func(o *options) {
		o.arena = a
	}
}

// WithLogger sets the logger for this window only.
// Without it the window logs through the package Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock replaces time.Now as the source of frame timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithBackground sets the initial background color. The default is LightGray.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithVSync asks the backend to lock presentation to the display refresh.
// Enabled by default.
func WithVSync(enabled bool) Option {
	return func(o *options) {
		o.vsync = enabled
	}
}

// WithKeyRepeat asks the backend to deliver repeated key presses while a
// key is held. Disabled by default.
func WithKeyRepeat(enabled bool) Option {
	return func(o *options) {
		o.keyRepeat = enabled
	}
}
