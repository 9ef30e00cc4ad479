// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides an in-memory pronto device.
//
// It has no window: input is scripted with Push and every presented frame
// is kept in memory, and optionally written to a directory as PNG files.
// It is used by tests and for batch rendering on machines without a
// display.
//
// Importing the package registers it as the "headless" backend with a low
// priority, so native backends are preferred when they are available:
//
//	import _ "github.com/gogpu/pronto/backend/headless"
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/pronto"
)

// Name is the registry name of this backend.
const Name = "headless"

// Priority is lower than any native backend.
const Priority = 10

// DefaultDisplaySize is the size reported for fullscreen windows.
var DefaultDisplaySize = image.Pt(1920, 1080)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("headless: device closed")

func init() {
	pronto.RegisterBackend(Name, Priority, func(cfg pronto.DeviceConfig) (pronto.Device, error) {
		return New(cfg)
	}, nil)
}

// Option configures a Device.
type Option func(*Device)

// WithDisplaySize sets the size used when the window is fullscreen.
func WithDisplaySize(width, height int) Option {
	return func(d *Device) {
		d.display = image.Pt(width, height)
	}
}

// WithOutputDir writes every presented frame to dir as frame-NNNNNN.png.
// The directory is created if needed.
func WithOutputDir(dir string) Option {
	return func(d *Device) {
		d.outDir = dir
	}
}

// WithFrameLimit keeps only the last n presented frames in memory.
// Zero keeps all of them.
func WithFrameLimit(n int) Option {
	return func(d *Device) {
		d.limit = n
	}
}

// Device is an offscreen pronto.Device.
//
// Push may be called from any goroutine; the other methods follow the
// single-goroutine rule of pronto.Device.
type Device struct {
	cfg     pronto.DeviceConfig
	display image.Point
	outDir  string
	limit   int

	mu      sync.Mutex
	events  []pronto.Event
	size    image.Point
	resized bool

	frames    []*image.RGBA
	presented int
	closed    bool
}

var _ pronto.Resizer = (*Device)(nil)

// New creates a device for cfg.
func New(cfg pronto.DeviceConfig, opts ...Option) (*Device, error) {
	d := &Device{
		cfg:     cfg,
		display: DefaultDisplaySize,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.size = image.Pt(cfg.Width, cfg.Height)
	if cfg.Fullscreen {
		d.size = d.display
	}
	if d.size.X <= 0 || d.size.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pronto.ErrInvalidSize, d.size.X, d.size.Y)
	}
	if d.outDir != "" {
		if err := os.MkdirAll(d.outDir, 0o755); err != nil {
			return nil, fmt.Errorf("headless: create output dir: %w", err)
		}
	}

	pronto.Logger().Debug("headless: device created",
		"width", d.size.X, "height", d.size.Y, "out", d.outDir)
	return d, nil
}

// Config returns the configuration the device was opened with.
func (d *Device) Config() pronto.DeviceConfig { return d.cfg }

// Size implements pronto.Device.
func (d *Device) Size() (width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size.X, d.size.Y
}

// SetSize simulates the user resizing the window.
func (d *Device) SetSize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if width == d.size.X && height == d.size.Y {
		return
	}
	d.size = image.Pt(width, height)
	d.resized = true
}

// Resized implements pronto.Resizer.
func (d *Device) Resized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.resized
	d.resized = false
	return r
}

// Push queues events to be returned by PollEvent in order.
func (d *Device) Push(events ...pronto.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, events...)
}

// Pending returns the number of queued events.
func (d *Device) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

// PollEvent implements pronto.Device.
func (d *Device) PollEvent() (pronto.Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events) == 0 {
		return nil, false
	}
	e := d.events[0]
	d.events[0] = nil
	d.events = d.events[1:]
	return e, true
}

// Present implements pronto.Device. The frame is copied.
func (d *Device) Present(frame *image.RGBA) error {
	if d.closed {
		return ErrClosed
	}
	img := image.NewRGBA(frame.Rect)
	copy(img.Pix, frame.Pix)

	if d.outDir != "" {
		if err := d.writePNG(d.presented, img); err != nil {
			return err
		}
	}

	d.presented++
	d.frames = append(d.frames, img)
	if d.limit > 0 && len(d.frames) > d.limit {
		n := copy(d.frames, d.frames[len(d.frames)-d.limit:])
		clear(d.frames[n:])
		d.frames = d.frames[:n]
	}
	return nil
}

func (d *Device) writePNG(index int, img *image.RGBA) error {
	path := filepath.Join(d.outDir, fmt.Sprintf("frame-%06d.png", index))
	f, err := os.Create(path) //nolint:gosec // output dir is caller-provided
	if err != nil {
		return fmt.Errorf("headless: write frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("headless: encode frame: %w", err)
	}
	return f.Close()
}

// Frames returns the retained frames, oldest first.
func (d *Device) Frames() []*image.RGBA {
	return append([]*image.RGBA(nil), d.frames...)
}

// LastFrame returns the most recently presented frame, or nil.
func (d *Device) LastFrame() *image.RGBA {
	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}

// Presented returns the number of frames presented so far, including ones
// dropped by the frame limit.
func (d *Device) Presented() int { return d.presented }

// Close implements pronto.Device.
func (d *Device) Close() error {
	d.closed = true
	return nil
}
