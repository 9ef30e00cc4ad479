// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package devdraw is a pronto backend that opens a native window through
// plan9port's devdraw.
//
// The devdraw binary must be on $PATH. Importing the package registers the
// "devdraw" backend:
//
//	import _ "github.com/gogpu/pronto/backend/devdraw"
//
// devdraw reports typed runes rather than key transitions, so every key
// press is followed by a synthesized release in the next frame. Holding a
// key therefore shows up as repeated presses when the window system
// repeats keys, and KeyPressed is true only in the frame of a press.
package devdraw

import (
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"runtime"

	"9fans.net/go/draw"

	"github.com/gogpu/pronto"
)

// Name is the registry name of this backend.
const Name = "devdraw"

// Priority is the priority of native window backends.
const Priority = 100

// Plan 9 mouse button bits.
const (
	button1   = 1 << 0
	button2   = 1 << 1
	button3   = 1 << 2
	wheelUp   = 1 << 3
	wheelDown = 1 << 4
)

// keyFn is the base of the function key runes (F1 is keyFn|1).
const keyFn = 0xF000

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("devdraw: device closed")

func init() {
	pronto.RegisterBackend(Name, Priority, func(cfg pronto.DeviceConfig) (pronto.Device, error) {
		return Open(cfg)
	}, Available)
}

// Available reports whether a display and the devdraw binary are present.
func Available() bool {
	if _, err := exec.LookPath("devdraw"); err != nil {
		return false
	}
	if runtime.GOOS == "darwin" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Device is a devdraw window.
type Device struct {
	display *draw.Display
	mouse   *draw.Mousectl
	kbd     *draw.Keyboardctl

	// back holds the uploaded frame; it is reallocated on resize.
	back *draw.Image
	buf  []byte

	buttons int
	pos     image.Point
	pending []pronto.Event
	resized bool
	closed  bool

	// pressed collects keys pressed in the current drain; due holds the
	// keys to release at the start of the next one.
	pressed []pronto.Key
	due     []pronto.Key
}

var _ pronto.Resizer = (*Device)(nil)

// Open connects to devdraw and opens a window for cfg.
//
// devdraw cannot open borderless fullscreen windows; a fullscreen request
// opens a window of devdraw's default size instead.
func Open(cfg pronto.DeviceConfig) (*Device, error) {
	size := fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
	if cfg.Fullscreen {
		pronto.Logger().Warn("devdraw: fullscreen not supported, using default window size")
		size = ""
	}

	d, err := draw.Init(nil, "", cfg.Title, size)
	if err != nil {
		return nil, fmt.Errorf("devdraw: init: %w", err)
	}

	dev := &Device{
		display: d,
		mouse:   d.InitMouse(),
		kbd:     d.InitKeyboard(),
	}
	pronto.Logger().Info("devdraw: window opened", "rect", d.ScreenImage.R.String())
	return dev, nil
}

// Size implements pronto.Device.
func (d *Device) Size() (width, height int) {
	s := d.display.ScreenImage.R.Size()
	return s.X, s.Y
}

// Resized implements pronto.Resizer.
func (d *Device) Resized() bool {
	r := d.resized
	d.resized = false
	return r
}

// PollEvent implements pronto.Device. It never blocks.
func (d *Device) PollEvent() (pronto.Event, bool) {
	if len(d.pending) == 0 {
		d.fill()
	}
	if len(d.pending) == 0 {
		d.due, d.pressed = d.pressed, d.due[:0]
		return nil, false
	}
	e := d.pending[0]
	d.pending = d.pending[1:]
	return e, true
}

// fill drains the devdraw channels without blocking. Releases synthesized
// for keys pressed during the previous drain come first.
func (d *Device) fill() {
	for _, k := range d.due {
		d.pending = append(d.pending, pronto.KeyReleaseEvent{Key: k})
	}
	d.due = d.due[:0]

	for {
		select {
		case r := <-d.kbd.C:
			k := keyForRune(r)
			d.pending = append(d.pending, pronto.KeyPressEvent{Key: k})
			d.pressed = append(d.pressed, k)
		case m := <-d.mouse.C:
			d.mouse.Mouse = m
			d.handleMouse(m)
		case <-d.mouse.Resize:
			if err := d.display.Attach(draw.Refnone); err != nil {
				pronto.Logger().Warn("devdraw: reattach after resize", "err", err)
				continue
			}
			d.resized = true
		default:
			return
		}
	}
}

func (d *Device) handleMouse(m draw.Mouse) {
	p := m.Point.Sub(d.display.ScreenImage.R.Min)
	if p != d.pos {
		d.pos = p
		d.pending = append(d.pending, pronto.MouseMoveEvent{X: float32(p.X), Y: float32(p.Y)})
	}

	changed := m.Buttons ^ d.buttons
	for _, b := range [...]struct {
		bit    int
		button pronto.Button
	}{
		{button1, pronto.ButtonLeft},
		{button2, pronto.ButtonMiddle},
		{button3, pronto.ButtonRight},
	} {
		if changed&b.bit == 0 {
			continue
		}
		if m.Buttons&b.bit != 0 {
			d.pending = append(d.pending, pronto.MouseButtonPressEvent{Button: b.button})
		} else {
			d.pending = append(d.pending, pronto.MouseButtonReleaseEvent{Button: b.button})
		}
	}

	// Wheel bits are set for a single message per step.
	if m.Buttons&wheelUp != 0 && d.buttons&wheelUp == 0 {
		d.pending = append(d.pending, pronto.MouseWheelEvent{Delta: 1})
	}
	if m.Buttons&wheelDown != 0 && d.buttons&wheelDown == 0 {
		d.pending = append(d.pending, pronto.MouseWheelEvent{Delta: -1})
	}
	d.buttons = m.Buttons
}

// Present implements pronto.Device. The frame is uploaded into an
// offscreen image and drawn onto the window.
func (d *Device) Present(frame *image.RGBA) error {
	if d.closed {
		return ErrClosed
	}
	r := frame.Rect.Sub(frame.Rect.Min)
	if d.back == nil || d.back.R != r {
		if d.back != nil {
			_ = d.back.Free()
		}
		img, err := d.display.AllocImage(r, draw.ABGR32, false, draw.Transparent)
		if err != nil {
			d.back = nil
			return fmt.Errorf("devdraw: allocate frame: %w", err)
		}
		d.back = img
	}

	if _, err := d.back.Load(r, d.pixels(frame)); err != nil {
		return fmt.Errorf("devdraw: load frame: %w", err)
	}
	screen := d.display.ScreenImage
	screen.Draw(screen.R, d.back, nil, image.Point{})
	if err := d.display.Flush(); err != nil {
		return fmt.Errorf("devdraw: flush: %w", err)
	}
	return nil
}

// pixels returns frame's pixels packed with no row padding, which is what
// Image.Load expects. image.RGBA memory order matches ABGR32.
func (d *Device) pixels(frame *image.RGBA) []byte {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if frame.Stride == 4*w {
		return frame.Pix[:4*w*h]
	}
	if cap(d.buf) < 4*w*h {
		d.buf = make([]byte, 4*w*h)
	}
	d.buf = d.buf[:4*w*h]
	for y := 0; y < h; y++ {
		copy(d.buf[y*4*w:(y+1)*4*w], frame.Pix[y*frame.Stride:])
	}
	return d.buf
}

// Close implements pronto.Device.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.back != nil {
		_ = d.back.Free()
		d.back = nil
	}
	return d.display.Close()
}

// keyForRune maps a devdraw keyboard rune to a pronto key.
func keyForRune(r rune) pronto.Key {
	switch r {
	case draw.KeyUp:
		return pronto.KeyUp
	case draw.KeyDown:
		return pronto.KeyDown
	case draw.KeyLeft:
		return pronto.KeyLeft
	case draw.KeyRight:
		return pronto.KeyRight
	case draw.KeyHome:
		return pronto.KeyHome
	case draw.KeyEnd:
		return pronto.KeyEnd
	case draw.KeyPageUp:
		return pronto.KeyPageUp
	case draw.KeyPageDown:
		return pronto.KeyPageDown
	case draw.KeyInsert:
		return pronto.KeyInsert
	}
	if r > keyFn && r <= keyFn+12 {
		return pronto.KeyF1 + pronto.Key(r-keyFn-1)
	}
	return pronto.KeyForRune(r)
}
