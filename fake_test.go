package pronto

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// fakeDevice is a scripted Device for tests.
type fakeDevice struct {
	w, h       int
	events     []Event
	presented  int
	lastFrame  *image.RGBA
	presentErr error
	resized    bool
	closed     bool
}

func newFakeDevice(w, h int) *fakeDevice {
	return &fakeDevice{w: w, h: h}
}

func (d *fakeDevice) Size() (int, int) { return d.w, d.h }

func (d *fakeDevice) PollEvent() (Event, bool) {
	if len(d.events) == 0 {
		return nil, false
	}
	e := d.events[0]
	d.events = d.events[1:]
	return e, true
}

func (d *fakeDevice) Present(frame *image.RGBA) error {
	if d.presentErr != nil {
		return d.presentErr
	}
	d.presented++
	d.lastFrame = frame
	return nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

func (d *fakeDevice) Resized() bool {
	r := d.resized
	d.resized = false
	return r
}

func (d *fakeDevice) push(events ...Event) {
	d.events = append(d.events, events...)
}

// recordingRasterizer records the calls Window makes, one string per call.
type recordingRasterizer struct {
	calls []string
	fonts []*text.FontSource
	w, h  int
}

func (r *recordingRasterizer) Clear(c Color) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", c))
}

func (r *recordingRasterizer) Circle(center Point, radius float32, fill, outline Color) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v %v %v %v", center, radius, fill, outline))
}

func (r *recordingRasterizer) Rectangle(pos Point, width, height float32, fill, outline Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v %vx%v %v %v", pos, width, height, fill, outline))
}

func (r *recordingRasterizer) Texture(pos Point, width, height float32, img *gg.ImageBuf) {
	r.calls = append(r.calls, fmt.Sprintf("texture %v %vx%v", pos, width, height))
}

func (r *recordingRasterizer) Text(pos Point, s string, src *text.FontSource, size uint32, c Color) {
	r.fonts = append(r.fonts, src)
	r.calls = append(r.calls, fmt.Sprintf("text %v %q %d %v", pos, s, size, c))
}

func (r *recordingRasterizer) Lines(points []Point, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("lines %v %v", points, c))
}

func (r *recordingRasterizer) Frame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func (r *recordingRasterizer) Resize(width, height int) error {
	r.w, r.h = width, height
	r.calls = append(r.calls, fmt.Sprintf("resize %dx%d", width, height))
	return nil
}

func (r *recordingRasterizer) reset() { r.calls = nil }

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
