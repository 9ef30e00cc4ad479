package pronto

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// initialDeltaTime is reported by DeltaTime before the first Update, so that
// motion scaled by it is sane on the first frame.
const initialDeltaTime = 1.0 / 60

// Window is the core type of pronto. All drawing and keyboard/mouse
// interaction happens through a Window, which must be updated every frame
// with Update for drawings to appear and input to advance.
//
//	w, err := pronto.New(800, 600, "Window Title")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Run(func(w *pronto.Window) {
//	    w.Circle(pronto.Pt(200, 200), 50)
//	})
//
// A Window is not safe for concurrent use. Call every method from the
// goroutine that created it; most window systems additionally require that
// to be the main goroutine.
type Window struct {
	device Device
	raster Rasterizer
	arena  *Arena
	logger *slog.Logger

	input      InputState
	queue      renderQueue
	params     RenderParams
	font       *Font
	background Color

	clock      func() time.Time
	created    time.Time
	lastUpdate time.Time
	deltaTime  float32
	runTime    float32
	frames     uint64

	width  int
	height int
}

// New opens a window of width x height pixels titled title, using the
// highest priority available backend unless WithBackend or WithDevice says
// otherwise.
func New(width, height int, title string, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return open(DeviceConfig{Width: width, Height: height, Title: title}, opts)
}

// NewFullscreen opens a borderless window covering the whole display.
// The size is whatever the backend detects; query it with Width and Height.
func NewFullscreen(opts ...Option) (*Window, error) {
	return open(DeviceConfig{Fullscreen: true}, opts)
}

func open(cfg DeviceConfig, opts []Option) (*Window, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg.VSync = o.vsync
	cfg.KeyRepeat = o.keyRepeat

	dev := o.device
	if dev == nil {
		var err error
		dev, err = o.registry.Open(o.backend, cfg)
		if err != nil {
			return nil, fmt.Errorf("pronto: open window: %w", err)
		}
	}

	width, height := dev.Size()
	if width <= 0 || height <= 0 {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: device reported %dx%d", ErrInvalidSize, width, height)
	}

	raster := o.rasterizer
	if raster == nil {
		raster = NewRasterizer(width, height)
	}
	arena := o.arena
	if arena == nil {
		arena = NewArena()
	}
	arena.Init()
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	now := o.clock()
	w := &Window{
		device:     dev,
		raster:     raster,
		arena:      arena,
		logger:     logger,
		params:     DefaultRenderParams(),
		background: o.background,
		clock:      o.clock,
		created:    now,
		lastUpdate: now,
		deltaTime:  initialDeltaTime,
		width:      width,
		height:     height,
	}
	w.input.init()

	logger.Info("pronto: window opened",
		"width", width, "height", height, "title", cfg.Title, "fullscreen", cfg.Fullscreen)
	return w, nil
}

// Update ends the current frame. It must be called once per frame.
//
// Update drains pending input, draws every queued shape in the order it was
// issued, presents the frame (which may block for vertical sync), advances
// Time and DeltaTime, and resets the fill, outline, line and font colors and
// the font size to their defaults. The font selected with SetFont and the
// background color are kept.
//
// If the user closed the window or pressed Escape, Update returns
// ErrTerminated immediately: nothing is drawn or presented for that frame
// and the queued shapes are kept. The caller decides whether to exit; see
// Run and UpdateOrExit.
func (w *Window) Update() error {
	if w.processEvents() {
		return ErrTerminated
	}
	err := w.render()
	w.tick()
	w.params = DefaultRenderParams()
	return err
}

// processEvents folds all pending events into the input state.
// It reports whether a termination event was seen.
func (w *Window) processEvents() bool {
	w.input.Clear()
	for {
		e, ok := w.device.PollEvent()
		if !ok {
			break
		}
		w.input.Handle(e)
		if isTermination(e) {
			w.logger.Info("pronto: termination requested", "event", fmt.Sprintf("%T", e))
			return true
		}
	}
	if r, ok := w.device.(Resizer); ok && r.Resized() {
		w.resize()
	}
	return false
}

func (w *Window) resize() {
	width, height := w.device.Size()
	if width <= 0 || height <= 0 || (width == w.width && height == w.height) {
		return
	}
	if err := w.raster.Resize(width, height); err != nil {
		w.logger.Warn("pronto: resize rasterizer", "width", width, "height", height, "err", err)
		return
	}
	w.width, w.height = width, height
	w.logger.Debug("pronto: window resized", "width", width, "height", height)
}

// render draws the queue onto a cleared frame and presents it.
// The queue is emptied even if presenting fails.
func (w *Window) render() error {
	w.raster.Clear(w.background)
	for i := range w.queue.tasks {
		w.rasterize(&w.queue.tasks[i])
	}
	n := w.queue.len()
	err := w.device.Present(w.raster.Frame())
	w.queue.reset()
	if err != nil {
		return fmt.Errorf("pronto: present frame: %w", err)
	}
	w.logger.Debug("pronto: frame presented", "frame", w.frames, "tasks", n)
	return nil
}

func (w *Window) rasterize(t *RenderTask) {
	p := t.Params
	switch s := t.Shape.(type) {
	case CircleShape:
		w.raster.Circle(t.Pos, s.Radius, p.Fill, p.Outline)
	case RectangleShape:
		w.raster.Rectangle(t.Pos, s.Width, s.Height, p.Fill, p.Outline)
	case TextureShape:
		w.raster.Texture(t.Pos, s.Width, s.Height, w.arena.texture(s.Texture))
	case TextShape:
		src := w.arena.resolveFont(s.Font)
		if src == nil {
			return
		}
		w.raster.Text(t.Pos, s.Text, src, p.FontSize, p.FontColor)
	case *LinesShape:
		w.raster.Lines(s.Points, p.Line)
	default:
		panic(fmt.Sprintf("pronto: unknown shape %T", t.Shape))
	}
}

func (w *Window) tick() {
	now := w.clock()
	w.deltaTime = float32(now.Sub(w.lastUpdate).Seconds())
	w.runTime = float32(now.Sub(w.created).Seconds())
	w.lastUpdate = now
	w.frames++
}

// Run calls frame and then Update in a loop until the user closes the
// window or presses Escape, in which case Run returns nil. Any other Update
// error stops the loop and is returned.
func (w *Window) Run(frame func(w *Window)) error {
	for {
		frame(w)
		if err := w.Update(); err != nil {
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			return err
		}
	}
}

// UpdateOrExit is Update for the classic sketch loop:
//
//	for {
//	    w.Circle(pronto.Pt(200, 200), 50)
//	    w.UpdateOrExit()
//	}
//
// On termination it closes the window and exits the process with status 0.
// Other errors are logged and the loop continues.
func (w *Window) UpdateOrExit() {
	err := w.Update()
	switch {
	case err == nil:
	case errors.Is(err, ErrTerminated):
		_ = w.Close()
		os.Exit(0)
	default:
		w.logger.Error("pronto: update", "err", err)
	}
}

// Close releases the underlying device. Using the window afterwards is
// undefined. Exiting the process without calling Close is fine.
func (w *Window) Close() error {
	return w.device.Close()
}

// BackgroundColor sets the color the frame is cleared to.
// Unlike the other colors it is not reset between frames.
// The initial background is LightGray.
func (w *Window) BackgroundColor(c Color) {
	w.background = c
}

// Background returns the current background color.
func (w *Window) Background() Color { return w.background }

// FillColor sets the fill color of circles and rectangles.
// It is reset to Black at the end of every frame.
func (w *Window) FillColor(c Color) {
	w.params.Fill = c
}

// OutlineColor sets the 1px outline color of circles and rectangles.
// It is reset to Transparent at the end of every frame.
func (w *Window) OutlineColor(c Color) {
	w.params.Outline = c
}

// LineColor sets the color of lines drawn with Line.
// It is reset to Black at the end of every frame.
func (w *Window) LineColor(c Color) {
	w.params.Line = c
}

// FontColor sets the color of text drawn with Text.
// It is reset to Black at the end of every frame.
func (w *Window) FontColor(c Color) {
	w.params.FontColor = c
}

// FontSize sets the size of text drawn with Text, in pixels.
// It is reset to 16 at the end of every frame.
func (w *Window) FontSize(size uint32) {
	w.params.FontSize = size
}

// SetFont selects the font for text drawn with Text.
//
// Unlike every other drawing parameter, the font is NOT reset at the end of
// the frame: it stays selected until SetFont or ClearFont is called again.
//
//	f, err := w.LoadFont("MyFont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.SetFont(f)
func (w *Window) SetFont(f Font) {
	w.font = &f
}

// ClearFont goes back to the built-in default font.
func (w *Window) ClearFont() {
	w.font = nil
}

// ActiveFont returns the font selected with SetFont, if any.
func (w *Window) ActiveFont() (Font, bool) {
	if w.font == nil {
		return Font{}, false
	}
	return *w.font, true
}

// Params returns the current drawing parameters.
func (w *Window) Params() RenderParams { return w.params }

// KeyPressed reports whether key is currently held.
func (w *Window) KeyPressed(key Key) bool { return w.input.KeyPressed(key) }

// KeyJustPressed reports whether key was pressed during this frame.
func (w *Window) KeyJustPressed(key Key) bool { return w.input.KeyJustPressed(key) }

// KeyJustReleased reports whether key was released during this frame.
func (w *Window) KeyJustReleased(key Key) bool { return w.input.KeyJustReleased(key) }

// MousePressed reports whether button is currently held.
func (w *Window) MousePressed(button Button) bool { return w.input.MousePressed(button) }

// MouseJustPressed reports whether button was pressed during this frame.
func (w *Window) MouseJustPressed(button Button) bool { return w.input.MouseJustPressed(button) }

// MouseJustReleased reports whether button was released during this frame.
func (w *Window) MouseJustReleased(button Button) bool { return w.input.MouseJustReleased(button) }

// MousePosition returns the cursor position inside the window.
func (w *Window) MousePosition() Point {
	x, y := w.input.MousePosition()
	return Pt(x, y)
}

// MouseWheel returns the cumulative scroll since the window was created.
func (w *Window) MouseWheel() float32 { return w.input.MouseWheel() }

// MouseWheelDelta returns how far the wheel scrolled during this frame.
func (w *Window) MouseWheelDelta() float32 { return w.input.MouseWheelDelta() }

// Width returns the window width, or the display width when fullscreen.
func (w *Window) Width() float32 { return float32(w.width) }

// Height returns the window height, or the display height when fullscreen.
func (w *Window) Height() float32 { return float32(w.height) }

// Time returns the seconds elapsed between window creation and the last
// Update.
func (w *Window) Time() float32 { return w.runTime }

// DeltaTime returns the seconds elapsed between the last two Updates.
func (w *Window) DeltaTime() float32 { return w.deltaTime }

// FrameCount returns the number of completed Updates.
func (w *Window) FrameCount() uint64 { return w.frames }

// Arena returns the store holding this window's textures and fonts.
func (w *Window) Arena() *Arena { return w.arena }

// LoadTexture loads an image file for drawing with Texture.
func (w *Window) LoadTexture(path string) (Texture, error) {
	return w.arena.LoadTexture(path)
}

// LoadFont loads a font file for use with SetFont.
func (w *Window) LoadFont(path string) (Font, error) {
	return w.arena.LoadFont(path)
}
