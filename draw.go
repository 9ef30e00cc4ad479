package pronto

// Draw calls do not draw immediately. Each appends a RenderTask carrying a
// copy of the current RenderParams; the queue is drawn in order by Update,
// so later calls paint over earlier ones.

// Circle draws a circle centered at center.
func (w *Window) Circle(center Point, radius float32) {
	w.enqueue(center, CircleShape{Radius: radius})
}

// Rectangle draws a rectangle with its top-left corner at pos.
func (w *Window) Rectangle(pos Point, width, height float32) {
	w.enqueue(pos, RectangleShape{Width: width, Height: height})
}

// Square draws a size x size square with its top-left corner at pos.
func (w *Window) Square(pos Point, size float32) {
	w.Rectangle(pos, size, size)
}

// Texture draws t stretched into a width x height box with its top-left
// corner at pos.
//
//	t, err := w.LoadTexture("my_texture.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Texture(pronto.Pt(100, 250), t, 100, 150)
func (w *Window) Texture(pos Point, t Texture, width, height float32) {
	w.enqueue(pos, TextureShape{Texture: t, Width: width, Height: height})
}

// TextureAutoHeight draws t with the given width and a height that keeps
// the texture's aspect ratio. A texture with zero height has aspect 0 and
// is drawn with height 0, which draws nothing.
func (w *Window) TextureAutoHeight(pos Point, t Texture, width float32) {
	var height float32
	if aspect := w.arena.TextureAspect(t); aspect != 0 {
		height = width / aspect
	}
	w.Texture(pos, t, width, height)
}

// Text draws s with its top-left corner at pos, using the font selected
// with SetFont or the built-in default font.
func (w *Window) Text(pos Point, s string) {
	var font *Font
	if w.font != nil {
		f := *w.font
		font = &f
	}
	w.enqueue(pos, TextShape{Text: s, Font: font})
}

// Line draws a line segment from from to to in the current line color.
//
// Consecutive Line calls with the same line color are merged into a single
// batch that is drawn in one call. Only the most recent draw call is
// considered for merging.
func (w *Window) Line(from, to Point) {
	if t := w.queue.tail(); t != nil && t.Params.Line == w.params.Line {
		if l, ok := t.Shape.(*LinesShape); ok {
			l.Points = append(l.Points, from, to)
			return
		}
	}
	w.enqueue(Point{}, &LinesShape{Points: []Point{from, to}})
}

// Tasks returns a copy of the draw calls queued for the current frame.
func (w *Window) Tasks() []RenderTask {
	return w.queue.snapshot()
}

// QueueLen returns the number of queued draw calls.
func (w *Window) QueueLen() int {
	return w.queue.len()
}

func (w *Window) enqueue(pos Point, s Shape) {
	w.queue.push(RenderTask{Pos: pos, Shape: s, Params: w.params})
}
