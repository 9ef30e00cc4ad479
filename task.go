package pronto

// ShapeKind identifies the variant of a Shape.
type ShapeKind uint8

// Shape kinds.
const (
	KindCircle ShapeKind = iota
	KindRectangle
	KindTexture
	KindText
	KindLines
)

var shapeKindNames = [...]string{
	KindCircle:    "Circle",
	KindRectangle: "Rectangle",
	KindTexture:   "Texture",
	KindText:      "Text",
	KindLines:     "Lines",
}

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "Unknown"
}

// Shape is the geometry of a queued draw call. The set of shapes is closed:
// only the types in this package implement it.
type Shape interface {
	// Kind returns the ShapeKind for this shape.
	Kind() ShapeKind

	shape()
}

// CircleShape is a circle centered on the task position.
type CircleShape struct {
	Radius float32
}

// RectangleShape is an axis-aligned rectangle whose top-left corner is the
// task position.
type RectangleShape struct {
	Width, Height float32
}

// TextureShape is a texture blitted into the box whose top-left corner is
// the task position.
type TextureShape struct {
	Texture       Texture
	Width, Height float32
}

// TextShape is a run of text whose top-left corner is the task position.
// Font is nil when the default font applies.
type TextShape struct {
	Text string
	Font *Font
}

// LinesShape is a batch of independent line segments sharing one color.
// Points holds segment endpoints in pairs: (Points[0], Points[1]) is the
// first segment, (Points[2], Points[3]) the second, and so on.
type LinesShape struct {
	Points []Point
}

// Kind implements Shape.
func (CircleShape) Kind() ShapeKind { return KindCircle }

// Kind implements Shape.
func (RectangleShape) Kind() ShapeKind { return KindRectangle }

// Kind implements Shape.
func (TextureShape) Kind() ShapeKind { return KindTexture }

// Kind implements Shape.
func (TextShape) Kind() ShapeKind { return KindText }

// Kind implements Shape.
func (*LinesShape) Kind() ShapeKind { return KindLines }

func (CircleShape) shape()    {}
func (RectangleShape) shape() {}
func (TextureShape) shape()   {}
func (TextShape) shape()      {}
func (*LinesShape) shape()    {}

// RenderTask is one buffered draw call: where, what, and the pen that was
// active when it was issued.
type RenderTask struct {
	Pos    Point
	Shape  Shape
	Params RenderParams
}

// renderQueue is the FIFO of tasks for the current frame. Enqueue order is
// paint order.
type renderQueue struct {
	tasks []RenderTask
}

func (q *renderQueue) push(t RenderTask) {
	q.tasks = append(q.tasks, t)
}

// tail returns the most recently pushed task, or nil if the queue is empty.
func (q *renderQueue) tail() *RenderTask {
	if len(q.tasks) == 0 {
		return nil
	}
	return &q.tasks[len(q.tasks)-1]
}

func (q *renderQueue) len() int { return len(q.tasks) }

// reset empties the queue, keeping its capacity for the next frame.
func (q *renderQueue) reset() {
	clear(q.tasks)
	q.tasks = q.tasks[:0]
}

// snapshot returns a deep copy of the queued tasks.
func (q *renderQueue) snapshot() []RenderTask {
	out := make([]RenderTask, len(q.tasks))
	for i, t := range q.tasks {
		switch s := t.Shape.(type) {
		case *LinesShape:
			t.Shape = &LinesShape{Points: append([]Point(nil), s.Points...)}
		case TextShape:
			if s.Font != nil {
				f := *s.Font
				s.Font = &f
				t.Shape = s
			}
		}
		out[i] = t
	}
	return out
}
