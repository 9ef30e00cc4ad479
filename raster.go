package pronto

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// outlineWidth is the stroke width of shape outlines and lines, in pixels.
const outlineWidth = 1

// Rasterizer draws primitives into an offscreen frame.
// Window calls it once per queued task, and once per line batch.
//
// Implementations are driven from a single goroutine.
type Rasterizer interface {
	// Clear fills the whole frame with c.
	Clear(c Color)

	// Circle draws a circle centered at center. The outline, if visible, is
	// drawn outside the filled area.
	Circle(center Point, radius float32, fill, outline Color)

	// Rectangle draws a rectangle with top-left corner pos.
	Rectangle(pos Point, width, height float32, fill, outline Color)

	// Texture scales img into the box with top-left corner pos.
	Texture(pos Point, width, height float32, img *gg.ImageBuf)

	// Text draws s with its top-left corner at pos.
	Text(pos Point, s string, src *text.FontSource, size uint32, c Color)

	// Lines draws independent segments given as endpoint pairs.
	Lines(points []Point, c Color)

	// Frame returns a copy of the rendered frame.
	Frame() *image.RGBA

	// Resize changes the frame size. Existing content is discarded.
	Resize(width, height int) error
}

// ggRasterizer is the default Rasterizer, backed by a gg software context.
type ggRasterizer struct {
	dc *gg.Context
}

// NewRasterizer returns the default gg-backed rasterizer.
func NewRasterizer(width, height int) Rasterizer {
	return &ggRasterizer{dc: gg.NewContext(width, height)}
}

func (r *ggRasterizer) Clear(c Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *ggRasterizer) Circle(center Point, radius float32, fill, outline Color) {
	x, y, rad := float64(center.X), float64(center.Y), float64(radius)
	if fill.A > 0 {
		r.dc.SetColor(fill)
		r.dc.DrawCircle(x, y, rad)
		_ = r.dc.Fill()
	}
	if outline.A > 0 {
		r.dc.SetColor(outline)
		r.dc.SetLineWidth(outlineWidth)
		r.dc.DrawCircle(x, y, rad+outlineWidth/2.0)
		_ = r.dc.Stroke()
	}
}

func (r *ggRasterizer) Rectangle(pos Point, width, height float32, fill, outline Color) {
	x, y, w, h := float64(pos.X), float64(pos.Y), float64(width), float64(height)
	if fill.A > 0 {
		r.dc.SetColor(fill)
		r.dc.DrawRectangle(x, y, w, h)
		_ = r.dc.Fill()
	}
	if outline.A > 0 {
		const half = outlineWidth / 2.0
		r.dc.SetColor(outline)
		r.dc.SetLineWidth(outlineWidth)
		r.dc.DrawRectangle(x-half, y-half, w+outlineWidth, h+outlineWidth)
		_ = r.dc.Stroke()
	}
}

func (r *ggRasterizer) Texture(pos Point, width, height float32, img *gg.ImageBuf) {
	// gg treats a zero destination size as "use the source size", which
	// would draw degenerate boxes at full size.
	if img == nil || width <= 0 || height <= 0 {
		return
	}
	r.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             float64(pos.X),
		Y:             float64(pos.Y),
		DstWidth:      float64(width),
		DstHeight:     float64(height),
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

func (r *ggRasterizer) Text(pos Point, s string, src *text.FontSource, size uint32, c Color) {
	if src == nil || s == "" || size == 0 {
		return
	}
	face := src.Face(float64(size))
	r.dc.SetFont(face)
	r.dc.SetColor(c)
	r.dc.DrawString(s, float64(pos.X), float64(pos.Y)+face.Metrics().Ascent)
}

func (r *ggRasterizer) Lines(points []Point, c Color) {
	if len(points) < 2 {
		return
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(outlineWidth)
	for i := 0; i+1 < len(points); i += 2 {
		r.dc.MoveTo(float64(points[i].X), float64(points[i].Y))
		r.dc.LineTo(float64(points[i+1].X), float64(points[i+1].Y))
	}
	_ = r.dc.Stroke()
}

func (r *ggRasterizer) Frame() *image.RGBA {
	img := r.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func (r *ggRasterizer) Resize(width, height int) error {
	return r.dc.Resize(width, height)
}
