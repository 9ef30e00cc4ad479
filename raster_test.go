package pronto

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRasterizerClear(t *testing.T) {
	r := NewRasterizer(20, 10)
	r.Clear(Green)

	frame := r.Frame()
	if frame.Bounds().Dx() != 20 || frame.Bounds().Dy() != 10 {
		t.Fatalf("frame size = %v, want 20x10", frame.Bounds())
	}
	want := color.RGBA{0, 255, 0xC0, 255}
	for _, p := range []image.Point{{0, 0}, {19, 9}, {10, 5}} {
		if got := pixelAt(frame, p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestRasterizerShapes(t *testing.T) {
	r := NewRasterizer(100, 100)
	r.Clear(White)
	r.Circle(Pt(25, 25), 10, Red, Transparent)
	r.Rectangle(Pt(60, 60), 20, 20, Blue, Transparent)
	// Invisible fill and outline draw nothing.
	r.Rectangle(Pt(0, 60), 20, 20, Transparent, Transparent)

	frame := r.Frame()
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"circle center", 25, 25, color.RGBA{255, 0, 0, 255}},
		{"outside circle", 25, 40, color.RGBA{255, 255, 255, 255}},
		{"rect center", 70, 70, color.RGBA{0, 0, 255, 255}},
		{"invisible rect", 10, 70, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := pixelAt(frame, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizerOutlineOnly(t *testing.T) {
	r := NewRasterizer(40, 40)
	r.Clear(White)
	r.Rectangle(Pt(10, 10), 20, 20, Transparent, Black)

	frame := r.Frame()
	if got := pixelAt(frame, 20, 20); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("interior = %v, want untouched", got)
	}
	if got := pixelAt(frame, 20, 9); got.R > 128 {
		t.Errorf("outline row above the rectangle = %v, want dark", got)
	}
}

func TestRasterizerTexture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	buf := gg.ImageBufFromImage(src)

	r := NewRasterizer(50, 50)
	r.Clear(White)
	r.Texture(Pt(10, 10), 20, 20, buf)
	r.Texture(Pt(40, 40), 0, 10, buf)
	r.Texture(Pt(40, 40), 10, 10, nil)

	frame := r.Frame()
	if got := pixelAt(frame, 20, 20); got.R < 200 || got.G > 50 {
		t.Errorf("texture center = %v, want red", got)
	}
	if got := pixelAt(frame, 45, 45); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("degenerate textures should draw nothing, got %v", got)
	}
}

func TestRasterizerLinesAndText(t *testing.T) {
	r := NewRasterizer(60, 60)
	r.Clear(White)
	r.Lines([]Point{Pt(0, 30.5), Pt(60, 30.5)}, Black)
	// A dangling point is ignored.
	r.Lines([]Point{Pt(5, 5)}, Black)

	frame := r.Frame()
	if got := pixelAt(frame, 30, 30); got.R > 128 {
		t.Errorf("line pixel = %v, want dark", got)
	}

	a := NewArena()
	r.Clear(White)
	r.Text(Pt(2, 2), "M", a.DefaultFont(), 32, Black)
	r.Text(Pt(2, 2), "", a.DefaultFont(), 32, Black)
	r.Text(Pt(2, 2), "x", nil, 32, Black)

	dark := 0
	frame = r.Frame()
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if pixelAt(frame, x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("text should draw glyph pixels below the top-left position")
	}
}

func TestRasterizerResize(t *testing.T) {
	r := NewRasterizer(10, 10)
	if err := r.Resize(30, 20); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	r.Clear(Red)
	if b := r.Frame().Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("frame after resize = %v, want 30x20", b)
	}
}
