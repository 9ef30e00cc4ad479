// Command prontodemo runs a small interactive pronto sketch.
//
// With -out, frames are rendered offscreen and written as PNG files, which
// works on machines without a display:
//
//	prontodemo -frames 120 -out frames/
package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"

	"github.com/gogpu/pronto"
	_ "github.com/gogpu/pronto/backend/devdraw"
	"github.com/gogpu/pronto/backend/headless"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		frames     = flag.Int("frames", 0, "stop after this many frames (0 runs until closed)")
		out        = flag.String("out", "", "render offscreen and write PNG frames to this directory")
		verbose    = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		pronto.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := pronto.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pronto.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var extra []pronto.Option
	if *out != "" {
		dev, err := headless.New(pronto.DeviceConfig{
			Width:      cfg.Width,
			Height:     cfg.Height,
			Title:      cfg.Title,
			Fullscreen: cfg.Fullscreen,
		}, headless.WithOutputDir(*out))
		if err != nil {
			log.Fatal(err)
		}
		extra = append(extra, pronto.WithDevice(dev))
	}

	w, err := cfg.Open(extra...)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = w.Close()
	}()

	s := newSketch(w)
	for *frames == 0 || int(w.FrameCount()) < *frames {
		s.draw(w)
		if err := w.Update(); err != nil {
			if errors.Is(err, pronto.ErrTerminated) {
				break
			}
			log.Fatal(err)
		}
	}

	if *out != "" {
		log.Printf("Wrote %d frames to %s\n", w.FrameCount(), *out)
	}
}

type sketch struct {
	ball    pronto.Point
	vel     pronto.Point
	radius  float32
	checker pronto.Texture
	trail   []pronto.Point
}

func newSketch(w *pronto.Window) *sketch {
	return &sketch{
		ball:    pronto.Pt(w.Width()/2, w.Height()/2),
		vel:     pronto.Pt(180, 130),
		radius:  30,
		checker: w.Arena().AddTexture(gg.ImageBufFromImage(checkerboard(64, 48, 8))),
	}
}

func (s *sketch) draw(w *pronto.Window) {
	dt := w.DeltaTime()

	if w.KeyJustPressed(pronto.KeySpace) {
		s.vel = s.vel.Mul(-1)
	}
	if d := w.MouseWheelDelta(); d != 0 {
		s.radius = max(5, s.radius+d*2)
	}

	s.ball = s.ball.Add(s.vel.Mul(dt))
	if s.ball.X < s.radius || s.ball.X > w.Width()-s.radius {
		s.vel.X = -s.vel.X
	}
	if s.ball.Y < s.radius || s.ball.Y > w.Height()-s.radius {
		s.vel.Y = -s.vel.Y
	}

	// Hue wheel.
	for i := 0; i < 12; i++ {
		a := float32(i) / 12 * 2 * math32.Pi
		w.FillColor(pronto.HSB(float32(i)*30, 0.8, 0.9))
		w.Circle(pronto.Pt(100+40*math32.Cos(a), 100+40*math32.Sin(a)), 10)
	}

	w.TextureAutoHeight(pronto.Pt(w.Width()-140, 20), s.checker, 120)

	w.FillColor(pronto.Red)
	w.OutlineColor(pronto.Black)
	w.Circle(s.ball, s.radius)

	mouse := w.MousePosition()
	if w.MousePressed(pronto.ButtonLeft) {
		s.trail = append(s.trail, mouse)
	}
	if w.MouseJustPressed(pronto.ButtonRight) {
		s.trail = s.trail[:0]
	}
	w.LineColor(pronto.Blue)
	for i := 1; i < len(s.trail); i++ {
		w.Line(s.trail[i-1], s.trail[i])
	}

	w.FillColor(pronto.Transparent)
	w.OutlineColor(pronto.DarkGray)
	w.Square(mouse.Sub(pronto.Pt(10, 10)), 20)

	w.FontSize(20)
	w.Text(pronto.Pt(20, w.Height()-40), "space: reverse  wheel: resize  drag: draw  esc: quit")
}

func checkerboard(width, height, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
