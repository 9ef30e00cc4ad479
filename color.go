package pronto

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// Color is an immutable 8-bit RGBA color. Channels are not premultiplied.
// Colors are compared component-wise with ==.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	Transparent = RGBA(0x00, 0x00, 0x00, 0x00)
	Black       = RGB(0x00, 0x00, 0x00)
	White       = RGB(0xFF, 0xFF, 0xFF)
	Gray        = RGB(0x80, 0x80, 0x80)
	DarkGray    = RGB(0x40, 0x40, 0x40)
	LightGray   = RGB(0xC0, 0xC0, 0xC0)
	Red         = RGB(0xFF, 0x00, 0x00)
	Green       = RGB(0x00, 0xFF, 0xC0)
	Blue        = RGB(0x00, 0x00, 0xFF)
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of c with only the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// HSB creates an opaque color from hue, saturation and brightness.
// Hue is in degrees and wraps modulo 360, so -90 and 270 are the same hue.
// Saturation and brightness are clamped to [0, 1].
func HSB(hue, sat, bright float32) Color {
	h := math32.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	s := clamp01(sat)
	v := clamp01(bright)

	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB(unit8(r+m), unit8(g+m), unit8(b+m))
}

// RGBA implements the image/color.Color interface.
// The returned values are alpha-premultiplied in the range [0, 0xFFFF].
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xFFFF
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xFFFF
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xFFFF
	return r, g, b, a
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a color in one of the forms #rgb, #rgba, #rrggbb or
// #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4:
		expanded := make([]byte, 0, 2*len(s))
		for i := 0; i < len(s); i++ {
			expanded = append(expanded, s[i], s[i])
		}
		s = string(expanded)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("pronto: invalid hex color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("pronto: invalid hex color %q: %w", s, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

func unit8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
