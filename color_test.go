package pronto

import (
	"errors"
	"image/color"
	"testing"
)

func TestNamedColors(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"Transparent", Transparent, Color{0, 0, 0, 0}},
		{"Black", Black, Color{0, 0, 0, 255}},
		{"White", White, Color{255, 255, 255, 255}},
		{"Gray", Gray, Color{0x80, 0x80, 0x80, 255}},
		{"DarkGray", DarkGray, Color{0x40, 0x40, 0x40, 255}},
		{"LightGray", LightGray, Color{0xC0, 0xC0, 0xC0, 255}},
		{"Red", Red, Color{255, 0, 0, 255}},
		{"Green", Green, Color{0, 255, 0xC0, 255}},
		{"Blue", Blue, Color{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	if got := RGB(1, 2, 3); got != (Color{1, 2, 3, 255}) {
		t.Errorf("RGB(1, 2, 3) = %v, want opaque", got)
	}
	if got := RGBA(1, 2, 3, 4); got != (Color{1, 2, 3, 4}) {
		t.Errorf("RGBA(1, 2, 3, 4) = %v", got)
	}
	if got := Red.WithAlpha(10); got != (Color{255, 0, 0, 10}) {
		t.Errorf("Red.WithAlpha(10) = %v", got)
	}
}

func TestHSB(t *testing.T) {
	tests := []struct {
		name             string
		hue, sat, bright float32
		want             Color
	}{
		{"red", 0, 1, 1, Color{255, 0, 0, 255}},
		{"yellow", 60, 1, 1, Color{255, 255, 0, 255}},
		{"green", 120, 1, 1, Color{0, 255, 0, 255}},
		{"cyan", 180, 1, 1, Color{0, 255, 255, 255}},
		{"blue", 240, 1, 1, Color{0, 0, 255, 255}},
		{"magenta", 300, 1, 1, Color{255, 0, 255, 255}},
		{"wrap 360", 360, 1, 1, Color{255, 0, 0, 255}},
		{"wrap 480", 480, 1, 1, Color{0, 255, 0, 255}},
		{"negative hue", -120, 1, 1, Color{0, 0, 255, 255}},
		{"no saturation", 200, 0, 1, Color{255, 255, 255, 255}},
		{"no brightness", 90, 1, 0, Color{0, 0, 0, 255}},
		{"half brightness", 0, 0, 0.5, Color{128, 128, 128, 255}},
		{"saturation clamped", 0, 2, 1, Color{255, 0, 0, 255}},
		{"brightness clamped", 240, 1, 5, Color{0, 0, 255, 255}},
		{"negative clamped", 0, -1, -1, Color{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSB(tt.hue, tt.sat, tt.bright)
			if got != tt.want {
				t.Errorf("HSB(%v, %v, %v) = %v, want %v", tt.hue, tt.sat, tt.bright, got, tt.want)
			}
		})
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGBA(255, 128, 0, 128)
	r, g, b, a := c.RGBA()
	if a != 0x8080 {
		t.Errorf("a = %#x, want 0x8080", a)
	}
	if r != 0x8080 {
		t.Errorf("r = %#x, want premultiplied 0x8080", r)
	}
	if g == 0 || g >= r {
		t.Errorf("g = %#x, want premultiplied between 0 and r", g)
	}
	if b != 0 {
		t.Errorf("b = %#x, want 0", b)
	}

	got := color.NRGBAModel.Convert(Green).(color.NRGBA)
	if got != (color.NRGBA{0, 255, 0xC0, 255}) {
		t.Errorf("NRGBA(Green) = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#fff", White, false},
		{"000", Black, false},
		{"#f008", Color{255, 0, 0, 0x88}, false},
		{"#C0C0C0", LightGray, false},
		{"#00ffc0ff", Green, false},
		{"#12345678", Color{0x12, 0x34, 0x56, 0x78}, false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorText(t *testing.T) {
	if got := Green.String(); got != "#00ffc0ff" {
		t.Errorf("Green.String() = %q", got)
	}

	var c Color
	if err := c.UnmarshalText([]byte("#102030")); err != nil {
		t.Fatalf("UnmarshalText() = %v", err)
	}
	if c != RGB(0x10, 0x20, 0x30) {
		t.Errorf("UnmarshalText() = %v", c)
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) should fail")
	} else if errors.Is(err, ErrResourceLoad) {
		t.Error("color parse errors are not resource errors")
	}
}
