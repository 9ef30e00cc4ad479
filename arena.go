package pronto

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture is a handle to an image stored in an Arena.
// Handles are plain values: copying one does not copy the image, and a
// handle confers no ownership.
type Texture struct {
	index int
}

// Index returns the stable store index of the texture.
func (t Texture) Index() int { return t.index }

// Font is a handle to a font stored in an Arena.
type Font struct {
	index int
}

// Index returns the stable store index of the font.
func (f Font) Index() int { return f.index }

// Arena owns every texture and font loaded for drawing.
//
// Arenas are append-only: entries are never removed or reordered, so a
// handle stays valid for the lifetime of the arena that produced it. A
// handle used with a different arena, or forged with an index the arena
// never returned, is a programmer error and panics on lookup.
//
// Arena is not safe for concurrent use. Like the rest of pronto it must be
// driven from a single goroutine.
type Arena struct {
	initialized bool
	textures    []*gg.ImageBuf
	fonts       []*text.FontSource

	// defaultTTF overrides the built-in font data when set.
	defaultTTF  []byte
	defaultOnce sync.Once
	defaultFont *text.FontSource
}

// NewArena returns an initialized, empty arena.
func NewArena() *Arena {
	a := &Arena{}
	a.Init()
	return a
}

// Init prepares the arena for use. Calling Init more than once is a no-op.
func (a *Arena) Init() {
	if a.initialized {
		return
	}
	a.textures = make([]*gg.ImageBuf, 0, 8)
	a.fonts = make([]*text.FontSource, 0, 4)
	a.initialized = true
}

// AddTexture stores img and returns its handle.
// A nil img is an empty texture: its size is 0x0 and drawing it is a no-op.
func (a *Arena) AddTexture(img *gg.ImageBuf) Texture {
	a.Init()
	a.textures = append(a.textures, img)
	return Texture{index: len(a.textures) - 1}
}

// AddFont stores src and returns its handle.
func (a *Arena) AddFont(src *text.FontSource) Font {
	a.Init()
	a.fonts = append(a.fonts, src)
	return Font{index: len(a.fonts) - 1}
}

// LoadTexture decodes the image file at path and stores it.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. On failure the arena is
// left unchanged and the error wraps ErrResourceLoad.
func (a *Arena) LoadTexture(path string) (Texture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Texture{}, fmt.Errorf("%w: %w", ErrResourceLoad, err)
	}
	return a.LoadTextureFromBytes(data)
}

// LoadTextureFromBytes decodes an encoded image and stores it.
func (a *Arena) LoadTextureFromBytes(data []byte) (Texture, error) {
	if !filetype.IsImage(data) {
		return Texture{}, fmt.Errorf("%w: %w: not an image", ErrResourceLoad, ErrUnsupportedFormat)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Texture{}, fmt.Errorf("%w: decode image: %w", ErrResourceLoad, err)
	}
	b := img.Bounds()
	var buf *gg.ImageBuf
	if !b.Empty() {
		buf = gg.ImageBufFromImage(img)
	}
	t := a.AddTexture(buf)
	Logger().Debug("pronto: texture loaded",
		"index", t.index, "format", format, "width", b.Dx(), "height", b.Dy())
	return t, nil
}

// LoadFont decodes the TrueType or OpenType file at path and stores it.
// On failure the arena is left unchanged and the error wraps ErrResourceLoad.
func (a *Arena) LoadFont(path string) (Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Font{}, fmt.Errorf("%w: %w", ErrResourceLoad, err)
	}
	return a.LoadFontFromBytes(data)
}

// LoadFontFromBytes decodes font data and stores it.
func (a *Arena) LoadFontFromBytes(data []byte) (Font, error) {
	if !filetype.IsFont(data) {
		return Font{}, fmt.Errorf("%w: %w: not a font", ErrResourceLoad, ErrUnsupportedFormat)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return Font{}, fmt.Errorf("%w: parse font: %w", ErrResourceLoad, err)
	}
	f := a.AddFont(src)
	Logger().Debug("pronto: font loaded", "index", f.index, "name", src.Name())
	return f, nil
}

// TextureCount returns the number of stored textures.
func (a *Arena) TextureCount() int { return len(a.textures) }

// FontCount returns the number of stored fonts.
func (a *Arena) FontCount() int { return len(a.fonts) }

// TextureSize returns the pixel size of t.
func (a *Arena) TextureSize(t Texture) (width, height int) {
	img := a.texture(t)
	if img == nil {
		return 0, 0
	}
	return img.Bounds()
}

// TextureAspect returns width/height of t, or 0 when t has no height.
func (a *Arena) TextureAspect(t Texture) float32 {
	w, h := a.TextureSize(t)
	if h <= 0 {
		return 0
	}
	return float32(w) / float32(h)
}

// FontName returns the family name of f.
func (a *Arena) FontName(f Font) string {
	return a.font(f).Name()
}

func (a *Arena) texture(t Texture) *gg.ImageBuf {
	if !a.initialized || t.index < 0 || t.index >= len(a.textures) {
		panic(fmt.Sprintf("pronto: texture handle %d out of range (have %d)", t.index, len(a.textures)))
	}
	return a.textures[t.index]
}

func (a *Arena) font(f Font) *text.FontSource {
	if !a.initialized || f.index < 0 || f.index >= len(a.fonts) {
		panic(fmt.Sprintf("pronto: font handle %d out of range (have %d)", f.index, len(a.fonts)))
	}
	return a.fonts[f.index]
}

// DefaultFont returns the built-in font, decoding it on first use.
// It returns nil if the font could not be decoded; the failure is logged
// once.
func (a *Arena) DefaultFont() *text.FontSource {
	a.defaultOnce.Do(func() {
		data := a.defaultTTF
		if data == nil {
			data = goregular.TTF
		}
		a.defaultFont = decodeDefaultFont(data)
	})
	return a.defaultFont
}

// decodeDefaultFont decodes data, logging a warning and returning nil on
// failure.
func decodeDefaultFont(data []byte) *text.FontSource {
	src, err := text.NewFontSource(data)
	if err != nil {
		Logger().Warn("pronto: default font unavailable, text without an explicit font will not be drawn",
			"err", err)
		return nil
	}
	return src
}

// resolveFont returns the font for a text task: the override if set,
// otherwise the default font. It may return nil.
func (a *Arena) resolveFont(f *Font) *text.FontSource {
	if f != nil {
		return a.font(*f)
	}
	return a.DefaultFont()
}
