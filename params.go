package pronto

// DefaultFontSize is the font size every frame starts with.
const DefaultFontSize = 16

// RenderParams is the current pen: the colors and font size applied to
// draw calls. Each draw call captures a copy, so changing a parameter never
// affects shapes that were already drawn.
//
// Window resets its RenderParams to DefaultRenderParams at the end of every
// Update. The active font is deliberately not part of RenderParams and is
// not reset; see Window.SetFont.
type RenderParams struct {
	Fill      Color
	Outline   Color
	Line      Color
	FontColor Color
	FontSize  uint32
}

// DefaultRenderParams returns the parameters every frame starts with:
// black fill, transparent outline, black lines, black 16px text.
func DefaultRenderParams() RenderParams {
	return RenderParams{
		Fill:      Black,
		Outline:   Transparent,
		Line:      Black,
		FontColor: Black,
		FontSize:  DefaultFontSize,
	}
}
