// Package pronto is a small immediate-mode drawing library for sketches
// and simple games, in the spirit of Processing.
//
// # Quick Start
//
//	import "github.com/gogpu/pronto"
//	import _ "github.com/gogpu/pronto/backend/devdraw"
//
//	w, err := pronto.New(800, 600, "sketch")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    w.FillColor(pronto.Red)
//	    w.Circle(pronto.Pt(200, 200), 50)
//	    w.UpdateOrExit()
//	}
//
// # Frames
//
// Draw calls such as Circle, Rectangle, Texture, Text and Line only queue
// work. Window.Update drains input, draws the queue in call order onto a
// frame cleared to the background color, presents it, and resets the
// drawing parameters. Every frame therefore starts from defaults:
//
//   - fill, line and font color: Black
//   - outline color: Transparent
//   - font size: 16
//
// The background color and the font chosen with SetFont persist.
//
// Closing the window or pressing Escape makes Update return ErrTerminated.
// Run and UpdateOrExit handle that for the common loop shapes.
//
// # Input
//
// Input is sampled once per frame. KeyPressed and MousePressed report held
// state; the Just variants report transitions that happened during the
// current frame only.
//
// # Resources
//
// Textures and fonts live in an Arena and are referred to by small handles.
// Loaded resources are never unloaded. A window creates its own arena unless
// one is shared with WithArena.
//
// # Backends
//
// A Window draws with gg into an RGBA frame and hands it to a Device.
// Devices come from backends that register themselves on import:
//
//   - backend/devdraw: a native window through plan9port devdraw
//   - backend/headless: an in-memory device for tests and batch rendering
//
// # Coordinate System
//
// Origin (0,0) at the top-left of the window, X grows right, Y grows down,
// units are pixels.
//
// # Logging
//
// pronto is silent by default. Use SetLogger or WithLogger to receive
// slog records.
package pronto
