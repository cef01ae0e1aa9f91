// Package lfb provides layered compositing over a linear-framebuffer byte
// window.
//
// # Overview
//
// lfb models the drawing pipeline of a framebuffer console: software layers
// that record which cells have been painted, a compositor that merges them
// top-down into a hardware-backed display surface, BMP decoders and a glyph
// stencil renderer to fill the layers. The display writes into a caller
// supplied byte window, so the same code drives mapped video memory and
// ordinary test buffers.
//
// # Quick Start
//
//	import "github.com/oskit/lfb"
//
//	// The window would be mapped video memory on real hardware.
//	win := make([]byte, 800*600*3)
//	g, err := lfb.New(win)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Background color, one red box on layer 1, then composite.
//	g.Layers.Layer(0).FillRect(0, 0, 800, 600, lfb.Blue)
//	l := g.Layers.Layer(1)
//	l.SetEnabled(true)
//	l.FillRect(10, 10, 5, 5, lfb.Red)
//	g.RenderAll()
//
// # Coordinate Convention
//
// Every surface is indexed [row][col] and the drawing API names the row x
// and the column y:
//   - x is the row, bounded by the surface height
//   - y is the column, bounded by the surface width
//
// This is the inverse of the usual Cartesian pairing and it is applied
// consistently: FillRect(x, y, w, h, c) covers rows [x, x+h) and columns
// [y, y+w), and Pan(dx, dy) shifts by dx rows and dy columns.
//
// # Compositing
//
// Render resolves each cell first-hit-wins from the top. The foreground
// layer always contributes its painted cells; each layer below it is
// consulted only while enabled and claims the cells still unpainted. Cells
// no layer claims take the background layer's stored color, so every output
// cell is defined; the background's own painted bits and enabled flag are
// never consulted. Layer 0 is the background, the highest index the
// foreground.
//
// # Concurrency
//
// Each surface carries one mutex held for a whole drawing call, and the
// stack's structure is guarded read-mostly. Render locks one layer at a
// time, so layers may be drawn to concurrently with compositing; a layer is
// never observed mid-draw. Operations run to completion, there is no
// cancellation.
package lfb

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
