package font

import (
	xfont "golang.org/x/image/font"
)

// Box is a glyph's pixel bounding box in font space: x runs right and y
// runs down from the baseline origin, so MinY is negative for glyphs
// reaching above the baseline.
type Box struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the box width in pixels.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns the box height in pixels.
func (b Box) Height() int { return b.MaxY - b.MinY }

// HMetrics are a scaled glyph's horizontal layout metrics in pixels.
type HMetrics struct {
	// AdvanceWidth is how far the pen moves after drawing the glyph.
	AdvanceWidth float64

	// LeftSideBearing is the offset from the pen position to the left
	// edge of the outline.
	LeftSideBearing float64
}

// ScaledGlyph is one character scaled to a pixel size, ready to be measured
// and rasterized. The zero value draws nothing.
type ScaledGlyph struct {
	eng    *Engine
	face   xfont.Face
	ch     rune
	size   float64
	box    Box
	hasBox bool
}

// BoundingBox returns the exact pixel bounding box of the glyph outline.
// The second result is false when the outline is empty (spaces, glyphs the
// face could not load), in which case the box is the zero Box.
func (g ScaledGlyph) BoundingBox() (Box, bool) {
	if !g.hasBox {
		return Box{}, false
	}
	return g.box, true
}

// Rasterize draws the glyph positioned at the origin and calls emit for
// every covered sample as (row, col, coverage), row and col relative to the
// bounding box corner and coverage in [0,1]. Zero-coverage samples are not
// emitted; an empty glyph emits nothing. The underlying alpha mask is
// rasterized once per (character, size) pair and cached by the engine.
func (g ScaledGlyph) Rasterize(emit func(row, col int, cov float64)) {
	if !g.hasBox || g.face == nil {
		return
	}
	mask := g.eng.stencil(g)

	for row := range g.box.Height() {
		for col := range g.box.Width() {
			if a := mask.AlphaAt(col, row).A; a != 0 {
				emit(row, col, float64(a)/255)
			}
		}
	}
}
