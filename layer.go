package lfb

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/oskit/lfb/bmp"
	"github.com/oskit/lfb/font"
)

// cell is one layer entry: the stored color plus the painted flag that
// governs compositing precedence.
type cell struct {
	px      Pixel
	painted bool
}

// Layer is a software drawing surface. Every drawing call records, per cell,
// a color and a painted flag; an unpainted cell lets lower layers show
// through when the stack is composited. A layer starts empty and disabled
// and is never resized.
type Layer struct {
	mu      sync.Mutex
	width   int
	height  int
	enabled bool
	cells   []cell
}

// NewLayer creates an empty, disabled layer of the given size.
func NewLayer(width, height int) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Layer{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}, nil
}

// Width returns the width of the layer in cells.
func (l *Layer) Width() int {
	return l.width
}

// Height returns the height of the layer in cells.
func (l *Layer) Height() int {
	return l.height
}

// Enabled reports whether the layer contributes to compositing.
func (l *Layer) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// SetEnabled switches the layer's contribution to compositing on or off.
// Disabling does not touch the stored cells, so re-enabling restores the
// previous content.
func (l *Layer) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

// setCell paints one cell. Callers hold l.mu and guarantee 0 <= x < height
// and 0 <= y < width.
func (l *Layer) setCell(x, y int, px Pixel) {
	l.cells[x*l.width+y] = cell{px: px, painted: true}
}

// SetPixel paints the cell at row x, column y. Requests outside the layer
// are ignored.
func (l *Layer) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= l.height || y < 0 || y >= l.width {
		return
	}
	l.mu.Lock()
	l.setCell(x, y, px)
	l.mu.Unlock()
}

// SetPixelUnchecked paints the cell at row x, column y without validating
// the coordinates. Callers must have clamped them against the layer bounds;
// see Display.SetPixelUnchecked for the contract.
func (l *Layer) SetPixelUnchecked(x, y int, px Pixel) {
	l.mu.Lock()
	l.setCell(x, y, px)
	l.mu.Unlock()
}

// At returns the cell at row x, column y and whether it has been painted.
// Requests outside the layer return the zero Pixel and false.
func (l *Layer) At(x, y int) (Pixel, bool) {
	if x < 0 || x >= l.height || y < 0 || y >= l.width {
		return Pixel{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.cells[x*l.width+y]
	return c.px, c.painted
}

// FillRect paints a solid rectangle with its top-left corner at row x,
// column y, spanning h rows and w columns, clamped to the layer.
func (l *Layer) FillRect(x, y, w, h int, px Pixel) {
	r := Region{X0: x, X1: x + h, Y0: y, Y1: y + w}.Clip(l.height, l.width)
	if r.Empty() {
		return
	}
	l.mu.Lock()
	for i := r.X0; i < r.X1; i++ {
		for j := r.Y0; j < r.Y1; j++ {
			l.setCell(i, j, px)
		}
	}
	l.mu.Unlock()
}

// Clear resets every cell to the default transparent state.
func (l *Layer) Clear() {
	l.mu.Lock()
	for i := range l.cells {
		l.cells[i] = cell{}
	}
	l.mu.Unlock()
}

// DrawImage decodes 24-bit BMP data and paints it with its top-left corner
// at row x, column y. Cells falling outside the layer are skipped; data that
// does not decode paints nothing and is reported through the package logger.
func (l *Layer) DrawImage(x, y int, data []byte) {
	img, err := bmp.Decode(data)
	if err != nil {
		Logger().Error("bmp decode failed", "err", err)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for pt, c := range img.Pixels() {
		i, j := x+pt.Y, y+pt.X
		if i < 0 || i >= l.height || j < 0 || j >= l.width {
			continue
		}
		l.setCell(i, j, Pixel{R: c.R, G: c.G, B: c.B})
	}
}

// DrawImageRGBA decodes 32-bit BMP data and paints it with its top-left
// corner at row x, column y. Channels are reconstructed from the header's
// bit masks (or the defaulted 8-bit B/G/R/A set): each channel is
// (sample & mask) >> trailingZeros(mask). A source pixel is painted fully
// opaque only when its normalized alpha exceeds 0.5 and is discarded
// entirely otherwise; there is no partial blending. A missing alpha mask
// means every pixel is opaque.
func (l *Layer) DrawImageRGBA(x, y int, data []byte) {
	img, err := bmp.Decode(data)
	if err != nil {
		Logger().Error("bmp decode failed", "err", err)
		return
	}
	m := img.Masks()
	rShift := bits.TrailingZeros32(m.Red)
	gShift := bits.TrailingZeros32(m.Green)
	bShift := bits.TrailingZeros32(m.Blue)
	aShift := bits.TrailingZeros32(m.Alpha)
	aMax := m.Alpha >> aShift

	l.mu.Lock()
	defer l.mu.Unlock()
	for pt, sample := range img.RawPixels() {
		if m.Alpha != 0 {
			alpha := float64((sample&m.Alpha)>>aShift) / float64(aMax)
			if alpha <= 0.5 {
				continue
			}
		}
		i, j := x+pt.Y, y+pt.X
		if i < 0 || i >= l.height || j < 0 || j >= l.width {
			continue
		}
		l.setCell(i, j, Pixel{
			R: uint8((sample & m.Red) >> rShift),
			G: uint8((sample & m.Green) >> gShift),
			B: uint8((sample & m.Blue) >> bShift),
		})
	}
}

// DrawGlyph paints one scaled glyph in the given color with its pen origin
// at row x, column y. The glyph's exact bounding box positions it relative
// to the baseline, which sits int(size) rows below x; a glyph without a
// bounding box (an empty outline) falls back to a size×size box. Rasterizer
// samples are thresholded at coverage 0.5 and painted fully opaque, so the
// result is a binary stencil without blending.
func (l *Layer) DrawGlyph(g font.ScaledGlyph, size float64, x, y int, px Pixel) {
	box, ok := g.BoundingBox()
	if !ok {
		box = font.Box{MinX: 0, MinY: 0, MaxX: int(size), MaxY: int(size)}
	}
	baseline := int(size) + box.MinY

	l.mu.Lock()
	defer l.mu.Unlock()
	g.Rasterize(func(row, col int, cov float64) {
		if cov <= 0.5 {
			return
		}
		i, j := baseline+x+row, y+col+box.MinX
		if i < 0 || i >= l.height || j < 0 || j >= l.width {
			return
		}
		l.setCell(i, j, px)
	})
}

// DrawString paints s left to right in the given color, the pen starting at
// row x, column y. Each character advances the pen by its horizontal
// advance plus one column of spacing. Drawing stops silently once the pen
// reaches the right edge; there is no wrapping, so multi-line text is the
// caller's job.
func (l *Layer) DrawString(eng *font.Engine, s string, size float64, x, y int, px Pixel) {
	pen := float64(y)
	for _, ch := range s {
		if int(pen) >= l.width {
			return
		}
		g, hm := eng.Glyph(ch, size)
		l.DrawGlyph(g, size, x, int(pen), px)
		pen += hm.AdvanceWidth + 1
	}
}

// axisRange returns the start, stop and step for walking one axis of a pan
// so that source cells are read before they are overwritten: a positive
// shift walks the axis backwards.
func axisRange(n, delta int) (start, stop, step int) {
	if delta > 0 {
		return n - 1, -1, -1
	}
	return 0, n, 1
}

// Pan shifts the layer content by dx rows and dy columns. Each destination
// cell takes the value of its source cell (x-dx, y-dy) when that lies in
// bounds and becomes the default transparent cell otherwise, so content
// shifted past an edge is dropped and the vacated band clears.
func (l *Layer) Pan(dx, dy int) {
	xStart, xStop, xStep := axisRange(l.height, dx)
	yStart, yStop, yStep := axisRange(l.width, dy)

	l.mu.Lock()
	for x := xStart; x != xStop; x += xStep {
		for y := yStart; y != yStop; y += yStep {
			sx, sy := x-dx, y-dy
			dst := &l.cells[x*l.width+y]
			if sx >= 0 && sx < l.height && sy >= 0 && sy < l.width {
				*dst = l.cells[sx*l.width+sy]
			} else {
				*dst = cell{}
			}
		}
	}
	l.mu.Unlock()
}
