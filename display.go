package lfb

import (
	"fmt"
	"image"
	"sync"

	"github.com/oskit/lfb/bmp"
)

// Display drives a linear-framebuffer byte window laid out row-major as one
// blue-green-red triple per cell. It does not own the window: the caller maps
// or allocates it and hands it in, which keeps the same type usable for real
// video memory and for plain test buffers.
//
// Coordinates follow the package convention: x is the row, bounded by the
// height, and y is the column, bounded by the width.
type Display struct {
	mu     sync.Mutex
	width  int
	height int
	win    []byte // BGR format, 3 bytes per cell
}

// NewDisplay wraps an existing byte window as a width×height display.
// The window must hold at least width*height*3 bytes; trailing extra bytes
// are left untouched.
func NewDisplay(win []byte, width, height int) (*Display, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if need := width * height * 3; len(win) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrWindowTooSmall, len(win), need)
	}
	return &Display{width: width, height: height, win: win}, nil
}

// Width returns the width of the display in cells.
func (d *Display) Width() int {
	return d.width
}

// Height returns the height of the display in cells.
func (d *Display) Height() int {
	return d.height
}

// Window returns the backing byte window.
func (d *Display) Window() []byte {
	return d.win
}

// setCell writes one cell. Callers hold d.mu and guarantee 0 <= x < height
// and 0 <= y < width.
func (d *Display) setCell(x, y int, px Pixel) {
	i := (x*d.width + y) * 3
	d.win[i+0] = px.B
	d.win[i+1] = px.G
	d.win[i+2] = px.R
}

// SetPixel sets the cell at row x, column y. Requests outside the display
// are ignored.
func (d *Display) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= d.height || y < 0 || y >= d.width {
		return
	}
	d.mu.Lock()
	d.setCell(x, y, px)
	d.mu.Unlock()
}

// SetPixelUnchecked sets the cell at row x, column y without validating the
// coordinates. It exists for callers that have already clamped a run of
// cells against the display bounds; a coordinate outside them lands in a
// neighbouring row or panics. Everyone else should use SetPixel.
func (d *Display) SetPixelUnchecked(x, y int, px Pixel) {
	d.mu.Lock()
	d.setCell(x, y, px)
	d.mu.Unlock()
}

// PixelAt returns the cell at row x, column y. Requests outside the display
// return the zero Pixel.
func (d *Display) PixelAt(x, y int) Pixel {
	if x < 0 || x >= d.height || y < 0 || y >= d.width {
		return Pixel{}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	i := (x*d.width + y) * 3
	return Pixel{R: d.win[i+2], G: d.win[i+1], B: d.win[i+0]}
}

// FillRect paints a solid rectangle with its top-left corner at row x,
// column y, spanning h rows and w columns. The rectangle is clamped to the
// display, so an oversized request paints the intersection.
func (d *Display) FillRect(x, y, w, h int, px Pixel) {
	r := Region{X0: x, X1: x + h, Y0: y, Y1: y + w}.Clip(d.height, d.width)
	Logger().Debug("fill rect", "x0", r.X0, "y0", r.Y0, "x1", r.X1, "y1", r.Y1)
	if r.Empty() {
		return
	}
	d.mu.Lock()
	for i := r.X0; i < r.X1; i++ {
		for j := r.Y0; j < r.Y1; j++ {
			d.setCell(i, j, px)
		}
	}
	d.mu.Unlock()
}

// Clear fills the entire display with one color.
func (d *Display) Clear(px Pixel) {
	d.mu.Lock()
	for i := 0; i < d.width*d.height*3; i += 3 {
		d.win[i+0] = px.B
		d.win[i+1] = px.G
		d.win[i+2] = px.R
	}
	d.mu.Unlock()
}

// DrawImage decodes 24-bit BMP data and blits it with its top-left corner
// at row x, column y. Cells falling outside the display are skipped. When
// the data does not decode, nothing is painted and the failure is reported
// through the package logger.
func (d *Display) DrawImage(x, y int, data []byte) {
	img, err := bmp.Decode(data)
	if err != nil {
		Logger().Error("bmp decode failed", "err", err)
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for pt, c := range img.Pixels() {
		i, j := x+pt.Y, y+pt.X
		if i < 0 || i >= d.height || j < 0 || j >= d.width {
			continue
		}
		d.setCell(i, j, Pixel{R: c.R, G: c.G, B: c.B})
	}
}

// Snapshot copies the current window contents into an image.RGBA.
func (d *Display) Snapshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for x := 0; x < d.height; x++ {
		for y := 0; y < d.width; y++ {
			i := (x*d.width + y) * 3
			o := img.PixOffset(y, x)
			img.Pix[o+0] = d.win[i+2]
			img.Pix[o+1] = d.win[i+1]
			img.Pix[o+2] = d.win[i+0]
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}
