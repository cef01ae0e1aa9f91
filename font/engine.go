// Package font adapts an outline font to the binary-stencil glyph drawing
// used by the compositing layers.
//
// An Engine wraps one parsed font and hands out scaled glyphs by character
// and pixel size. The default engine carries the embedded Go Regular face,
// so text drawing works without shipping a font file.
package font

import (
	"errors"
	"fmt"
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/oskit/lfb/internal/cache"
)

// ErrBadFont is returned when font data cannot be parsed.
var ErrBadFont = errors.New("font: cannot parse font data")

// stencilLimit caps the cached rasterized stencils; a console rarely cycles
// through more distinct (character, size) pairs than this.
const stencilLimit = 512

// stencilKey identifies one rasterized stencil.
type stencilKey struct {
	ch   rune
	size float64
}

// Engine turns characters into scaled glyphs ready for stencil drawing.
// One engine wraps one outline font; the faces derived at each requested
// pixel size and the rasterized stencils are cached. All methods are safe
// for concurrent use.
type Engine struct {
	fnt *opentype.Font

	mu    sync.Mutex
	faces map[float64]xfont.Face

	stencils *cache.Cache[stencilKey, *image.Alpha]
}

// NewEngine parses TTF or OTF data into an engine.
func NewEngine(data []byte) (*Engine, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	return &Engine{
		fnt:      f,
		faces:    make(map[float64]xfont.Face),
		stencils: cache.New[stencilKey, *image.Alpha](stencilLimit),
	}, nil
}

// defaultEngine parses the embedded face once, on first use.
var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine(goregular.TTF)
	if err != nil {
		panic("font: embedded face: " + err.Error())
	}
	return e
})

// Default returns the shared engine carrying the embedded Go Regular face.
// Text drawing uses it unless a custom engine is supplied.
func Default() *Engine {
	return defaultEngine()
}

// face returns the cached face for a pixel size. Callers hold e.mu.
func (e *Engine) face(size float64) (xfont.Face, error) {
	if f, ok := e.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(e.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	e.faces[size] = f
	return f, nil
}

// Glyph returns the glyph for ch scaled to the given pixel size, along with
// its horizontal metrics. It never fails: a character the font does not
// cover resolves to the font's notdef glyph, and a size the face cannot be
// derived at yields an empty glyph with zero metrics.
func (e *Engine) Glyph(ch rune, size float64) (ScaledGlyph, HMetrics) {
	g := ScaledGlyph{eng: e, ch: ch, size: size}

	e.mu.Lock()
	defer e.mu.Unlock()
	face, err := e.face(size)
	if err != nil {
		return g, HMetrics{}
	}
	g.face = face

	bounds, advance, ok := face.GlyphBounds(ch)
	hm := HMetrics{AdvanceWidth: float64(advance) / 64}
	if !ok {
		return g, hm
	}
	hm.LeftSideBearing = float64(bounds.Min.X) / 64
	if bounds.Min.X < bounds.Max.X && bounds.Min.Y < bounds.Max.Y {
		g.box = Box{
			MinX: bounds.Min.X.Floor(),
			MinY: bounds.Min.Y.Floor(),
			MaxX: bounds.Max.X.Ceil(),
			MaxY: bounds.Max.Y.Ceil(),
		}
		g.hasBox = true
	}
	return g, hm
}

// stencil returns the glyph's alpha mask, rasterizing it on the first
// request and serving the cached copy afterwards. The mask's pixel (col,
// row) corresponds to the bounding box cell (MinX+col, MinY+row).
func (e *Engine) stencil(g ScaledGlyph) *image.Alpha {
	return e.stencils.GetOrCreate(stencilKey{ch: g.ch, size: g.size}, func() *image.Alpha {
		mask := image.NewAlpha(image.Rect(0, 0, g.box.Width(), g.box.Height()))

		// The face comes from the cache above and is not safe for
		// concurrent use, so drawing holds the engine lock.
		e.mu.Lock()
		d := &xfont.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: g.face,
			Dot:  fixed.Point26_6{X: fixed.I(-g.box.MinX), Y: fixed.I(-g.box.MinY)},
		}
		d.DrawString(string(g.ch))
		e.mu.Unlock()
		return mask
	})
}
