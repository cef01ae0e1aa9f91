package lfb

import "github.com/oskit/lfb/font"

// Graphics owns one drawing pipeline: the display, the layer stack
// composited onto it, and the font engine shared by text drawing. Construct
// one at startup and hand it to whoever draws; the package keeps no ambient
// drawing state.
type Graphics struct {
	Display *Display
	Layers  *LayerStack
	Font    *font.Engine
}

// New builds a Graphics context over an already mapped byte window. The
// window must be large enough for the configured geometry; establishing and
// validating the mapping itself is the caller's job.
func New(win []byte, opts ...Option) (*Graphics, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d, err := NewDisplay(win, o.width, o.height)
	if err != nil {
		return nil, err
	}
	s, err := NewLayerStack(o.width, o.height, o.layerCount)
	if err != nil {
		return nil, err
	}
	eng := o.engine
	if eng == nil {
		eng = font.Default()
	}
	return &Graphics{Display: d, Layers: s, Font: eng}, nil
}

// Render composites a region of the layer stack onto the display.
func (g *Graphics) Render(r Region) {
	g.Layers.Render(g.Display, r)
}

// RenderAll composites the whole surface.
func (g *Graphics) RenderAll() {
	g.Render(FullRegion(g.Display.Height(), g.Display.Width()))
}
