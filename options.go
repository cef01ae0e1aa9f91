package lfb

import "github.com/oskit/lfb/font"

// Reference geometry used when no options override it.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultLayerCount = 5
)

// Option configures a Graphics context during creation.
//
// Example:
//
//	// Default 800×600 surface with five layers
//	g, err := lfb.New(win)
//
//	// Custom geometry
//	g, err := lfb.New(win, lfb.WithSize(1024, 768), lfb.WithLayerCount(3))
type Option func(*options)

// options holds optional configuration for Graphics creation.
type options struct {
	width      int
	height     int
	layerCount int
	engine     *font.Engine
}

// defaultOptions returns the default Graphics options.
func defaultOptions() options {
	return options{
		width:      DefaultWidth,
		height:     DefaultHeight,
		layerCount: DefaultLayerCount,
	}
}

// WithSize sets the surface geometry. Every layer and the display share it;
// it is fixed for the lifetime of the context.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithLayerCount sets how many layers the stack holds. Index 0 is the
// background, the highest index the foreground.
func WithLayerCount(n int) Option {
	return func(o *options) {
		o.layerCount = n
	}
}

// WithFontEngine sets the engine used for text drawing. The default engine
// carries the embedded Go Regular face.
//
// Example:
//
//	eng, err := font.NewEngine(ttfData)
//	g, err := lfb.New(win, lfb.WithFontEngine(eng))
func WithFontEngine(e *font.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}
