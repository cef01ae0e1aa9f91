package lfb

import (
	"errors"
	"testing"

	"github.com/oskit/lfb/font"
)

// TestNewDefaults verifies the default geometry and layer count.
func TestNewDefaults(t *testing.T) {
	win := make([]byte, DefaultWidth*DefaultHeight*3)
	g, err := New(win)
	if err != nil {
		t.Fatal(err)
	}

	if g.Display.Width() != DefaultWidth || g.Display.Height() != DefaultHeight {
		t.Errorf("display is %dx%d, want %dx%d",
			g.Display.Width(), g.Display.Height(), DefaultWidth, DefaultHeight)
	}
	if g.Layers.Len() != DefaultLayerCount {
		t.Errorf("layer count = %d, want %d", g.Layers.Len(), DefaultLayerCount)
	}
	if g.Font == nil {
		t.Error("Font is nil, want the default engine")
	}
}

// TestNewOptions verifies WithSize, WithLayerCount and WithFontEngine.
func TestNewOptions(t *testing.T) {
	eng := font.Default()
	win := make([]byte, 64*48*3)

	g, err := New(win, WithSize(64, 48), WithLayerCount(3), WithFontEngine(eng))
	if err != nil {
		t.Fatal(err)
	}

	if g.Display.Width() != 64 || g.Display.Height() != 48 {
		t.Errorf("display is %dx%d, want 64x48", g.Display.Width(), g.Display.Height())
	}
	if g.Layers.Len() != 3 {
		t.Errorf("layer count = %d, want 3", g.Layers.Len())
	}
	if g.Layers.Width() != 64 || g.Layers.Height() != 48 {
		t.Errorf("stack is %dx%d, want 64x48", g.Layers.Width(), g.Layers.Height())
	}
	if g.Font != eng {
		t.Error("Font is not the injected engine")
	}
}

// TestNewValidation verifies construction fails for bad geometry or an
// undersized window.
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		winLen  int
		opts    []Option
		wantErr error
	}{
		{"window too small for defaults", 100, nil, ErrWindowTooSmall},
		{"window too small for option size", 64*48*3 - 1, []Option{WithSize(64, 48)}, ErrWindowTooSmall},
		{"zero size", 100, []Option{WithSize(0, 48)}, ErrInvalidSize},
		{"zero layers", 64 * 48 * 3, []Option{WithSize(64, 48), WithLayerCount(0)}, ErrNoLayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(make([]byte, tt.winLen), tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestGraphicsRender verifies the context-level render paths drive the
// stack onto the display.
func TestGraphicsRender(t *testing.T) {
	win := make([]byte, 16*12*3)
	g, err := New(win, WithSize(16, 12), WithLayerCount(2))
	if err != nil {
		t.Fatal(err)
	}

	g.Layers.Layer(0).FillRect(0, 0, 16, 12, Blue)
	l := g.Layers.Layer(1)
	l.SetEnabled(true)
	l.SetPixel(3, 4, Red)

	g.Render(Region{X0: 0, X1: 6, Y0: 0, Y1: 8})

	if got := g.Display.PixelAt(3, 4); got != Red {
		t.Errorf("rendered cell = %v, want %v", got, Red)
	}
	if got := g.Display.PixelAt(8, 8); got != (Pixel{}) {
		t.Errorf("cell outside the region = %v, want untouched", got)
	}

	g.RenderAll()

	if got := g.Display.PixelAt(8, 8); got != Blue {
		t.Errorf("cell after RenderAll = %v, want %v", got, Blue)
	}
}
