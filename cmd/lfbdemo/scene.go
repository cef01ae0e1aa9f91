package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oskit/lfb"
)

// Scene is a YAML description of what to draw on which layer and which
// regions to composite afterwards.
type Scene struct {
	Background string        `yaml:"background"`
	Layers     []SceneLayer  `yaml:"layers"`
	Render     []SceneRegion `yaml:"render"`
}

// SceneLayer lists the operations applied to one layer.
type SceneLayer struct {
	Index   int       `yaml:"index"`
	Enabled *bool     `yaml:"enabled"` // nil means enabled
	Ops     []SceneOp `yaml:"ops"`
}

// SceneOp is one drawing operation. Exactly one field must be set.
type SceneOp struct {
	Rect    *RectOp  `yaml:"rect"`
	Text    *TextOp  `yaml:"text"`
	Image   *ImageOp `yaml:"image"`
	Image32 *ImageOp `yaml:"image32"`
	Pan     *PanOp   `yaml:"pan"`
}

// RectOp fills a rectangle: x is the top row, y the left column, spanning
// h rows and w columns.
type RectOp struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
	Color string `yaml:"color"`
}

// TextOp draws a string with its pen origin at row x, column y.
type TextOp struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
	Value string  `yaml:"value"`
}

// ImageOp blits a BMP file with its top-left corner at row x, column y.
type ImageOp struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	File string `yaml:"file"`
}

// PanOp shifts the layer by dx rows and dy columns.
type PanOp struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// SceneRegion is a half-open composite region; row range [x0,x1), column
// range [y0,y1).
type SceneRegion struct {
	X0 int `yaml:"x0"`
	X1 int `yaml:"x1"`
	Y0 int `yaml:"y0"`
	Y1 int `yaml:"y1"`
}

// LoadScene reads and validates a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate scene %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that every operation is well formed.
func (s *Scene) Validate() error {
	if s.Background != "" {
		if _, err := parseColor(s.Background); err != nil {
			return err
		}
	}
	for _, sl := range s.Layers {
		if sl.Index < 0 {
			return fmt.Errorf("layer index %d is negative", sl.Index)
		}
		for i, op := range sl.Ops {
			set := 0
			for _, p := range []bool{op.Rect != nil, op.Text != nil, op.Image != nil, op.Image32 != nil, op.Pan != nil} {
				if p {
					set++
				}
			}
			if set != 1 {
				return fmt.Errorf("layer %d op %d: exactly one of rect, text, image, image32, pan", sl.Index, i)
			}
			var c string
			switch {
			case op.Rect != nil:
				c = op.Rect.Color
			case op.Text != nil:
				c = op.Text.Color
			}
			if c != "" {
				if _, err := parseColor(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Apply draws the scene into the graphics context and composites the
// requested regions (the full surface when none are given).
func (s *Scene) Apply(g *lfb.Graphics) error {
	if s.Background != "" {
		px, err := parseColor(s.Background)
		if err != nil {
			return err
		}
		g.Layers.Layer(0).FillRect(0, 0, g.Display.Width(), g.Display.Height(), px)
	}
	for _, sl := range s.Layers {
		l := g.Layers.Layer(sl.Index)
		if l == nil {
			return fmt.Errorf("layer %d out of range (stack has %d)", sl.Index, g.Layers.Len())
		}
		l.SetEnabled(sl.Enabled == nil || *sl.Enabled)
		for _, op := range sl.Ops {
			if err := applyOp(g, l, op); err != nil {
				return fmt.Errorf("layer %d: %w", sl.Index, err)
			}
		}
	}
	if len(s.Render) == 0 {
		g.RenderAll()
		return nil
	}
	for _, r := range s.Render {
		g.Render(lfb.Region{X0: r.X0, X1: r.X1, Y0: r.Y0, Y1: r.Y1})
	}
	return nil
}

func applyOp(g *lfb.Graphics, l *lfb.Layer, op SceneOp) error {
	switch {
	case op.Rect != nil:
		px, err := parseColor(op.Rect.Color)
		if err != nil {
			return err
		}
		l.FillRect(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, px)
	case op.Text != nil:
		px, err := parseColor(op.Text.Color)
		if err != nil {
			return err
		}
		size := op.Text.Size
		if size == 0 {
			size = 16
		}
		l.DrawString(g.Font, op.Text.Value, size, op.Text.X, op.Text.Y, px)
	case op.Image != nil:
		data, err := os.ReadFile(op.Image.File)
		if err != nil {
			return fmt.Errorf("read image %s: %w", op.Image.File, err)
		}
		l.DrawImage(op.Image.X, op.Image.Y, data)
	case op.Image32 != nil:
		data, err := os.ReadFile(op.Image32.File)
		if err != nil {
			return fmt.Errorf("read image %s: %w", op.Image32.File, err)
		}
		l.DrawImageRGBA(op.Image32.X, op.Image32.Y, data)
	case op.Pan != nil:
		l.Pan(op.Pan.DX, op.Pan.DY)
	}
	return nil
}

// parseColor turns "#RRGGBB" (the hash optional) into a Pixel. An empty
// string is white so text stays visible when a scene omits colors.
func parseColor(s string) (lfb.Pixel, error) {
	if s == "" {
		return lfb.White, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return lfb.Pixel{}, fmt.Errorf("color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return lfb.Pixel{}, fmt.Errorf("color %q: %w", s, err)
	}
	return lfb.PixelFromRGB32(uint32(v)), nil
}
