package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oskit/lfb"
)

func writeScene(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
background: "#202020"
layers:
  - index: 1
    ops:
      - rect: {x: 2, y: 3, w: 4, h: 5, color: "#FF0000"}
      - text: {x: 10, y: 10, size: 14, color: "#00FF00", value: "hi"}
  - index: 2
    enabled: false
    ops:
      - pan: {dx: 1, dy: -2}
render:
  - {x0: 0, x1: 8, y0: 0, y1: 8}
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	if s.Background != "#202020" {
		t.Errorf("Background = %q, want %q", s.Background, "#202020")
	}
	if len(s.Layers) != 2 {
		t.Fatalf("len(Layers) = %d, want 2", len(s.Layers))
	}
	if s.Layers[0].Index != 1 || s.Layers[0].Enabled != nil {
		t.Errorf("layer 0 = index %d enabled %v, want index 1 enabled nil", s.Layers[0].Index, s.Layers[0].Enabled)
	}
	if len(s.Layers[0].Ops) != 2 || s.Layers[0].Ops[0].Rect == nil || s.Layers[0].Ops[1].Text == nil {
		t.Errorf("layer 0 ops = %+v, want one rect then one text", s.Layers[0].Ops)
	}
	if r := s.Layers[0].Ops[0].Rect; r.X != 2 || r.Y != 3 || r.W != 4 || r.H != 5 {
		t.Errorf("rect = %+v, want x2 y3 w4 h5", r)
	}
	if s.Layers[1].Enabled == nil || *s.Layers[1].Enabled {
		t.Error("layer 1 should decode as explicitly disabled")
	}
	if p := s.Layers[1].Ops[0].Pan; p == nil || p.DX != 1 || p.DY != -2 {
		t.Errorf("pan = %+v, want dx 1 dy -2", p)
	}
	if len(s.Render) != 1 || s.Render[0] != (SceneRegion{X0: 0, X1: 8, Y0: 0, Y1: 8}) {
		t.Errorf("Render = %+v, want one 8x8 region", s.Render)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("LoadScene() on a missing file returned nil error")
	}
}

func TestLoadSceneBadYAML(t *testing.T) {
	path := writeScene(t, "layers: [unclosed")
	if _, err := LoadScene(path); err == nil {
		t.Error("LoadScene() on malformed YAML returned nil error")
	}
}

func TestSceneValidate(t *testing.T) {
	rect := &RectOp{W: 1, H: 1, Color: "#112233"}
	tests := []struct {
		name    string
		scene   Scene
		wantErr string
	}{
		{"empty", Scene{}, ""},
		{"valid", Scene{
			Background: "#000000",
			Layers:     []SceneLayer{{Index: 1, Ops: []SceneOp{{Rect: rect}}}},
		}, ""},
		{"bad background", Scene{Background: "red"}, "color"},
		{"negative index", Scene{
			Layers: []SceneLayer{{Index: -1}},
		}, "negative"},
		{"no op set", Scene{
			Layers: []SceneLayer{{Index: 0, Ops: []SceneOp{{}}}},
		}, "exactly one"},
		{"two ops set", Scene{
			Layers: []SceneLayer{{Index: 0, Ops: []SceneOp{{Rect: rect, Pan: &PanOp{DX: 1}}}}},
		}, "exactly one"},
		{"bad rect color", Scene{
			Layers: []SceneLayer{{Index: 0, Ops: []SceneOp{{Rect: &RectOp{Color: "#12"}}}}},
		}, "color"},
		{"bad text color", Scene{
			Layers: []SceneLayer{{Index: 0, Ops: []SceneOp{{Text: &TextOp{Value: "x", Color: "nope"}}}}},
		}, "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scene.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSceneApply(t *testing.T) {
	win := make([]byte, 16*16*3)
	g, err := lfb.New(win, lfb.WithSize(16, 16), lfb.WithLayerCount(3))
	if err != nil {
		t.Fatal(err)
	}

	scene := &Scene{
		Background: "#000080",
		Layers: []SceneLayer{
			{Index: 2, Ops: []SceneOp{
				{Rect: &RectOp{X: 1, Y: 1, W: 2, H: 2, Color: "#FF0000"}},
			}},
		},
	}
	if err := scene.Apply(g); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	red := lfb.Pixel{R: 0xFF}
	navy := lfb.Pixel{B: 0x80}
	if got := g.Display.PixelAt(1, 1); got != red {
		t.Errorf("display (1,1) = %+v, want %+v", got, red)
	}
	if got := g.Display.PixelAt(2, 2); got != red {
		t.Errorf("display (2,2) = %+v, want %+v", got, red)
	}
	if got := g.Display.PixelAt(0, 0); got != navy {
		t.Errorf("display (0,0) = %+v, want %+v", got, navy)
	}

	// Panning the top layer moves the rectangle down; the vacated cells
	// fall through to the background.
	pan := &Scene{
		Layers: []SceneLayer{
			{Index: 2, Ops: []SceneOp{{Pan: &PanOp{DX: 3}}}},
		},
	}
	if err := pan.Apply(g); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := g.Display.PixelAt(4, 1); got != red {
		t.Errorf("after pan, display (4,1) = %+v, want %+v", got, red)
	}
	if got := g.Display.PixelAt(1, 1); got != navy {
		t.Errorf("after pan, display (1,1) = %+v, want %+v", got, navy)
	}
}

func TestSceneApplyDisabledLayer(t *testing.T) {
	win := make([]byte, 16*16*3)
	g, err := lfb.New(win, lfb.WithSize(16, 16), lfb.WithLayerCount(3))
	if err != nil {
		t.Fatal(err)
	}

	off := false
	scene := &Scene{
		Background: "#FFFFFF",
		Layers: []SceneLayer{
			{Index: 1, Enabled: &off, Ops: []SceneOp{
				{Rect: &RectOp{X: 0, Y: 0, W: 16, H: 16, Color: "#00FF00"}},
			}},
		},
	}
	if err := scene.Apply(g); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got, want := g.Display.PixelAt(5, 5), lfb.White; got != want {
		t.Errorf("display (5,5) = %+v, want background %+v", got, want)
	}
}

func TestSceneApplyRenderRegions(t *testing.T) {
	win := make([]byte, 16*16*3)
	g, err := lfb.New(win, lfb.WithSize(16, 16), lfb.WithLayerCount(2))
	if err != nil {
		t.Fatal(err)
	}

	scene := &Scene{
		Background: "#FF0000",
		Render:     []SceneRegion{{X0: 0, X1: 2, Y0: 0, Y1: 2}},
	}
	if err := scene.Apply(g); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got, want := g.Display.PixelAt(1, 1), (lfb.Pixel{R: 0xFF}); got != want {
		t.Errorf("display (1,1) = %+v, want %+v", got, want)
	}
	// Cells outside the requested region keep their old contents.
	if got, want := g.Display.PixelAt(5, 5), (lfb.Pixel{}); got != want {
		t.Errorf("display (5,5) = %+v, want untouched %+v", got, want)
	}
}

func TestSceneApplyErrors(t *testing.T) {
	win := make([]byte, 16*16*3)
	g, err := lfb.New(win, lfb.WithSize(16, 16), lfb.WithLayerCount(2))
	if err != nil {
		t.Fatal(err)
	}

	outOfRange := &Scene{Layers: []SceneLayer{{Index: 7}}}
	if err := outOfRange.Apply(g); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("Apply() error = %v, want out of range", err)
	}

	missingImage := &Scene{
		Layers: []SceneLayer{{Index: 1, Ops: []SceneOp{
			{Image: &ImageOp{File: filepath.Join(t.TempDir(), "absent.bmp")}},
		}}},
	}
	if err := missingImage.Apply(g); err == nil {
		t.Error("Apply() with a missing image file returned nil error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    lfb.Pixel
		wantErr bool
	}{
		{"empty is white", "", lfb.White, false},
		{"hash", "#FF8001", lfb.Pixel{R: 0xFF, G: 0x80, B: 0x01}, false},
		{"bare", "00ff00", lfb.Pixel{G: 0xFF}, false},
		{"short", "#12345", lfb.Pixel{}, true},
		{"long", "#1234567", lfb.Pixel{}, true},
		{"not hex", "#ZZZZZZ", lfb.Pixel{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
