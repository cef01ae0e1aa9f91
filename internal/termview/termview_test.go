package termview

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// fill paints every pixel of img with c.
func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestRenderPacksRowPairs(t *testing.T) {
	// Top row red then green, bottom row blue then white.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	lines := Render(img, 80)
	if len(lines) != 1 {
		t.Fatalf("Render() produced %d lines, want 1", len(lines))
	}

	want := "\x1b[48;2;255;0;0m\x1b[38;2;0;0;255m▄" +
		"\x1b[48;2;0;255;0m\x1b[38;2;255;255;255m▄" +
		"\x1b[0m"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestRenderOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	fill(img, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	lines := Render(img, 80)
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, want 2", len(lines))
	}
	// The dangling last row has no partner; its foreground is black.
	if want := "\x1b[48;2;10;20;30m\x1b[38;2;0;0;0m▄\x1b[0m"; lines[1] != want {
		t.Errorf("last line = %q, want %q", lines[1], want)
	}
}

func TestRenderDownscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	fill(img, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	lines := Render(img, 10)
	// 200x100 at 10 columns scales to 10x5, packed two rows per line.
	if len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▄"); got != 10 {
			t.Errorf("line %d holds %d cells, want 10", i, got)
		}
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line %d does not end with a reset", i)
		}
	}
	// A uniform source stays uniform through the scaler.
	if !strings.Contains(lines[0], "\x1b[48;2;200;100;50m") {
		t.Errorf("line 0 = %q, want background 200;100;50", lines[0])
	}
}

func TestRenderDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		img     image.Image
		maxCols int
	}{
		{"zero width", image.NewRGBA(image.Rect(0, 0, 0, 5)), 80},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 5, 0)), 80},
		{"zero columns", image.NewRGBA(image.Rect(0, 0, 5, 5)), 0},
		{"negative columns", image.NewRGBA(image.Rect(0, 0, 5, 5)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if lines := Render(tt.img, tt.maxCols); lines != nil {
				t.Errorf("Render() = %d lines, want nil", len(lines))
			}
		})
	}
}

func TestRenderOffsetBounds(t *testing.T) {
	// Sub-images start at a non-zero origin; rendering must follow Bounds.
	img := image.NewRGBA(image.Rect(3, 7, 5, 9))
	fill(img, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	lines := Render(img, 80)
	if len(lines) != 1 {
		t.Fatalf("Render() produced %d lines, want 1", len(lines))
	}
	want := "\x1b[48;2;9;8;7m\x1b[38;2;9;8;7m▄" +
		"\x1b[48;2;9;8;7m\x1b[38;2;9;8;7m▄" +
		"\x1b[0m"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestWrite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	fill(img, color.RGBA{A: 255})

	var sb strings.Builder
	if err := Write(&sb, img, 80); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "\x1b[48;2;0;0;0m\x1b[38;2;0;0;0m▄\x1b[0m\n"
	if sb.String() != want {
		t.Errorf("Write() wrote %q, want %q", sb.String(), want)
	}
}
