// Command lfbdemo draws a layered scene, composites it and writes the
// result as a PNG or an ANSI terminal preview.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/oskit/lfb"
	"github.com/oskit/lfb/internal/termview"
)

func main() {
	var (
		width   = flag.Int("width", lfb.DefaultWidth, "surface width")
		height  = flag.Int("height", lfb.DefaultHeight, "surface height")
		layers  = flag.Int("layers", lfb.DefaultLayerCount, "layer count")
		scene   = flag.String("scene", "", "YAML scene file (built-in demo when empty)")
		output  = flag.String("output", "lfbdemo.png", "output file")
		preview = flag.Bool("preview", false, "print an ANSI preview to stdout")
		verbose = flag.Bool("v", false, "verbose diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		lfb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Hosted stand-in for the mapped framebuffer window.
	win := make([]byte, *width**height*3)
	g, err := lfb.New(win, lfb.WithSize(*width, *height), lfb.WithLayerCount(*layers))
	if err != nil {
		log.Fatalf("Failed to create graphics: %v", err)
	}

	if *scene != "" {
		s, err := LoadScene(*scene)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		if err := s.Apply(g); err != nil {
			log.Fatalf("Failed to apply scene: %v", err)
		}
	} else {
		drawBuiltin(g)
		g.RenderAll()
	}

	snap := g.Display.Snapshot()

	if *preview {
		cols := 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				cols = w
			}
		}
		if err := termview.Write(os.Stdout, snap, cols); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := png.Encode(f, snap); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}

	log.Printf("Saved %s (%dx%d)\n", *output, *width, *height)
}

// drawBuiltin paints the demonstration scene: a gradient backdrop, two
// overlapping rectangles on separate layers, a pan and a title line.
func drawBuiltin(g *lfb.Graphics) {
	w, h := g.Display.Width(), g.Display.Height()

	// Vertical gradient on the background layer.
	bg := g.Layers.Layer(0)
	for x := range h {
		t := float64(x) / float64(h)
		bg.FillRect(x, 0, w, 1, lfb.RGB(
			uint8(16+40*t),
			uint8(24+40*t),
			uint8(56+80*t),
		))
	}

	if l := g.Layers.Layer(1); l != nil {
		l.SetEnabled(true)
		l.FillRect(h/4, w/4, w/3, h/3, lfb.Red)
		l.Pan(12, 20)
	}
	if l := g.Layers.Layer(2); l != nil {
		l.SetEnabled(true)
		l.FillRect(h/3, w/3, w/3, h/4, lfb.RGB(0x20, 0xC0, 0x50))
	}
	if top := g.Layers.Layer(g.Layers.Len() - 1); top != nil && g.Layers.Len() > 1 {
		top.SetEnabled(true)
		top.DrawString(g.Font, "layered framebuffer demo", 24, 40, 40, lfb.White)
	}
}
