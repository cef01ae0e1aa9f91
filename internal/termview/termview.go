// Package termview renders images as ANSI half-block art for quick
// terminal previews of composited frames.
package termview

import (
	"fmt"
	"image"
	"io"
	"strings"

	"golang.org/x/image/draw"
)

// Render converts img to lines of ANSI truecolor text at most maxCols
// characters wide. Each line packs two pixel rows into the lower-half block
// character, the top pixel as background and the bottom as foreground, and
// ends with a reset. Oversized images are scaled down preserving aspect
// ratio; a degenerate image or width yields nil.
func Render(img image.Image, maxCols int) []string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || maxCols <= 0 {
		return nil
	}
	if w > maxCols {
		h = h * maxCols / w
		if h < 1 {
			h = 1
		}
		w = maxCols
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
		b = dst.Bounds()
	}

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var sb strings.Builder
		for x := range w {
			tr, tg, tb := rgbAt(img, b.Min.X+x, b.Min.Y+y)
			var br, bg, bb uint8
			if y+1 < h {
				br, bg, bb = rgbAt(img, b.Min.X+x, b.Min.Y+y+1)
			}
			fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				tr, tg, tb, br, bg, bb)
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}
	return lines
}

// Write renders img and writes the lines to w.
func Write(w io.Writer, img image.Image, maxCols int) error {
	for _, line := range Render(img, maxCols) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
