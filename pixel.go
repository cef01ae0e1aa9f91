package lfb

import "image/color"

// Pixel is one 24-bit truecolor cell. No alpha is persisted anywhere in the
// pipeline; transparency exists only as the per-cell painted flag on a Layer.
type Pixel struct {
	R, G, B uint8
}

// RGB creates a Pixel from 8-bit channel values.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// PixelFromRGB32 unpacks a 0xRRGGBB truecolor word. The blue channel sits in
// the low byte, which is also the first byte of the cell in window memory
// (the adapter's 24-bpp framebuffer is BGR-ordered).
func PixelFromRGB32(c uint32) Pixel {
	return Pixel{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// RGB32 packs the pixel back into a 0xRRGGBB word.
func (p Pixel) RGB32() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Color converts the pixel to the standard color.Color interface.
func (p Pixel) Color() color.Color {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}

// PixelFromColor converts a standard color.Color, discarding alpha.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Common colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
