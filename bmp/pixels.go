package bmp

import (
	"encoding/binary"
	"image"
	"image/color"
	"iter"
	"math/bits"
)

// Pixels returns the image as a pull sequence of (position, truecolor)
// pairs. Position is (column, row) in source-image space with row 0 at the
// visual top, whatever the storage order. 32-bit samples are reduced to
// truecolor through the channel masks; alpha is ignored on this path.
//
// Uses Go 1.25+ iter.Seq2 for zero-allocation iteration.
func (m *Image) Pixels() iter.Seq2[image.Point, color.NRGBA] {
	return func(yield func(image.Point, color.NRGBA) bool) {
		if m.bpp == 24 {
			for row := range m.height {
				off := m.rowOffset(row)
				for col := range m.width {
					p := off + col*3
					c := color.NRGBA{R: m.pix[p+2], G: m.pix[p+1], B: m.pix[p], A: 0xFF}
					if !yield(image.Point{X: col, Y: row}, c) {
						return
					}
				}
			}
			return
		}
		rShift := bits.TrailingZeros32(m.masks.Red)
		gShift := bits.TrailingZeros32(m.masks.Green)
		bShift := bits.TrailingZeros32(m.masks.Blue)
		for row := range m.height {
			off := m.rowOffset(row)
			for col := range m.width {
				s := binary.LittleEndian.Uint32(m.pix[off+col*4:])
				c := color.NRGBA{
					R: uint8((s & m.masks.Red) >> rShift),
					G: uint8((s & m.masks.Green) >> gShift),
					B: uint8((s & m.masks.Blue) >> bShift),
					A: 0xFF,
				}
				if !yield(image.Point{X: col, Y: row}, c) {
					return
				}
			}
		}
	}
}

// RawPixels returns the image as a pull sequence of (position, sample)
// pairs, the sample being the packed little-endian storage word. Splitting
// a sample into channels via [Image.Masks] is the caller's job. Position
// follows the same convention as [Image.Pixels].
func (m *Image) RawPixels() iter.Seq2[image.Point, uint32] {
	return func(yield func(image.Point, uint32) bool) {
		bytesPer := m.bpp / 8
		for row := range m.height {
			off := m.rowOffset(row)
			for col := range m.width {
				p := off + col*bytesPer
				var s uint32
				if bytesPer == 3 {
					s = uint32(m.pix[p]) | uint32(m.pix[p+1])<<8 | uint32(m.pix[p+2])<<16
				} else {
					s = binary.LittleEndian.Uint32(m.pix[p:])
				}
				if !yield(image.Point{X: col, Y: row}, s) {
					return
				}
			}
		}
	}
}
