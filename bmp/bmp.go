// Package bmp decodes Windows bitmap images into pull sequences of pixels.
//
// Only the uncompressed truecolor encodings used by framebuffer assets are
// accepted: 24 bits per pixel, and 32 bits per pixel with header-declared
// (or defaulted) channel bit masks. Decode validates the whole file up
// front, so the iterators never fail mid-image.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors for bmp decoding.
var (
	// ErrTooShort is returned when the data ends inside a header.
	ErrTooShort = errors.New("bmp: data too short")

	// ErrBadMagic is returned when the data does not start with "BM".
	ErrBadMagic = errors.New("bmp: bad magic")

	// ErrBadHeader is returned when a header field is invalid.
	ErrBadHeader = errors.New("bmp: bad header")

	// ErrUnsupported is returned for valid bitmaps this package does not
	// decode (palette depths, compressed data, OS/2 core headers).
	ErrUnsupported = errors.New("bmp: unsupported format")

	// ErrTruncated is returned when the pixel array does not fit in the data.
	ErrTruncated = errors.New("bmp: truncated pixel data")
)

// File header and DIB header sizes.
const (
	fileHeaderLen = 14
	coreHeaderLen = 12
	infoHeaderLen = 40
	v2HeaderLen   = 52
	v3HeaderLen   = 56
	v4HeaderLen   = 108
	v5HeaderLen   = 124
)

// Compression modes.
const (
	biRGB       = 0
	biBitfields = 3
)

// Masks identifies which bits of a packed sample belong to each channel.
// A zero Alpha means the image carries no alpha information.
type Masks struct {
	Red   uint32
	Green uint32
	Blue  uint32
	Alpha uint32
}

// defaultMasks returns the implied mask set for an image whose header
// declares none: 8 bits per channel in B/G/R/A memory order, the alpha
// byte only present at 32 bpp.
func defaultMasks(bpp int) Masks {
	m := Masks{Red: 0x00FF0000, Green: 0x0000FF00, Blue: 0x000000FF}
	if bpp == 32 {
		m.Alpha = 0xFF000000
	}
	return m
}

// Image is a validated bitmap. Its pixel data is decoded lazily through
// [Image.Pixels] and [Image.RawPixels].
type Image struct {
	width   int
	height  int
	topDown bool
	bpp     int
	stride  int
	pix     []byte
	masks   Masks
}

// Decode parses and validates a bitmap. The returned Image shares data's
// backing array.
func Decode(data []byte) (*Image, error) {
	if len(data) < fileHeaderLen+4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, data[:2])
	}
	dataOffset := int(binary.LittleEndian.Uint32(data[10:]))
	dibLen := int(binary.LittleEndian.Uint32(data[14:]))

	switch dibLen {
	case infoHeaderLen, v2HeaderLen, v3HeaderLen, v4HeaderLen, v5HeaderLen:
	case coreHeaderLen:
		return nil, fmt.Errorf("%w: OS/2 core header", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: DIB header length %d", ErrBadHeader, dibLen)
	}
	if len(data) < fileHeaderLen+dibLen {
		return nil, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTooShort, fileHeaderLen+dibLen, len(data))
	}

	width := int(int32(binary.LittleEndian.Uint32(data[18:])))
	rawHeight := int(int32(binary.LittleEndian.Uint32(data[22:])))
	planes := int(binary.LittleEndian.Uint16(data[26:]))
	bpp := int(binary.LittleEndian.Uint16(data[28:]))
	compression := int(binary.LittleEndian.Uint32(data[30:]))

	if planes != 1 {
		return nil, fmt.Errorf("%w: %d planes", ErrBadHeader, planes)
	}
	if width <= 0 || rawHeight == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadHeader, width, rawHeight)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bpp", ErrUnsupported, bpp)
	}

	img := &Image{
		width:   width,
		height:  rawHeight,
		bpp:     bpp,
		topDown: rawHeight < 0,
		masks:   defaultMasks(bpp),
	}
	if img.topDown {
		img.height = -rawHeight
	}

	maskEnd := fileHeaderLen + dibLen
	switch compression {
	case biRGB:
	case biBitfields:
		if bpp != 32 {
			return nil, fmt.Errorf("%w: bit fields at %d bpp", ErrUnsupported, bpp)
		}
		// A plain info header stores the three color masks in the 12 bytes
		// that follow it; the V2+ headers carry them (and V3+ the alpha
		// mask) as ordinary fields at the same offsets.
		if dibLen == infoHeaderLen {
			maskEnd += 12
			if len(data) < maskEnd {
				return nil, fmt.Errorf("%w: missing bit field masks", ErrTooShort)
			}
		}
		m := Masks{
			Red:   binary.LittleEndian.Uint32(data[54:]),
			Green: binary.LittleEndian.Uint32(data[58:]),
			Blue:  binary.LittleEndian.Uint32(data[62:]),
		}
		if dibLen >= v3HeaderLen {
			m.Alpha = binary.LittleEndian.Uint32(data[66:])
		}
		// A declared-but-empty mask set falls back to the defaults.
		if m.Red|m.Green|m.Blue != 0 {
			img.masks = m
		}
	default:
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupported, compression)
	}

	if dataOffset < maskEnd {
		return nil, fmt.Errorf("%w: pixel data offset %d inside headers", ErrBadHeader, dataOffset)
	}
	if dataOffset > len(data) {
		return nil, fmt.Errorf("%w: pixel data offset %d beyond %d bytes", ErrTruncated, dataOffset, len(data))
	}

	// Rows are padded to 4-byte boundaries; at 32 bpp that is a no-op.
	img.stride = (width*(bpp/8) + 3) &^ 3
	if need := int64(img.stride) * int64(img.height); int64(len(data)-dataOffset) < need {
		return nil, fmt.Errorf("%w: need %d pixel bytes, have %d", ErrTruncated, need, len(data)-dataOffset)
	}
	img.pix = data[dataOffset:]
	return img, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels, always positive.
func (m *Image) Height() int {
	return m.height
}

// BitsPerPixel returns the storage depth, 24 or 32.
func (m *Image) BitsPerPixel() int {
	return m.bpp
}

// Masks returns the channel bit masks: the header-declared set for bit-field
// images, otherwise the defaulted 8-bit B/G/R/A set.
func (m *Image) Masks() Masks {
	return m.masks
}

// rowOffset maps a visual row (0 = top) to its byte offset, undoing the
// bottom-up storage order of positive-height bitmaps.
func (m *Image) rowOffset(row int) int {
	if !m.topDown {
		row = m.height - 1 - row
	}
	return row * m.stride
}
