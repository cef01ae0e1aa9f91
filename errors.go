package lfb

import "errors"

// Sentinel errors for surface construction.
var (
	// ErrInvalidSize is returned when a requested width or height is not positive.
	ErrInvalidSize = errors.New("lfb: width and height must be positive")

	// ErrWindowTooSmall is returned when a byte window cannot hold
	// width*height cells of 3 bytes each.
	ErrWindowTooSmall = errors.New("lfb: window too small for requested size")

	// ErrNoLayers is returned when a layer stack is created with no layers.
	ErrNoLayers = errors.New("lfb: layer count must be positive")
)
