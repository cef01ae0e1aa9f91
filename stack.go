package lfb

import (
	"fmt"
	"sync"
)

// LayerStack is a fixed-length ordered collection of equally sized layers.
// Index 0 is the background: its stored colors supply the fallback for
// every cell no higher layer claims. The highest index is the foreground,
// consulted first. The stack's shape is frozen at construction; only the
// layers' contents change afterwards.
type LayerStack struct {
	mu     sync.RWMutex // structural guard, read-held while compositing
	width  int
	height int
	layers []*Layer
}

// NewLayerStack creates a stack of count empty, disabled layers of the
// given size.
func NewLayerStack(width, height, count int) (*LayerStack, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoLayers, count)
	}
	layers := make([]*Layer, count)
	for i := range layers {
		l, err := NewLayer(width, height)
		if err != nil {
			return nil, err
		}
		layers[i] = l
	}
	return &LayerStack{width: width, height: height, layers: layers}, nil
}

// Len returns the number of layers.
func (s *LayerStack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Layer returns the layer at index i, or nil when i is out of range.
// Index 0 is the background, Len()-1 the foreground.
func (s *LayerStack) Layer(i int) *Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Width returns the width of every layer in cells.
func (s *LayerStack) Width() int {
	return s.width
}

// Height returns the height of every layer in cells.
func (s *LayerStack) Height() int {
	return s.height
}

// Render composites the given region of the stack onto dst. The region is
// clipped against both surfaces; a degenerate region or an empty stack is a
// no-op.
//
// Resolution is first-hit-wins from the top: the working copy is seeded
// from the foreground layer, each lower enabled layer then claims the cells
// still unpainted, and whatever remains takes the background layer's stored
// color. The background is consulted for color only, so its painted bits
// and enabled flag are irrelevant; a disabled middle layer contributes
// nothing while its cells stay stored. Every resolved cell is finally
// written to dst whether or not any layer painted it.
//
// The structural guard is read-held for the whole call. Each layer's own
// lock is held only while that layer is scanned, so a layer may be mutated
// between scans but never mid-scan.
func (s *LayerStack) Render(dst *Display, r Region) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.layers) == 0 {
		return
	}
	r = r.Clip(s.height, s.width).Clip(dst.Height(), dst.Width())
	if r.Empty() {
		return
	}
	cols := r.Cols()
	work := make([]cell, r.Rows()*cols)

	// Seed from the foreground layer.
	top := s.layers[len(s.layers)-1]
	top.mu.Lock()
	for x := r.X0; x < r.X1; x++ {
		row := x * s.width
		copy(work[(x-r.X0)*cols:(x-r.X0+1)*cols], top.cells[row+r.Y0:row+r.Y1])
	}
	top.mu.Unlock()

	// Walk the middle layers downwards; the first painted cell wins.
	for i := len(s.layers) - 2; i >= 1; i-- {
		l := s.layers[i]
		l.mu.Lock()
		if !l.enabled {
			l.mu.Unlock()
			continue
		}
		for x := r.X0; x < r.X1; x++ {
			wrow := (x - r.X0) * cols
			row := x * s.width
			for y := r.Y0; y < r.Y1; y++ {
				w := &work[wrow+y-r.Y0]
				if w.painted {
					continue
				}
				if c := l.cells[row+y]; c.painted {
					*w = c
				}
			}
		}
		l.mu.Unlock()
	}

	// Unclaimed cells fall back to the background's stored color.
	bg := s.layers[0]
	bg.mu.Lock()
	for x := r.X0; x < r.X1; x++ {
		wrow := (x - r.X0) * cols
		row := x * s.width
		for y := r.Y0; y < r.Y1; y++ {
			if w := &work[wrow+y-r.Y0]; !w.painted {
				w.px = bg.cells[row+y].px
			}
		}
	}
	bg.mu.Unlock()

	// One locked pass writes the resolved region out.
	dst.mu.Lock()
	for x := r.X0; x < r.X1; x++ {
		wrow := (x - r.X0) * cols
		for y := r.Y0; y < r.Y1; y++ {
			dst.setCell(x, y, work[wrow+y-r.Y0].px)
		}
	}
	dst.mu.Unlock()
}
