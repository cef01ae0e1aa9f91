package lfb

// Region is a half-open cell range [X0,X1)×[Y0,Y1). As everywhere in this
// package, x is the row (bounded by the surface height) and y is the column
// (bounded by the surface width); image.Rectangle is deliberately not used
// here because its axes carry the opposite meaning.
type Region struct {
	X0, X1 int // row range
	Y0, Y1 int // column range
}

// FullRegion covers an entire h×w surface.
func FullRegion(h, w int) Region {
	return Region{X0: 0, X1: h, Y0: 0, Y1: w}
}

// Clip intersects the region with an h×w surface.
func (r Region) Clip(h, w int) Region {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > h {
		r.X1 = h
	}
	if r.Y1 > w {
		r.Y1 = w
	}
	return r
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Rows returns the number of rows covered.
func (r Region) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0
}

// Cols returns the number of columns covered.
func (r Region) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0
}
