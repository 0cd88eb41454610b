// Package geom provides the 2D primitives the renderer works with:
// - points and axis-aligned boxes in screen space
// - 2D affine transformations and their conversion to GL matrices
package geom

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle with its origin at the top-left.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Fit returns a box of the given fraction of b's size, centered within b.
func (b Box) Fit(fraction float64) Box {
	w, h := b.W*fraction, b.H*fraction
	return MakeBox(b.X+0.5*(b.W-w), b.Y+0.5*(b.H-h), w, h)
}

// Corners returns the box's corners, clockwise from the top-left.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}

// ScreenToNDC returns the transform from screen coordinates (origin top-left,
// y down) of a w×h viewport to OpenGL normalized device coordinates.
func ScreenToNDC(w, h float64) Affine {
	return MakeAffine(
		2.0/w, 0, -1,
		0, -2.0/h, 1,
	)
}

// Matrix4 converts the transform to a column-major OpenGL 4x4 matrix.
func (t Affine) Matrix4() [16]float32 {
	return [16]float32{
		float32(t.A), float32(t.D), 0, 0,
		float32(t.B), float32(t.E), 0, 0,
		0, 0, 1, 0,
		float32(t.C), float32(t.F), 0, 1,
	}
}
