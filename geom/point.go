package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point is a position in the measurement space U.
type Point[U Unit] struct {
	X U
	Y U
}

// Pt returns the point (x, y).
func Pt[U Unit](x, y U) Point[U] {
	return Point[U]{X: x, Y: y}
}

// Origin returns the point (0, 0).
func Origin[U Unit]() Point[U] {
	return Point[U]{}
}

// SplatPt returns the point (v, v).
func SplatPt[U Unit](v U) Point[U] {
	return Point[U]{X: v, Y: v}
}

func (pt Point[U]) Splat() (U, U) {
	return pt.X, pt.Y
}

func (pt Point[U]) String() string {
	return fmt.Sprintf("(%g, %g)", float32(pt.X), float32(pt.Y))
}

// Sub computes pt−o as a vector.
func (pt Point[U]) Sub(o Point[U]) Vector[U] {
	return Vector[U]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Add translates the point by v.
func (pt Point[U]) Add(v Vector[U]) Point[U] {
	return Point[U]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// ToVector returns the displacement of the point from the origin.
func (pt Point[U]) ToVector() Vector[U] {
	return Vector[U](pt)
}

// Min returns the componentwise minimum of two points.
func (pt Point[U]) Min(o Point[U]) Point[U] {
	return Point[U]{
		X: min(pt.X, o.X),
		Y: min(pt.Y, o.Y),
	}
}

// Max returns the componentwise maximum of two points.
func (pt Point[U]) Max(o Point[U]) Point[U] {
	return Point[U]{
		X: max(pt.X, o.X),
		Y: max(pt.Y, o.Y),
	}
}

// Lerp linearly interpolates between two points.
func (pt Point[U]) Lerp(o Point[U], t float32) Point[U] {
	return pt.Add(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point[U]) Midpoint(o Point[U]) Point[U] {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point[U]) Distance(o Point[U]) U {
	return pt.Sub(o).Hypot()
}

// Scale scales the point's coordinates.
func (pt Point[U]) Scale(s Scale) Point[U] {
	return Point[U]{
		X: pt.X * U(s.X),
		Y: pt.Y * U(s.Y),
	}
}

// Translate translates the point.
func (pt Point[U]) Translate(t Translate[U]) Point[U] {
	return Point[U]{
		X: pt.X + t.X,
		Y: pt.Y + t.Y,
	}
}

// Rotate rotates the point about the origin.
func (pt Point[U]) Rotate(r Rotate) Point[U] {
	return Point[U](Vector[U](pt).Rotate(r.Angle))
}

// Transform applies an affine transform to the point, following
// x' = x·AXX + y·AXY + TX and y' = x·AYX + y·AYY + TY.
func (pt Point[U]) Transform(t Transform[U]) Point[U] {
	return Point[U]{
		X: U(float32(pt.X)*t.AXX+float32(pt.Y)*t.AXY) + t.TX,
		Y: U(float32(pt.X)*t.AYX+float32(pt.Y)*t.AYY) + t.TY,
	}
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point[U]) IsNaN() bool {
	return math32.IsNaN(float32(pt.X)) || math32.IsNaN(float32(pt.Y))
}
