package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector is a displacement in the measurement space U.
type Vector[U Unit] struct {
	X U
	Y U
}

// Vec returns the vector ⟨x, y⟩.
func Vec[U Unit](x, y U) Vector[U] {
	return Vector[U]{X: x, Y: y}
}

// Splat returns the vector ⟨v, v⟩.
func Splat[U Unit](v U) Vector[U] {
	return Vector[U]{X: v, Y: v}
}

func (v Vector[U]) Splat() (U, U) {
	return v.X, v.Y
}

func (v Vector[U]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", float32(v.X), float32(v.Y))
}

// Add adds two vectors.
func (v Vector[U]) Add(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts o from v.
func (v Vector[U]) Sub(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul scales the vector by f.
func (v Vector[U]) Mul(f float32) Vector[U] {
	return Vector[U]{
		X: v.X * U(f),
		Y: v.Y * U(f),
	}
}

// Div divides the vector by f.
func (v Vector[U]) Div(f float32) Vector[U] {
	return Vector[U]{
		X: v.X / U(f),
		Y: v.Y / U(f),
	}
}

// Negate returns the vector with the signs of x and y flipped.
func (v Vector[U]) Negate() Vector[U] {
	return Vector[U]{X: -v.X, Y: -v.Y}
}

// NegX returns the vector with the sign of x flipped.
func (v Vector[U]) NegX() Vector[U] {
	return Vector[U]{X: -v.X, Y: v.Y}
}

// NegY returns the vector with the sign of y flipped.
func (v Vector[U]) NegY() Vector[U] {
	return Vector[U]{X: v.X, Y: -v.Y}
}

// Abs returns the vector with both components made non-negative.
func (v Vector[U]) Abs() Vector[U] {
	return Vector[U]{
		X: U(math32.Abs(float32(v.X))),
		Y: U(math32.Abs(float32(v.Y))),
	}
}

// Min returns the componentwise minimum of two vectors.
func (v Vector[U]) Min(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: min(v.X, o.X),
		Y: min(v.Y, o.Y),
	}
}

// Max returns the componentwise maximum of two vectors.
func (v Vector[U]) Max(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: max(v.X, o.X),
		Y: max(v.Y, o.Y),
	}
}

// ComponentMul returns the componentwise product of two vectors.
func (v Vector[U]) ComponentMul(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

// ComponentDiv returns the componentwise quotient of two vectors.
func (v Vector[U]) ComponentDiv(o Vector[U]) Vector[U] {
	return Vector[U]{
		X: v.X / o.X,
		Y: v.Y / o.Y,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vector[U]) Hypot() U {
	return U(math32.Hypot(float32(v.X), float32(v.Y)))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vector[U]) Hypot2() U {
	return v.X*v.X + v.Y*v.Y
}

// Lerp linearly interpolates between two vectors.
func (v Vector[U]) Lerp(o Vector[U], t float32) Vector[U] {
	return v.Add(o.Sub(v).Mul(t))
}

// Angle returns the angle between the vector and ⟨1, 0⟩ in the positive y
// direction.
func (v Vector[U]) Angle() Angle {
	return Atan2(float32(v.Y), float32(v.X))
}

// Scale scales the vector's components.
func (v Vector[U]) Scale(s Scale) Vector[U] {
	return Vector[U]{
		X: v.X * U(s.X),
		Y: v.Y * U(s.Y),
	}
}

// Rotate rotates the vector about the origin. A positive angle rotates the
// positive x direction into positive y.
func (v Vector[U]) Rotate(a Angle) Vector[U] {
	sin, cos := a.SinCos()
	return Vector[U]{
		X: U(float32(v.X)*cos - float32(v.Y)*sin),
		Y: U(float32(v.X)*sin + float32(v.Y)*cos),
	}
}

// Transform applies the linear part of an affine transform to the vector.
// The translation component does not apply to displacements.
func (v Vector[U]) Transform(t Transform[U]) Vector[U] {
	return Vector[U]{
		X: U(float32(v.X)*t.AXX + float32(v.Y)*t.AXY),
		Y: U(float32(v.X)*t.AYX + float32(v.Y)*t.AYY),
	}
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector[U]) IsNaN() bool {
	return math32.IsNaN(float32(v.X)) || math32.IsNaN(float32(v.Y))
}
