package geom

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Angle is an angle, stored canonically in radians.
type Angle float32

// Common angles.
const (
	ZeroAngle Angle = 0
	QuarterPi Angle = math.Pi / 4
	HalfPi    Angle = math.Pi / 2
	Pi        Angle = math.Pi
	Tau       Angle = 2 * math.Pi
)

// Radians returns the angle of rad radians.
func Radians(rad float32) Angle {
	return Angle(rad)
}

// Degrees returns the angle of deg degrees.
func Degrees(deg float32) Angle {
	return Angle(deg * (math.Pi / 180))
}

// Atan2 returns the arc tangent of y/x, selecting the quadrant from the signs
// of the two arguments.
func Atan2(y, x float32) Angle {
	return Angle(math32.Atan2(y, x))
}

// Asin returns the arc sine of v.
func Asin(v float32) Angle {
	return Angle(math32.Asin(v))
}

// Acos returns the arc cosine of v.
func Acos(v float32) Angle {
	return Angle(math32.Acos(v))
}

// Atan returns the arc tangent of v.
func Atan(v float32) Angle {
	return Angle(math32.Atan(v))
}

// Radians returns the angle measured in radians.
func (a Angle) Radians() float32 {
	return float32(a)
}

// Degrees returns the angle measured in degrees.
func (a Angle) Degrees() float32 {
	return float32(a) * (180 / math.Pi)
}

// Positive normalizes the angle to the range [0, 2π).
func (a Angle) Positive() Angle {
	return Angle(remEuclid(float32(a), float32(Tau)))
}

// Signed normalizes the angle to the range (−π, π].
func (a Angle) Signed() Angle {
	return Angle(math.Pi - remEuclid(math.Pi-float32(a), float32(Tau)))
}

func (a Angle) Sin() float32 {
	return math32.Sin(float32(a))
}

func (a Angle) Cos() float32 {
	return math32.Cos(float32(a))
}

func (a Angle) Tan() float32 {
	return math32.Tan(float32(a))
}

// SinCos returns the sine and cosine of the angle.
func (a Angle) SinCos() (sin, cos float32) {
	return math32.Sincos(float32(a))
}

func (a Angle) Abs() Angle {
	return Angle(math32.Abs(float32(a)))
}

func (a Angle) String() string {
	return fmt.Sprintf("%grad", float32(a))
}

// remEuclid returns the least non-negative remainder of x mod y, matching
// Euclidean division rather than Go's truncated Mod.
func remEuclid(x, y float32) float32 {
	r := math32.Mod(x, y)
	if r < 0 {
		r += math32.Abs(y)
	}
	return r
}
