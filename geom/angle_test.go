package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func closeEnough(a, b float32) bool {
	return isClose(a, b, 1e-5)
}

func TestAngleConversions(t *testing.T) {
	f := func(deg, rad float32) {
		t.Helper()
		if got := Degrees(deg).Radians(); !closeEnough(got, rad) {
			t.Errorf("Degrees(%v).Radians() = %v, want %v", deg, got, rad)
		}
		if got := Radians(rad).Degrees(); !closeEnough(got, deg) {
			t.Errorf("Radians(%v).Degrees() = %v, want %v", rad, got, deg)
		}
	}
	f(0, 0)
	f(90, math32.Pi/2)
	f(180, math32.Pi)
	f(-45, -math32.Pi/4)
	f(360, 2*math32.Pi)
}

func TestAngleNormalization(t *testing.T) {
	f := func(a, positive, signed Angle) {
		t.Helper()
		if got := a.Positive(); !closeEnough(float32(got), float32(positive)) {
			t.Errorf("(%v).Positive() = %v, want %v", a, got, positive)
		}
		if got := a.Signed(); !closeEnough(float32(got), float32(signed)) {
			t.Errorf("(%v).Signed() = %v, want %v", a, got, signed)
		}
	}
	f(ZeroAngle, ZeroAngle, ZeroAngle)
	f(QuarterPi, QuarterPi, QuarterPi)
	f(-QuarterPi, Tau-QuarterPi, -QuarterPi)
	f(Pi, Pi, Pi)
	f(-Pi, Pi, Pi)
	f(Tau+QuarterPi, QuarterPi, QuarterPi)
	f(-Tau-QuarterPi, Tau-QuarterPi, -QuarterPi)
}

func TestAngleTrig(t *testing.T) {
	a := Degrees(30)
	if got := a.Sin(); !closeEnough(got, 0.5) {
		t.Errorf("sin 30° = %v, want 0.5", got)
	}
	if got := a.Cos(); !closeEnough(got, math32.Sqrt(3)/2) {
		t.Errorf("cos 30° = %v, want %v", got, math32.Sqrt(3)/2)
	}
	sin, cos := a.SinCos()
	if !closeEnough(sin, a.Sin()) || !closeEnough(cos, a.Cos()) {
		t.Errorf("SinCos() = %v, %v, want %v, %v", sin, cos, a.Sin(), a.Cos())
	}
	if got := Degrees(45).Tan(); !closeEnough(got, 1) {
		t.Errorf("tan 45° = %v, want 1", got)
	}
}

func TestAngleInverseTrig(t *testing.T) {
	if got := Atan2(1, 1); !closeEnough(float32(got), float32(QuarterPi)) {
		t.Errorf("Atan2(1, 1) = %v, want %v", got, QuarterPi)
	}
	if got := Asin(1); !closeEnough(float32(got), float32(HalfPi)) {
		t.Errorf("Asin(1) = %v, want %v", got, HalfPi)
	}
	if got := Acos(0); !closeEnough(float32(got), float32(HalfPi)) {
		t.Errorf("Acos(0) = %v, want %v", got, HalfPi)
	}
	if got := Atan(1); !closeEnough(float32(got), float32(QuarterPi)) {
		t.Errorf("Atan(1) = %v, want %v", got, QuarterPi)
	}
}
