package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func collectArc(r Vector[Mm], xar Angle, largeArc, sweep bool, d Vector[Mm]) []Vector[Mm] {
	var ends []Vector[Mm]
	arcToBezier(r, xar, largeArc, sweep, d, func(_, _, d Vector[Mm]) {
		ends = append(ends, d)
	})
	return ends
}

func TestArcToBezier(t *testing.T) {
	sqrt2 := Mm(math32.Sqrt2)

	f := func(r Vector[Mm], xar Angle, largeArc, sweep bool, d Vector[Mm], want []Vector[Mm]) {
		t.Helper()
		got := collectArc(r, xar, largeArc, sweep, d)
		diff(t, want, got, approx[Mm]())
	}

	f(Vec[Mm](1, 1), ZeroAngle, false, false, Vec[Mm](1, 1), []Vector[Mm]{{1, 1}})
	f(Vec[Mm](1, 1), ZeroAngle, true, false, Vec[Mm](1, 1), []Vector[Mm]{{-1, 1}, {1, 1}, {1, -1}})
	f(Vec[Mm](1, 1), ZeroAngle, true, true, Vec[Mm](1, 1), []Vector[Mm]{{1, -1}, {1, 1}, {-1, 1}})
	f(Vec[Mm](1, 1), ZeroAngle, true, true, Vec[Mm](1, -1), []Vector[Mm]{{-1, -1}, {1, -1}, {1, 1}})
	f(Vec[Mm](1, 2), ZeroAngle, false, false, Vec[Mm](1, 2), []Vector[Mm]{{1, 2}})
	f(Vec[Mm](1, 2), Degrees(90), false, false, Vec[Mm](2, -1), []Vector[Mm]{{2, -1}})
	// A zero displacement draws nothing at all.
	f(Vec[Mm](1, 1), ZeroAngle, false, false, Vec[Mm](0, 0), nil)
	// Radii exactly spanning a half turn.
	f(Vec(sqrt2, sqrt2), ZeroAngle, false, true, Vec[Mm](0, -2), []Vector[Mm]{{0, -2}})
	f(Vec(sqrt2, sqrt2), ZeroAngle, false, false, Vec[Mm](0, 2), []Vector[Mm]{{0, 2}})
	f(Vec[Mm](1, 1), ZeroAngle, false, false, Vec[Mm](2, 0), []Vector[Mm]{{1, 1}, {1, -1}})
	// Undersized radii are scaled up to reach the endpoint.
	f(Vec[Mm](1, 1), ZeroAngle, false, false, Vec[Mm](4, 0), []Vector[Mm]{{2, 2}, {2, -2}})
	// Zero radii degenerate to a straight line.
	f(Vec[Mm](0, 0), ZeroAngle, false, false, Vec[Mm](1, 0), []Vector[Mm]{{1, 0}})
}

func TestArcToBezierSegmentCount(t *testing.T) {
	f := func(largeArc, sweep bool, d Vector[Mm], want int) {
		t.Helper()
		if got := collectArc(Vec[Mm](1, 1), ZeroAngle, largeArc, sweep, d); len(got) != want {
			t.Errorf("largeArc=%v sweep=%v d=%v: got %d segments, want %d", largeArc, sweep, d, len(got), want)
		}
	}

	// Quarter, half and three-quarter turns on the unit circle.
	f(false, true, Vec[Mm](1, 1), 1)
	f(false, true, Vec[Mm](2, 0), 2)
	f(true, true, Vec[Mm](1, -1), 3)
	f(true, true, Vec[Mm](-0.01, -1), 4)
}

func TestArcToBezierEndpointSum(t *testing.T) {
	// The emitted segment displacements must sum to the requested endpoint
	// regardless of flags and rotation.
	f := func(r Vector[Mm], xar Angle, largeArc, sweep bool, d Vector[Mm]) {
		t.Helper()
		var sum Vector[Mm]
		for _, end := range collectArc(r, xar, largeArc, sweep, d) {
			sum = sum.Add(end)
		}
		diff(t, d, sum, approx[Mm]())
	}

	f(Vec[Mm](1, 1), ZeroAngle, false, true, Vec[Mm](1, 1))
	f(Vec[Mm](1, 1), ZeroAngle, true, false, Vec[Mm](1, 1))
	f(Vec[Mm](3, 2), Degrees(30), true, true, Vec[Mm](-2, 1))
	f(Vec[Mm](1, 5), Degrees(-45), false, false, Vec[Mm](0.5, -0.25))
}

func TestArcCenter(t *testing.T) {
	f := func(r Vector[Mm], largeArc, sweep bool, d, want Vector[Mm]) {
		t.Helper()
		diff(t, want, arcCenter(r, largeArc, sweep, d), approx[Mm]())
	}

	f(Vec[Mm](1, 1), false, false, Vec[Mm](1, 1), Vec[Mm](1, 0))
	f(Vec[Mm](1, 1), true, false, Vec[Mm](1, 1), Vec[Mm](0, 1))
	f(Vec[Mm](1, 1), false, true, Vec[Mm](1, 1), Vec[Mm](0, 1))
	f(Vec[Mm](1, 1), true, true, Vec[Mm](1, 1), Vec[Mm](1, 0))
	f(Vec[Mm](1, 1), false, false, Vec[Mm](2, 0), Vec[Mm](1, 0))
}

func TestArcSegment(t *testing.T) {
	a := Mm((4.0 / 3.0) * Degrees(90.0/4.0).Tan())

	f := func(r Vector[Mm], phi0, dphi Angle, want [3]Vector[Mm]) {
		t.Helper()
		d1, d2, d := arcSegment(r, phi0, dphi)
		diff(t, want, [3]Vector[Mm]{d1, d2, d}, approx[Mm]())
	}

	f(Vec[Mm](1, 1), Degrees(0), Degrees(90), [3]Vector[Mm]{{0, a}, {a - 1, 1}, {-1, 1}})
	f(Vec[Mm](1, 1), Degrees(90), Degrees(90), [3]Vector[Mm]{{-a, 0}, {-1, a - 1}, {-1, -1}})
	f(Vec[Mm](1, 1), Degrees(180), Degrees(90), [3]Vector[Mm]{{0, -a}, {1 - a, -1}, {1, -1}})
	f(Vec[Mm](1, 1), Degrees(-90), Degrees(90), [3]Vector[Mm]{{a, 0}, {1, 1 - a}, {1, 1}})
	f(Vec[Mm](1, 1), Degrees(0), Degrees(-90), [3]Vector[Mm]{{0, -a}, {a - 1, -1}, {-1, -1}})
	f(Vec[Mm](1, 1), Degrees(90), Degrees(-90), [3]Vector[Mm]{{a, 0}, {1, a - 1}, {1, -1}})
	f(Vec[Mm](1, 1), Degrees(180), Degrees(-90), [3]Vector[Mm]{{0, a}, {1 - a, 1}, {1, 1}})
	f(Vec[Mm](1, 1), Degrees(-90), Degrees(-90), [3]Vector[Mm]{{-a, 0}, {-1, 1 - a}, {-1, 1}})
	f(Vec[Mm](2, 1), Degrees(0), Degrees(90), [3]Vector[Mm]{{0, a}, {2 * (a - 1), 1}, {-2, 1}})
}
