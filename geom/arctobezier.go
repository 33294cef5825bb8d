package geom

import "github.com/chewxy/math32"

// arcToBezier converts an SVG-style elliptical arc into cubic Bézier
// segments. The arc has radii r, is rotated by xar about the x axis, and
// ends at the displacement d from the pen; largeArc and sweep select which
// of the four candidate arcs to trace. Each emitted segment spans at most a
// quarter turn, so emit is called between zero and four times with
// (control1, control2, endpoint) displacement triples relative to the
// running pen. A quarter-turn cubic deviates from the true arc by less than
// 3e-4 times the larger radius.
//
// Degenerate inputs never fail: a near-zero displacement emits nothing, and
// a near-zero radius on either axis emits a single straight-line cubic.
func arcToBezier[U Unit](r Vector[U], xar Angle, largeArc, sweep bool, d Vector[U], emit func(d1, d2, d Vector[U])) {
	if isClose(float32(d.Hypot()), 0, 0) {
		return
	}

	r = r.Abs()
	if isClose(float32(r.X), 0, 0) || isClose(float32(r.Y), 0, 0) {
		emit(d.Div(3), d.Mul(2.0/3.0), d)
		return
	}

	// Rotate the displacement by -xar and do the rest of the computation as
	// if xar were zero, re-rotating the results at the end.
	d = d.Rotate(-xar)

	// If the radii can't span the displacement, scale them up uniformly,
	// preserving their ratio, to the minimum that can.
	lambda := max(float32(d.ComponentDiv(r.Mul(2)).Hypot()), 1.0)
	r = r.Mul(lambda)

	c := arcCenter(r, largeArc, sweep, d)

	// Start angle and sweep from the center-relative endpoints, normalized
	// by the radii.
	phi0 := c.Negate().ComponentDiv(r).Angle()
	dphi := d.Sub(c).ComponentDiv(r).Angle() - phi0

	// Add or subtract 2π so dphi sweeps in the direction and magnitude the
	// flags request; afterwards dphi lies in the range implied by
	// (largeArc, sweep): [-π, 0], [0, π], [-2π, -π], or [π, 2π], up to
	// floating error at the boundaries.
	switch {
	case largeArc && sweep && dphi < Pi:
		dphi += Tau
	case largeArc && !sweep && dphi > -Pi:
		dphi -= Tau
	case !largeArc && sweep && dphi < 0:
		dphi += Tau
	case !largeArc && !sweep && dphi > 0:
		dphi -= Tau
	}

	// Subtract a small epsilon before the ceil so a sweep of 90°+ε doesn't
	// spuriously become two segments.
	segments := math32.Ceil(float32((dphi/HalfPi).Abs()) - defaultTolerance)
	n := min(int(segments), 4)
	if n < 1 {
		return
	}
	dphi /= Angle(segments)

	for i := range n {
		start := phi0 + dphi*Angle(i)
		d1, d2, d := arcSegment(r, start, dphi)
		emit(d1.Rotate(xar), d2.Rotate(xar), d.Rotate(xar))
	}
}

// arcCenter solves the two-branch formula for the ellipse center, selecting
// the sign branch from the flags. A near-zero-negative discriminant is
// clamped to zero to absorb floating error.
func arcCenter[U Unit](r Vector[U], largeArc, sweep bool, d Vector[U]) Vector[U] {
	half := d.Div(2)

	sign := float32(-1.0)
	if largeArc == sweep {
		sign = 1.0
	}

	expr := sq(float32(r.X*half.Y)) + sq(float32(r.Y*half.X))
	v := (sq(float32(r.X*r.Y)) - expr) / expr

	var co float32
	if !isClose(v, 0, 0) {
		co = sign * math32.Sqrt(v)
	}

	c := Vec(r.X*half.Y/r.Y, -r.Y*half.X/r.X)
	return c.Mul(co).Add(half)
}

// arcSegment computes the control-point displacements for a single
// sub-sweep of dphi starting at phi0 on an ellipse with radii r, using the
// unit-circle approximation with arm length κ = (4/3)·tan(dphi/4).
func arcSegment[U Unit](r Vector[U], phi0, dphi Angle) (Vector[U], Vector[U], Vector[U]) {
	a := U((4.0 / 3.0) * (dphi / 4).Tan())

	sin0, cos0 := phi0.SinCos()
	sin4, cos4 := (phi0 + dphi).SinCos()
	p1 := Vec(U(cos0), U(sin0))
	p4 := Vec(U(cos4), U(sin4))

	p2 := Vec(p1.X-p1.Y*a, p1.Y+p1.X*a)
	p3 := Vec(p4.X+p4.Y*a, p4.Y-p4.X*a)

	return p2.Sub(p1).ComponentMul(r),
		p3.Sub(p1).ComponentMul(r),
		p4.Sub(p1).ComponentMul(r)
}

func sq(x float32) float32 {
	return x * x
}
