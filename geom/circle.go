package geom

// Circle is a circle with a center and radius.
type Circle[U Unit] struct {
	Center Point[U]
	Radius U
}

// NewCircle returns a circle with the given center and radius.
func NewCircle[U Unit](center Point[U], radius U) Circle[U] {
	return Circle[U]{Center: center, Radius: radius}
}

// Width returns the circle's diameter.
func (c Circle[U]) Width() U { return c.Radius * 2 }

// Height returns the circle's diameter.
func (c Circle[U]) Height() U { return c.Radius * 2 }

// Bounds returns the circle's axis-aligned bounding box.
func (c Circle[U]) Bounds() Rect[U] {
	return RectFromCenterAndSize(c.Center, Splat(c.Radius*2))
}

// Scale scales the circle. The scale must be uniform to keep the result
// circular; use [Ellipse] for non-uniform scaling.
func (c Circle[U]) Scale(s float32) Circle[U] {
	return Circle[U]{
		Center: c.Center.Scale(SplatScale(s)),
		Radius: U(float32(c.Radius) * s),
	}
}

// Translate translates the circle.
func (c Circle[U]) Translate(t Translate[U]) Circle[U] {
	return Circle[U]{Center: c.Center.Translate(t), Radius: c.Radius}
}

// ToEllipse returns the ellipse with the same center and equal radii.
func (c Circle[U]) ToEllipse() Ellipse[U] {
	return Ellipse[U]{Center: c.Center, Radii: Splat(c.Radius)}
}

// ToPath converts the circle to a closed path of two half-turn arcs,
// traced clockwise from the leftmost point. See [Ellipse.ToPath] for the
// meaning of tolerance.
func (c Circle[U]) ToPath(tolerance float32) Path[U] {
	return c.ToEllipse().ToPath(tolerance)
}

// Ellipse is an axis-aligned ellipse with a center and per-axis radii.
type Ellipse[U Unit] struct {
	Center Point[U]
	Radii  Vector[U]
}

// NewEllipse returns an ellipse with the given center and radii.
func NewEllipse[U Unit](center Point[U], radii Vector[U]) Ellipse[U] {
	return Ellipse[U]{Center: center, Radii: radii}
}

// Width returns the ellipse's extent along the x axis.
func (e Ellipse[U]) Width() U { return e.Radii.X * 2 }

// Height returns the ellipse's extent along the y axis.
func (e Ellipse[U]) Height() U { return e.Radii.Y * 2 }

// Bounds returns the ellipse's axis-aligned bounding box.
func (e Ellipse[U]) Bounds() Rect[U] {
	return RectFromCenterAndSize(e.Center, e.Radii.Mul(2))
}

// Scale scales the ellipse.
func (e Ellipse[U]) Scale(s Scale) Ellipse[U] {
	return Ellipse[U]{Center: e.Center.Scale(s), Radii: e.Radii.Scale(s)}
}

// Translate translates the ellipse.
func (e Ellipse[U]) Translate(t Translate[U]) Ellipse[U] {
	return Ellipse[U]{Center: e.Center.Translate(t), Radii: e.Radii}
}

// ToPath converts the ellipse to a closed path of two half-turn arcs,
// traced clockwise from the leftmost point. Each half turn is approximated
// by two cubic Béziers whose deviation from the true ellipse is below 3e-4
// times the larger radius; tolerance values smaller than that are not
// honored.
func (e Ellipse[U]) ToPath(tolerance float32) Path[U] {
	b := NewPathBuilderWithCapacity[U](4)
	b.AbsMove(e.Center.Add(Vec(-e.Radii.X, 0)))
	b.RelArc(e.Radii, ZeroAngle, false, true, Vec(e.Radii.X*2, 0))
	b.RelArc(e.Radii, ZeroAngle, false, true, Vec(-e.Radii.X*2, 0))
	b.Close()
	return b.Build()
}
