package geom

// PathBuilder accumulates path segments together with the pen position, the
// current subpath start, and the running bounds. A builder belongs to the
// call that created it and must not be shared across goroutines; Build
// consumes it into an immutable [Path].
type PathBuilder[U Unit] struct {
	data   []PathSegment[U]
	start  Point[U]
	point  Point[U]
	bounds Rect[U]
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder[U Unit]() *PathBuilder[U] {
	return &PathBuilder[U]{}
}

// NewPathBuilderWithCapacity returns an empty builder with room for n
// segments.
func NewPathBuilderWithCapacity[U Unit](n int) *PathBuilder[U] {
	return &PathBuilder[U]{data: make([]PathSegment[U], 0, n)}
}

// Build consumes the builder and returns the accumulated path.
func (b *PathBuilder[U]) Build() Path[U] {
	p := Path[U]{data: b.data, bounds: b.bounds}
	b.data = nil
	return p
}

// Bounds returns the tight bounding box of every endpoint the pen has
// visited so far.
func (b *PathBuilder[U]) Bounds() Rect[U] {
	return b.bounds
}

// advance appends a pen-advancing segment and unions the new pen position
// into the bounds. This is the single place where drawing segments touch the
// bounds; the absolute-coordinate operations all funnel through the relative
// ones and end up here.
func (b *PathBuilder[U]) advance(seg PathSegment[U], d Vector[U]) {
	b.data = append(b.data, seg)
	b.point = b.point.Add(d)
	b.bounds = b.bounds.UnionPoint(b.point)
}

// AbsMove starts a new subpath at the absolute point p. The first Move on an
// empty builder resets the bounds to a zero-size box at p rather than
// unioning with a default box at the origin.
func (b *PathBuilder[U]) AbsMove(p Point[U]) {
	if len(b.data) == 0 {
		b.bounds = Rect[U]{Min: p, Max: p}
	} else {
		b.bounds = b.bounds.UnionPoint(p)
	}
	b.data = append(b.data, Move(p))
	b.start = p
	b.point = p
}

// RelMove starts a new subpath displaced d from the pen.
func (b *PathBuilder[U]) RelMove(d Vector[U]) {
	b.AbsMove(b.point.Add(d))
}

// RelLine draws a line by the displacement d.
func (b *PathBuilder[U]) RelLine(d Vector[U]) {
	b.advance(Line(d), d)
}

// RelHorizLine draws a horizontal line by dx.
func (b *PathBuilder[U]) RelHorizLine(dx U) {
	b.RelLine(Vec(dx, 0))
}

// RelVertLine draws a vertical line by dy.
func (b *PathBuilder[U]) RelVertLine(dy U) {
	b.RelLine(Vec(U(0), dy))
}

// RelCubicBezier draws a cubic Bézier with control-point displacements d1
// and d2 and endpoint displacement d.
func (b *PathBuilder[U]) RelCubicBezier(d1, d2, d Vector[U]) {
	b.advance(CubicBezier(d1, d2, d), d)
}

// RelSmoothCubicBezier draws a cubic Bézier whose first control point
// mirrors the previous cubic's second control point, or the pen if the
// previous segment was not a cubic.
func (b *PathBuilder[U]) RelSmoothCubicBezier(d2, d Vector[U]) {
	var d1 Vector[U]
	if n := len(b.data); n > 0 && b.data[n-1].Kind == CubicBezierKind {
		prev := b.data[n-1]
		d1 = prev.D.Sub(prev.D2)
	}
	b.RelCubicBezier(d1, d2, d)
}

// RelQuadraticBezier draws a quadratic Bézier with control-point
// displacement d1 and endpoint displacement d.
func (b *PathBuilder[U]) RelQuadraticBezier(d1, d Vector[U]) {
	b.advance(QuadraticBezier(d1, d), d)
}

// RelSmoothQuadraticBezier draws a quadratic Bézier whose control point
// mirrors the previous quadratic's control point.
func (b *PathBuilder[U]) RelSmoothQuadraticBezier(d Vector[U]) {
	var d1 Vector[U]
	if n := len(b.data); n > 0 && b.data[n-1].Kind == QuadraticBezierKind {
		prev := b.data[n-1]
		d1 = prev.D.Sub(prev.D1)
	}
	b.RelQuadraticBezier(d1, d)
}

// RelArc draws an SVG-style elliptical arc with radii r, x-axis rotation
// xar, and endpoint displacement d, approximated by up to four cubic Bézier
// segments.
func (b *PathBuilder[U]) RelArc(r Vector[U], xar Angle, largeArc, sweep bool, d Vector[U]) {
	arcToBezier(r, xar, largeArc, sweep, d, func(d1, d2, d Vector[U]) {
		b.RelCubicBezier(d1, d2, d)
	})
}

// Close closes the current subpath and returns the pen to the subpath
// start. Bounds are unaffected: the start point was already visited.
func (b *PathBuilder[U]) Close() {
	b.data = append(b.data, PathSegment[U]{Kind: CloseKind})
	b.point = b.start
}

// AbsLine draws a line to the absolute point p.
func (b *PathBuilder[U]) AbsLine(p Point[U]) {
	b.RelLine(p.Sub(b.point))
}

// AbsHorizLine draws a horizontal line to x.
func (b *PathBuilder[U]) AbsHorizLine(x U) {
	b.RelHorizLine(x - b.point.X)
}

// AbsVertLine draws a vertical line to y.
func (b *PathBuilder[U]) AbsVertLine(y U) {
	b.RelVertLine(y - b.point.Y)
}

// AbsCubicBezier draws a cubic Bézier with absolute control points p1, p2
// and endpoint p.
func (b *PathBuilder[U]) AbsCubicBezier(p1, p2, p Point[U]) {
	b.RelCubicBezier(p1.Sub(b.point), p2.Sub(b.point), p.Sub(b.point))
}

// AbsSmoothCubicBezier draws a smooth cubic Bézier with absolute control
// point p2 and endpoint p.
func (b *PathBuilder[U]) AbsSmoothCubicBezier(p2, p Point[U]) {
	b.RelSmoothCubicBezier(p2.Sub(b.point), p.Sub(b.point))
}

// AbsQuadraticBezier draws a quadratic Bézier with absolute control point p1
// and endpoint p.
func (b *PathBuilder[U]) AbsQuadraticBezier(p1, p Point[U]) {
	b.RelQuadraticBezier(p1.Sub(b.point), p.Sub(b.point))
}

// AbsSmoothQuadraticBezier draws a smooth quadratic Bézier to the absolute
// point p.
func (b *PathBuilder[U]) AbsSmoothQuadraticBezier(p Point[U]) {
	b.RelSmoothQuadraticBezier(p.Sub(b.point))
}

// AbsArc draws an SVG-style elliptical arc to the absolute point p.
func (b *PathBuilder[U]) AbsArc(r Vector[U], xar Angle, largeArc, sweep bool, p Point[U]) {
	b.RelArc(r, xar, largeArc, sweep, p.Sub(b.point))
}

// Extend appends another builder's segments. A Move to the origin is
// inserted first unless the other builder already starts with a Move, so the
// two shapes are not joined by an implicit line.
func (b *PathBuilder[U]) Extend(o *PathBuilder[U]) {
	b.extend(o.data, o.bounds)
}

// ExtendPath appends a built path, with the same implicit-Move rule as
// Extend.
func (b *PathBuilder[U]) ExtendPath(p Path[U]) {
	b.extend(p.data, p.bounds)
}

func (b *PathBuilder[U]) extend(data []PathSegment[U], bounds Rect[U]) {
	if len(data) == 0 {
		return
	}
	pen, start := b.point, b.start
	if data[0].Kind != MoveKind {
		b.data = append(b.data, Move(Origin[U]()))
		pen, start = Origin[U](), Origin[U]()
	}
	if len(b.data) == 0 {
		b.bounds = bounds
	} else {
		b.bounds = b.bounds.Union(bounds)
	}
	b.data = append(b.data, data...)
	for _, seg := range data {
		switch seg.Kind {
		case MoveKind:
			pen = seg.Point
			start = seg.Point
		case CloseKind:
			pen = start
		default:
			pen = pen.Add(seg.D)
		}
	}
	b.point, b.start = pen, start
}
