package geom

import "fmt"

// RoundRect is a rectangle with elliptical corners, sharing one pair of
// per-axis radii between all four corners. Radii are clamped at construction
// to at most half of the corresponding side, so corners can never overlap;
// nothing downstream re-checks this.
type RoundRect[U Unit] struct {
	rect  Rect[U]
	radii Vector[U]
}

// NewRoundRect returns the rounded rectangle spanning p0 and p1 with the
// given corner radii.
func NewRoundRect[U Unit](p0, p1 Point[U], radii Vector[U]) RoundRect[U] {
	return RoundRectFromRect(NewRect(p0, p1), radii)
}

// RoundRectFromRect returns the rounded rectangle with the extents of r and
// the given corner radii.
func RoundRectFromRect[U Unit](r Rect[U], radii Vector[U]) RoundRect[U] {
	radii = radii.Abs().Min(r.Size().Div(2))
	return RoundRect[U]{rect: r, radii: radii}
}

// RoundRectFromOriginSizeAndRadii returns the rounded rectangle with the
// given origin, size, and corner radii.
func RoundRectFromOriginSizeAndRadii[U Unit](origin Point[U], size, radii Vector[U]) RoundRect[U] {
	return RoundRectFromRect(RectFromOriginAndSize(origin, size), radii)
}

// RoundRectFromCenterSizeAndRadii returns the rounded rectangle of the given
// size and corner radii centered on center.
func RoundRectFromCenterSizeAndRadii[U Unit](center Point[U], size, radii Vector[U]) RoundRect[U] {
	return RoundRectFromRect(RectFromCenterAndSize(center, size), radii)
}

func (r RoundRect[U]) String() string {
	return fmt.Sprintf("RoundRect{%v, %v, radii %v}", r.rect.Min, r.rect.Max, r.radii)
}

// Rect returns the rectangle with the same extents, without the radii.
func (r RoundRect[U]) Rect() Rect[U] {
	return r.rect
}

// Radii returns the corner radii.
func (r RoundRect[U]) Radii() Vector[U] {
	return r.radii
}

// Size returns the rounded rectangle's size.
func (r RoundRect[U]) Size() Vector[U] {
	return r.rect.Size()
}

// Width returns the rounded rectangle's width.
func (r RoundRect[U]) Width() U {
	return r.rect.Width()
}

// Height returns the rounded rectangle's height.
func (r RoundRect[U]) Height() U {
	return r.rect.Height()
}

// Center returns the rounded rectangle's center point.
func (r RoundRect[U]) Center() Point[U] {
	return r.rect.Center()
}

// WithRect returns a rounded rectangle with the extents of o and the same
// radii as r, re-clamped against the new sides.
func (r RoundRect[U]) WithRect(o Rect[U]) RoundRect[U] {
	return RoundRectFromRect(o, r.radii)
}

// Lerp interpolates both the corners and the radii of two rounded
// rectangles.
func (r RoundRect[U]) Lerp(o RoundRect[U], t float32) RoundRect[U] {
	return NewRoundRect(
		r.rect.Min.Lerp(o.rect.Min, t),
		r.rect.Max.Lerp(o.rect.Max, t),
		r.radii.Lerp(o.radii, t),
	)
}

// Translate translates the rounded rectangle.
func (r RoundRect[U]) Translate(t Translate[U]) RoundRect[U] {
	return RoundRect[U]{rect: r.rect.Translate(t), radii: r.radii}
}

// ToPath converts the rounded rectangle to a closed path, traced clockwise
// from the top of the left edge with a quarter-turn elliptical arc at each
// corner. Each corner arc is a single cubic Bézier whose deviation from the
// true ellipse is below 3e-4 times the larger radius; tolerance values
// smaller than that are not honored.
func (r RoundRect[U]) ToPath(tolerance float32) Path[U] {
	rect, radii := r.rect, r.radii

	b := NewPathBuilderWithCapacity[U](9)
	b.AbsMove(rect.Min.Add(Vec(U(0), radii.Y)))
	b.RelArc(radii, ZeroAngle, false, true, radii.NegY())
	b.AbsHorizLine(rect.Max.X - radii.X)
	b.RelArc(radii, ZeroAngle, false, true, radii)
	b.AbsVertLine(rect.Max.Y - radii.Y)
	b.RelArc(radii, ZeroAngle, false, true, radii.NegX())
	b.AbsHorizLine(rect.Min.X + radii.X)
	b.RelArc(radii, ZeroAngle, false, true, radii.Negate())
	b.Close()
	return b.Build()
}
