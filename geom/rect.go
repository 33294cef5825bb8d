package geom

import "fmt"

// Rect is an axis-aligned rectangle described by its minimum and maximum
// corner points. Constructors normalize the corners so that Min ≤ Max
// componentwise.
type Rect[U Unit] struct {
	Min Point[U]
	Max Point[U]
}

// NewRect returns the rectangle spanning p0 and p1, normalized so that
// Min ≤ Max.
func NewRect[U Unit](p0, p1 Point[U]) Rect[U] {
	return Rect[U]{
		Min: p0.Min(p1),
		Max: p0.Max(p1),
	}
}

// RectFromOriginAndSize returns the rectangle with the given origin and size.
func RectFromOriginAndSize[U Unit](origin Point[U], size Vector[U]) Rect[U] {
	return NewRect(origin, origin.Add(size))
}

// RectFromCenterAndSize returns the rectangle of the given size centered on
// center.
func RectFromCenterAndSize[U Unit](center Point[U], size Vector[U]) Rect[U] {
	half := size.Div(2)
	return NewRect(center.Add(half.Negate()), center.Add(half))
}

func (r Rect[U]) String() string {
	return fmt.Sprintf("Rect{%v, %v}", r.Min, r.Max)
}

// Size returns the rectangle's size.
func (r Rect[U]) Size() Vector[U] {
	return r.Max.Sub(r.Min)
}

// Width returns the rectangle's width.
func (r Rect[U]) Width() U {
	return r.Max.X - r.Min.X
}

// Height returns the rectangle's height.
func (r Rect[U]) Height() U {
	return r.Max.Y - r.Min.Y
}

// Center returns the rectangle's center point.
func (r Rect[U]) Center() Point[U] {
	return r.Min.Midpoint(r.Max)
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect[U]) Union(o Rect[U]) Rect[U] {
	return Rect[U]{
		Min: r.Min.Min(o.Min),
		Max: r.Max.Max(o.Max),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect[U]) UnionPoint(pt Point[U]) Rect[U] {
	return Rect[U]{
		Min: r.Min.Min(pt),
		Max: r.Max.Max(pt),
	}
}

// Scale scales the rectangle's corners, renormalizing in case a factor is
// negative.
func (r Rect[U]) Scale(s Scale) Rect[U] {
	return NewRect(r.Min.Scale(s), r.Max.Scale(s))
}

// Translate translates the rectangle.
func (r Rect[U]) Translate(t Translate[U]) Rect[U] {
	return Rect[U]{
		Min: r.Min.Translate(t),
		Max: r.Max.Translate(t),
	}
}

// IsNaN reports whether any of the rectangle's coordinates is NaN.
func (r Rect[U]) IsNaN() bool {
	return r.Min.IsNaN() || r.Max.IsNaN()
}

// ToPath converts the rectangle to a path of four line segments, traced
// clockwise from the minimum corner.
func (r Rect[U]) ToPath(tolerance float32) Path[U] {
	b := NewPathBuilderWithCapacity[U](5)
	b.AbsMove(r.Min)
	b.AbsHorizLine(r.Max.X)
	b.AbsVertLine(r.Max.Y)
	b.AbsHorizLine(r.Min.X)
	b.Close()
	return b.Build()
}
