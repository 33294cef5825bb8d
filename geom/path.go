package geom

import (
	"fmt"
	"iter"
)

// PathSegmentKind identifies the variant of a [PathSegment].
type PathSegmentKind uint8

const (
	// Move the pen to an absolute point, starting a new subpath.
	MoveKind PathSegmentKind = iota + 1
	// Draw a line from the pen by a displacement.
	LineKind
	// Draw a cubic Bézier; both control points and the endpoint are
	// displacements from the pen.
	CubicBezierKind
	// Draw a quadratic Bézier; the control point and the endpoint are
	// displacements from the pen.
	QuadraticBezierKind
	// Close the current subpath, returning the pen to the subpath start.
	CloseKind
)

// PathSegment is one segment of a [Path]. A Move stores an absolute point;
// every other drawing segment stores displacements relative to the pen
// position at the time the segment was appended.
type PathSegment[U Unit] struct {
	Kind PathSegmentKind
	// Point is the absolute target of a Move segment.
	Point Point[U]
	// D1 and D2 are control-point displacements, D the endpoint
	// displacement.
	D1, D2, D Vector[U]
}

// Move returns a segment moving the pen to the absolute point p.
func Move[U Unit](p Point[U]) PathSegment[U] {
	return PathSegment[U]{Kind: MoveKind, Point: p}
}

// Line returns a segment drawing a line by the displacement d.
func Line[U Unit](d Vector[U]) PathSegment[U] {
	return PathSegment[U]{Kind: LineKind, D: d}
}

// CubicBezier returns a cubic Bézier segment with control-point
// displacements d1 and d2 and endpoint displacement d.
func CubicBezier[U Unit](d1, d2, d Vector[U]) PathSegment[U] {
	return PathSegment[U]{Kind: CubicBezierKind, D1: d1, D2: d2, D: d}
}

// QuadraticBezier returns a quadratic Bézier segment with control-point
// displacement d1 and endpoint displacement d.
func QuadraticBezier[U Unit](d1, d Vector[U]) PathSegment[U] {
	return PathSegment[U]{Kind: QuadraticBezierKind, D1: d1, D: d}
}

// Close returns a segment closing the current subpath.
func Close[U Unit]() PathSegment[U] {
	return PathSegment[U]{Kind: CloseKind}
}

func (seg PathSegment[U]) String() string {
	switch seg.Kind {
	case MoveKind:
		return fmt.Sprintf("Move(%v)", seg.Point)
	case LineKind:
		return fmt.Sprintf("Line(%v)", seg.D)
	case CubicBezierKind:
		return fmt.Sprintf("CubicBezier(%v, %v, %v)", seg.D1, seg.D2, seg.D)
	case QuadraticBezierKind:
		return fmt.Sprintf("QuadraticBezier(%v, %v)", seg.D1, seg.D)
	case CloseKind:
		return "Close"
	default:
		return "InvalidPathSegment"
	}
}

// Scale scales the segment's coordinates.
func (seg PathSegment[U]) Scale(s Scale) PathSegment[U] {
	seg.Point = seg.Point.Scale(s)
	seg.D1 = seg.D1.Scale(s)
	seg.D2 = seg.D2.Scale(s)
	seg.D = seg.D.Scale(s)
	return seg
}

// Translate translates the segment. Only a Move is affected: displacements
// are invariant under translation.
func (seg PathSegment[U]) Translate(t Translate[U]) PathSegment[U] {
	if seg.Kind == MoveKind {
		seg.Point = seg.Point.Translate(t)
	}
	return seg
}

// Rotate rotates the segment about the origin.
func (seg PathSegment[U]) Rotate(r Rotate) PathSegment[U] {
	seg.Point = seg.Point.Rotate(r)
	seg.D1 = seg.D1.Rotate(r.Angle)
	seg.D2 = seg.D2.Rotate(r.Angle)
	seg.D = seg.D.Rotate(r.Angle)
	return seg
}

// Transform applies an affine transform to the segment. The translation part
// applies to a Move's point only; displacements see the linear part.
func (seg PathSegment[U]) Transform(t Transform[U]) PathSegment[U] {
	if seg.Kind == MoveKind {
		seg.Point = seg.Point.Transform(t)
	}
	seg.D1 = seg.D1.Transform(t)
	seg.D2 = seg.D2.Transform(t)
	seg.D = seg.D.Transform(t)
	return seg
}

// Path is an immutable ordered sequence of segments with a cached bounding
// rectangle. Paths are assembled with [PathBuilder] or [MergePaths].
//
// The bounds cover every endpoint the pen visits; control points of curves
// are not included, so bounds can under-count for curves that bulge past
// their endpoints.
type Path[U Unit] struct {
	data   []PathSegment[U]
	bounds Rect[U]
}

// Len returns the number of segments in the path.
func (p Path[U]) Len() int {
	return len(p.data)
}

// IsEmpty reports whether the path has no segments.
func (p Path[U]) IsEmpty() bool {
	return len(p.data) == 0
}

// At returns the i'th segment of the path.
func (p Path[U]) At(i int) PathSegment[U] {
	return p.data[i]
}

// Bounds returns the path's bounding rectangle.
func (p Path[U]) Bounds() Rect[U] {
	return p.bounds
}

// Segments iterates over the path's segments in order.
func (p Path[U]) Segments() iter.Seq[PathSegment[U]] {
	return func(yield func(PathSegment[U]) bool) {
		for _, seg := range p.data {
			if !yield(seg) {
				break
			}
		}
	}
}

// Scale scales the path. Bounds are mapped directly.
func (p Path[U]) Scale(s Scale) Path[U] {
	data := make([]PathSegment[U], len(p.data))
	for i, seg := range p.data {
		data[i] = seg.Scale(s)
	}
	return Path[U]{data: data, bounds: p.bounds.Scale(s)}
}

// Translate translates the path. Bounds are mapped directly.
func (p Path[U]) Translate(t Translate[U]) Path[U] {
	data := make([]PathSegment[U], len(p.data))
	for i, seg := range p.data {
		data[i] = seg.Translate(t)
	}
	return Path[U]{data: data, bounds: p.bounds.Translate(t)}
}

// Rotate rotates the path about the origin and recomputes its bounds from
// the rotated segment endpoints.
func (p Path[U]) Rotate(r Rotate) Path[U] {
	data := make([]PathSegment[U], len(p.data))
	for i, seg := range p.data {
		data[i] = seg.Rotate(r)
	}
	return Path[U]{data: data, bounds: segmentBounds(data)}
}

// Transform applies an affine transform to the path and recomputes its
// bounds from the transformed segment endpoints.
func (p Path[U]) Transform(t Transform[U]) Path[U] {
	data := make([]PathSegment[U], len(p.data))
	for i, seg := range p.data {
		data[i] = seg.Transform(t)
	}
	return Path[U]{data: data, bounds: segmentBounds(data)}
}

// MergePaths joins paths into one. A Move to the origin is inserted before
// any part whose first segment is not already a Move, so unrelated sub-shapes
// are never joined by an implicit line.
func MergePaths[U Unit](paths ...Path[U]) Path[U] {
	var n int
	for _, p := range paths {
		n += p.Len() + 1
	}
	data := make([]PathSegment[U], 0, n)
	var bounds Rect[U]
	first := true
	for _, p := range paths {
		if p.IsEmpty() {
			continue
		}
		if p.data[0].Kind != MoveKind {
			data = append(data, Move(Origin[U]()))
		}
		data = append(data, p.data...)
		if first {
			bounds = p.bounds
			first = false
		} else {
			bounds = bounds.Union(p.bounds)
		}
	}
	return Path[U]{data: data, bounds: bounds}
}

// segmentBounds walks the segments with a pen and returns the tight bounding
// box of every endpoint visited.
func segmentBounds[U Unit](data []PathSegment[U]) Rect[U] {
	var bounds Rect[U]
	var pen, start Point[U]
	seen := false
	visit := func(p Point[U]) {
		if seen {
			bounds = bounds.UnionPoint(p)
		} else {
			bounds = Rect[U]{Min: p, Max: p}
			seen = true
		}
	}
	if len(data) > 0 && data[0].Kind != MoveKind {
		// Paths without a leading Move start from an implicit pen at the
		// origin.
		visit(pen)
	}
	for _, seg := range data {
		switch seg.Kind {
		case MoveKind:
			pen = seg.Point
			start = seg.Point
			visit(pen)
		case CloseKind:
			pen = start
		default:
			pen = pen.Add(seg.D)
			visit(pen)
		}
	}
	return bounds
}
