package geom

import (
	"slices"
	"testing"
)

func linePath(start Point[Mm], ds ...Vector[Mm]) Path[Mm] {
	b := NewPathBuilder[Mm]()
	b.AbsMove(start)
	for _, d := range ds {
		b.RelLine(d)
	}
	return b.Build()
}

func TestPathSegments(t *testing.T) {
	p := linePath(Pt[Mm](1, 1), Vec[Mm](1, 0), Vec[Mm](0, 1))

	if p.IsEmpty() {
		t.Error("path should not be empty")
	}
	diff(t, p.data, slices.Collect(p.Segments()))
	diff(t, p.At(0), Move(Pt[Mm](1, 1)))

	var empty Path[Mm]
	if !empty.IsEmpty() {
		t.Error("zero path should be empty")
	}
}

func TestPathScale(t *testing.T) {
	p := linePath(Pt[Mm](1, 1), Vec[Mm](1, 1)).Scale(NewScale(2, 3))

	want := []PathSegment[Mm]{
		Move(Pt[Mm](2, 3)),
		Line(Vec[Mm](2, 3)),
	}
	diff(t, want, p.data, approx[Mm]())
	diff(t, NewRect(Pt[Mm](2, 3), Pt[Mm](4, 6)), p.Bounds(), approx[Mm]())
}

func TestPathTranslate(t *testing.T) {
	p := linePath(Pt[Mm](1, 1), Vec[Mm](1, 1)).Translate(TranslateBy(Vec[Mm](-1, 2)))

	want := []PathSegment[Mm]{
		Move(Pt[Mm](0, 3)),
		Line(Vec[Mm](1, 1)),
	}
	diff(t, want, p.data, approx[Mm]())
	diff(t, NewRect(Pt[Mm](0, 3), Pt[Mm](1, 4)), p.Bounds(), approx[Mm]())
}

func TestPathRotate(t *testing.T) {
	p := linePath(Pt[Mm](1, 0), Vec[Mm](1, 0)).Rotate(RotateBy(HalfPi))

	want := []PathSegment[Mm]{
		Move(Pt[Mm](0, 1)),
		Line(Vec[Mm](0, 1)),
	}
	diff(t, want, p.data, approx[Mm]())
	diff(t, NewRect(Pt[Mm](0, 1), Pt[Mm](0, 2)), p.Bounds(), approx[Mm]())
}

func TestPathTransform(t *testing.T) {
	tr := Identity[Mm]().ThenScale(NewScale(2, 2)).ThenTranslate(NewTranslate[Mm](1, 0))
	p := linePath(Pt[Mm](1, 1), Vec[Mm](1, 0)).Transform(tr)

	want := []PathSegment[Mm]{
		Move(Pt[Mm](3, 2)),
		Line(Vec[Mm](2, 0)),
	}
	diff(t, want, p.data, approx[Mm]())
	diff(t, NewRect(Pt[Mm](3, 2), Pt[Mm](5, 2)), p.Bounds(), approx[Mm]())
}

func TestMergePaths(t *testing.T) {
	a := linePath(Pt[Mm](0, 0), Vec[Mm](1, 1))

	// The second part doesn't start with a Move, so merging inserts one to
	// the origin.
	b := NewPathBuilder[Mm]()
	b.RelLine(Vec[Mm](-1, 0))

	p := MergePaths(a, b.Build())
	want := []PathSegment[Mm]{
		Move(Pt[Mm](0, 0)),
		Line(Vec[Mm](1, 1)),
		Move(Pt[Mm](0, 0)),
		Line(Vec[Mm](-1, 0)),
	}
	diff(t, want, p.data, approx[Mm]())
	diff(t, NewRect(Pt[Mm](-1, 0), Pt[Mm](1, 1)), p.Bounds(), approx[Mm]())

	diff(t, 0, MergePaths[Mm]().Len())
}

func TestSegmentBounds(t *testing.T) {
	// Bounds track segment endpoints only, not the curve extrema.
	b := NewPathBuilder[Mm]()
	b.AbsMove(Pt[Mm](0, 0))
	b.RelCubicBezier(Vec[Mm](0, -10), Vec[Mm](1, -10), Vec[Mm](1, 0))
	p := b.Build()
	diff(t, NewRect(Pt[Mm](0, 0), Pt[Mm](1, 0)), p.Bounds(), approx[Mm]())

	// A leading non-Move segment implies a start at the origin.
	data := []PathSegment[Mm]{Line(Vec[Mm](2, 3))}
	diff(t, NewRect(Pt[Mm](0, 0), Pt[Mm](2, 3)), segmentBounds(data), approx[Mm]())

	// Close returns the pen to the subpath start before the next segment.
	data = []PathSegment[Mm]{
		Move(Pt[Mm](1, 1)),
		Line(Vec[Mm](2, 0)),
		Close[Mm](),
		Line(Vec[Mm](0, -1)),
	}
	diff(t, NewRect(Pt[Mm](1, 0), Pt[Mm](3, 1)), segmentBounds(data), approx[Mm]())
}
