package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt[Mm](1, 2)
	o := Pt[Mm](4, -2)

	diff(t, Vec[Mm](-3, 4), p.Sub(o))
	diff(t, Pt[Mm](2, 4), p.Add(Vec[Mm](1, 2)))
	diff(t, Vec[Mm](1, 2), p.ToVector())
	diff(t, Pt[Mm](1, -2), p.Min(o))
	diff(t, Pt[Mm](4, 2), p.Max(o))
	diff(t, Origin[Mm](), Pt[Mm](0, 0))
	diff(t, SplatPt[Mm](3), Pt[Mm](3, 3))
}

func TestPointLerp(t *testing.T) {
	p := Pt[Mm](0, 0)
	o := Pt[Mm](4, 2)
	diff(t, Pt[Mm](2, 1), p.Lerp(o, 0.5), approx[Mm]())
	diff(t, Pt[Mm](2, 1), p.Midpoint(o), approx[Mm]())
	diff(t, Pt[Mm](1, 0.5), p.Lerp(o, 0.25), approx[Mm]())
}

func TestPointDistance(t *testing.T) {
	diff(t, Mm(5), Pt[Mm](1, 1).Distance(Pt[Mm](4, 5)), approx[Mm]())
}

func TestPointTransforms(t *testing.T) {
	p := Pt[Mm](1, 2)

	diff(t, Pt[Mm](2, 6), p.Scale(NewScale(2, 3)))
	diff(t, Pt[Mm](0, 4), p.Translate(NewTranslate[Mm](-1, 2)))
	diff(t, Pt[Mm](-2, 1), p.Rotate(RotateBy(HalfPi)), approx[Mm]())

	// The full transform applies the linear part then the translation.
	tr := Identity[Mm]().ThenScale(SplatScale(2)).ThenTranslate(NewTranslate[Mm](10, 0))
	diff(t, Pt[Mm](12, 4), p.Transform(tr), approx[Mm]())
}
