package geom

// Arc is an elliptical arc in SVG endpoint parameterization: it runs from
// Start to End along an ellipse with the given radii, rotated by XRotation
// about the x axis. LargeArc and Sweep select which of the up to four
// candidate arcs through the two endpoints to trace.
type Arc[U Unit] struct {
	Start     Point[U]
	Radii     Vector[U]
	XRotation Angle
	LargeArc  bool
	Sweep     bool
	End       Point[U]
}

// Scale scales the arc. The x-axis rotation and flags are unchanged.
func (a Arc[U]) Scale(s Scale) Arc[U] {
	a.Start = a.Start.Scale(s)
	a.Radii = a.Radii.Scale(s)
	a.End = a.End.Scale(s)
	return a
}

// Translate translates the arc.
func (a Arc[U]) Translate(t Translate[U]) Arc[U] {
	a.Start = a.Start.Translate(t)
	a.End = a.End.Translate(t)
	return a
}

// ToPath converts the arc to an open path of up to four cubic Bézier
// segments, each spanning at most a quarter turn. Coincident endpoints
// yield a path containing only the initial Move; radii too small to span
// the endpoints are scaled up uniformly to the minimum that can. The cubic
// approximation deviates from the true arc by below 3e-4 times the larger
// radius; tolerance values smaller than that are not honored.
func (a Arc[U]) ToPath(tolerance float32) Path[U] {
	b := NewPathBuilderWithCapacity[U](5)
	b.AbsMove(a.Start)
	b.RelArc(a.Radii, a.XRotation, a.LargeArc, a.Sweep, a.End.Sub(a.Start))
	return b.Build()
}
