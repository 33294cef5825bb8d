package geom

// Scale is the scaling component of an affine transform. It is unitless: it
// scales within a measurement space rather than converting between spaces.
type Scale struct {
	X float32
	Y float32
}

// NewScale returns a scale with the given x and y factors.
func NewScale(x, y float32) Scale {
	return Scale{X: x, Y: y}
}

// SplatScale returns a uniform scale.
func SplatScale(f float32) Scale {
	return Scale{X: f, Y: f}
}

// Translate is the translation component of an affine transform.
type Translate[U Unit] struct {
	X U
	Y U
}

// NewTranslate returns a translation by (x, y).
func NewTranslate[U Unit](x, y U) Translate[U] {
	return Translate[U]{X: x, Y: y}
}

// TranslateBy returns the translation by v.
func TranslateBy[U Unit](v Vector[U]) Translate[U] {
	return Translate[U]{X: v.X, Y: v.Y}
}

// Transform returns the translation as a full affine transform.
func (t Translate[U]) Transform() Transform[U] {
	return Transform[U]{AXX: 1, AYY: 1, TX: t.X, TY: t.Y}
}

// Rotate is the rotation component of an affine transform. A positive angle
// rotates the positive x direction into positive y.
type Rotate struct {
	Angle Angle
}

// RotateBy returns a rotation by a.
func RotateBy(a Angle) Rotate {
	return Rotate{Angle: a}
}

// Transform is a 2×3 affine transform matrix with a unit-typed translation:
//
//	| AXX AXY TX |
//	| AYX AYY TY |
type Transform[U Unit] struct {
	AXX, AXY float32
	TX       U
	AYX, AYY float32
	TY       U
}

// Identity returns the identity transform.
func Identity[U Unit]() Transform[U] {
	return Transform[U]{AXX: 1, AYY: 1}
}

// FromScale returns the transform scaling by s.
func FromScale[U Unit](s Scale) Transform[U] {
	return Transform[U]{AXX: s.X, AYY: s.Y}
}

// FromRotate returns the transform rotating by r about the origin.
func FromRotate[U Unit](r Rotate) Transform[U] {
	sin, cos := r.Angle.SinCos()
	return Transform[U]{AXX: cos, AXY: -sin, AYX: sin, AYY: cos}
}

// Then composes two transforms, applying t first and o second.
func (t Transform[U]) Then(o Transform[U]) Transform[U] {
	return Transform[U]{
		AXX: o.AXX*t.AXX + o.AXY*t.AYX,
		AXY: o.AXX*t.AXY + o.AXY*t.AYY,
		TX:  U(o.AXX*float32(t.TX)+o.AXY*float32(t.TY)) + o.TX,
		AYX: o.AYX*t.AXX + o.AYY*t.AYX,
		AYY: o.AYX*t.AXY + o.AYY*t.AYY,
		TY:  U(o.AYX*float32(t.TX)+o.AYY*float32(t.TY)) + o.TY,
	}
}

// ThenScale composes t with a following scale.
func (t Transform[U]) ThenScale(s Scale) Transform[U] {
	return t.Then(FromScale[U](s))
}

// ThenRotate composes t with a following rotation.
func (t Transform[U]) ThenRotate(r Rotate) Transform[U] {
	return t.Then(FromRotate[U](r))
}

// ThenTranslate composes t with a following translation.
func (t Transform[U]) ThenTranslate(o Translate[U]) Transform[U] {
	t.TX += o.X
	t.TY += o.Y
	return t
}

// Determinant returns the determinant of the linear part.
func (t Transform[U]) Determinant() float32 {
	return t.AXX*t.AYY - t.AXY*t.AYX
}
