package geom

// Unit is the constraint satisfied by scalar types that tag a measurement
// space. Each space is a distinct defined type over float32, so arithmetic
// between spaces does not type-check without an explicit [Conversion].
type Unit interface {
	~float32
}

// KeyUnit is the canonical keyboard spacing unit. A standard 1×1 key
// footprint is 1.0 KeyUnit, commonly 19.05 mm or 0.75 in.
type KeyUnit float32

// Dot is the abstract drawing unit, with 1000 dots per keyboard unit.
type Dot float32

// Mm is a millimeter.
type Mm float32

// Inch is an inch.
type Inch float32

// FontUnit is a font design unit. Its size depends on the font's units per
// em, so conversions involving FontUnit are declared by the caller.
type FontUnit float32

// Conversion is a declared linear factor converting scalars from space F to
// space T.
type Conversion[F, T Unit] float32

// Declared conversion factors between the standard measurement spaces.
var (
	DotPerUnit  = Conversion[KeyUnit, Dot](1000.0)
	MmPerUnit   = Conversion[KeyUnit, Mm](19.05)
	InchPerUnit = Conversion[KeyUnit, Inch](0.75)
	DotPerMm    = Conversion[Mm, Dot](float32(DotPerUnit) / float32(MmPerUnit))
	DotPerInch  = Conversion[Inch, Dot](float32(DotPerUnit) / float32(InchPerUnit))
)

// Reverse returns the inverse conversion, from T back to F.
func (c Conversion[F, T]) Reverse() Conversion[T, F] {
	return Conversion[T, F](1.0 / float32(c))
}

// Length converts a scalar length.
func (c Conversion[F, T]) Length(l F) T {
	return T(float32(l) * float32(c))
}

// Point converts a point.
func (c Conversion[F, T]) Point(p Point[F]) Point[T] {
	return Point[T]{X: c.Length(p.X), Y: c.Length(p.Y)}
}

// Vector converts a vector.
func (c Conversion[F, T]) Vector(v Vector[F]) Vector[T] {
	return Vector[T]{X: c.Length(v.X), Y: c.Length(v.Y)}
}

// Rect converts a rectangle.
func (c Conversion[F, T]) Rect(r Rect[F]) Rect[T] {
	return NewRect(c.Point(r.Min), c.Point(r.Max))
}

// RoundRect converts a rounded rectangle.
func (c Conversion[F, T]) RoundRect(r RoundRect[F]) RoundRect[T] {
	return NewRoundRect(c.Point(r.Rect().Min), c.Point(r.Rect().Max), c.Vector(r.Radii()))
}
