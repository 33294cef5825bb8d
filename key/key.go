// Package key models physical keys on a keyboard layout: their position,
// footprint shape, and behavioral type.
package key

import (
	"image/color"

	"github.com/kbtools/keyset/geom"
)

// Homing is a style of homing marker on a key top.
type Homing uint8

const (
	// HomingDefault defers to the profile's default homing style.
	HomingDefault Homing = iota
	// HomingScoop is a deeper dished key top.
	HomingScoop
	// HomingBar is a small raised bar near the front edge.
	HomingBar
	// HomingBump is a small raised dot in the center.
	HomingBump
)

func (h Homing) String() string {
	switch h {
	case HomingDefault:
		return "Default"
	case HomingScoop:
		return "Scoop"
	case HomingBar:
		return "Bar"
	case HomingBump:
		return "Bump"
	default:
		return "Unknown"
	}
}

// Type is a key's behavioral type.
type Type uint8

const (
	// TypeNormal is a regular key.
	TypeNormal Type = iota
	// TypeNone is a decal: it occupies space but draws no cap.
	TypeNone
	// TypeSpace is a convex space-bar style key.
	TypeSpace
	// TypeHoming is a key with a homing marker; see [Homing].
	TypeHoming
)

func (t Type) String() string {
	switch t {
	case TypeNormal:
		return "Normal"
	case TypeNone:
		return "None"
	case TypeSpace:
		return "Space"
	case TypeHoming:
		return "Homing"
	default:
		return "Unknown"
	}
}

// ShapeKind discriminates the supported key footprint shapes.
type ShapeKind uint8

const (
	// Normal is a rectangular cap of the shape's size.
	Normal ShapeKind = iota
	// SteppedCaps is a 1.75u cap with a lower step on its right quarter,
	// as on a stepped caps-lock.
	SteppedCaps
	// IsoVertical is an ISO enter drawn as a vertical 1.25×2 cap with the
	// overhang on the left.
	IsoVertical
	// IsoHorizontal is an ISO enter drawn as a horizontal 1.5×1 cap with
	// the descender on the right.
	IsoHorizontal
)

func (k ShapeKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case SteppedCaps:
		return "SteppedCaps"
	case IsoVertical:
		return "IsoVertical"
	case IsoHorizontal:
		return "IsoHorizontal"
	default:
		return "Unknown"
	}
}

// Shape is a key's footprint shape. Size is only meaningful for the Normal
// kind; the special shapes have fixed dimensions.
type Shape struct {
	Kind ShapeKind
	Size geom.Vector[geom.KeyUnit]
}

// NormalShape returns a rectangular shape of the given size in key units.
func NormalShape(size geom.Vector[geom.KeyUnit]) Shape {
	return Shape{Kind: Normal, Size: size}
}

// Bounds returns the rectangle the shape occupies on the layout, in key
// units relative to the key position.
func (s Shape) Bounds() geom.Rect[geom.KeyUnit] {
	return geom.RectFromOriginAndSize(geom.Origin[geom.KeyUnit](), s.FootprintSize())
}

// FootprintSize returns the overall size of the shape in key units. Both
// ISO variants cover the full 1.5×2 L footprint; a stepped caps covers
// 1.75×1.
func (s Shape) FootprintSize() geom.Vector[geom.KeyUnit] {
	switch s.Kind {
	case IsoVertical, IsoHorizontal:
		return geom.Vec[geom.KeyUnit](1.5, 2)
	case SteppedCaps:
		return geom.Vec[geom.KeyUnit](1.75, 1)
	default:
		return s.Size
	}
}

// Margin returns the part of the footprint that legends may occupy, in key
// units relative to the key position. For ISO enter this is the large
// segment of the L; for a stepped caps it excludes the step.
func (s Shape) Margin() geom.Rect[geom.KeyUnit] {
	switch s.Kind {
	case SteppedCaps:
		return geom.RectFromOriginAndSize(geom.Origin[geom.KeyUnit](), geom.Vec[geom.KeyUnit](1.25, 1))
	case IsoVertical:
		return geom.RectFromOriginAndSize(geom.Pt[geom.KeyUnit](0.25, 0), geom.Vec[geom.KeyUnit](1.25, 2))
	case IsoHorizontal:
		return geom.RectFromOriginAndSize(geom.Origin[geom.KeyUnit](), geom.Vec[geom.KeyUnit](1.5, 1))
	default:
		return geom.RectFromOriginAndSize(geom.Origin[geom.KeyUnit](), s.Size)
	}
}

// Key is a single key on a layout.
type Key struct {
	Position geom.Point[geom.KeyUnit]
	Shape    Shape
	Type     Type
	// Homing selects the homing marker style when Type is TypeHoming;
	// HomingDefault defers to the profile.
	Homing Homing
	Color  color.Color
}

// New returns a plain 1u key at the origin.
func New() Key {
	return Key{
		Position: geom.Origin[geom.KeyUnit](),
		Shape:    NormalShape(geom.Vec[geom.KeyUnit](1, 1)),
		Type:     TypeNormal,
		Color:    color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	}
}
