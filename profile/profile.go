// Package profile describes keycap profiles: the size and placement of the
// top and bottom cap surfaces and the properties of homing markers.
//
// Surface measurements are stored in drawing units ([geom.Dot]) for a 1u
// key; the templates stretch to larger keys by displacing their maximum
// corner. Homing marker measurements are physical and stored in
// millimeters.
package profile

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/kbtools/keyset/geom"
	"github.com/kbtools/keyset/key"
)

// Style is the overall sculpt of a profile's key tops.
type Style uint8

const (
	// Cylindrical tops are dished in one axis, like Cherry or OEM.
	Cylindrical Style = iota
	// Spherical tops are dished in both axes, like SA or DSA.
	Spherical
	// Flat tops have no dish at all, like G20 or chiclet caps.
	Flat
)

func (s Style) String() string {
	switch s {
	case Cylindrical:
		return "Cylindrical"
	case Spherical:
		return "Spherical"
	case Flat:
		return "Flat"
	default:
		return "Unknown"
	}
}

// TopSurface is the size and placement of the cap's top surface on a 1u
// key.
type TopSurface struct {
	Size geom.Vector[geom.Dot]
	// Radius is the corner radius of the top surface outline.
	Radius geom.Dot
	// YOffset shifts the top surface off the footprint center, positive
	// towards the bottom edge.
	YOffset geom.Dot
}

// Rect returns the 1u top surface rectangle, positioned within the
// footprint of a key at the origin.
func (s TopSurface) Rect() geom.Rect[geom.Dot] {
	center := geom.DotPerUnit.Point(geom.SplatPt[geom.KeyUnit](0.5)).Add(geom.Vec(0, s.YOffset))
	return geom.RectFromCenterAndSize(center, s.Size)
}

// RoundRect returns the 1u top surface with its corner radius applied.
func (s TopSurface) RoundRect() geom.RoundRect[geom.Dot] {
	return geom.RoundRectFromRect(s.Rect(), geom.Splat(s.Radius))
}

// BottomSurface is the size of the cap's bottom surface on a 1u key. The
// bottom is always centered on the footprint.
type BottomSurface struct {
	Size   geom.Vector[geom.Dot]
	Radius geom.Dot
}

// Rect returns the 1u bottom surface rectangle, positioned within the
// footprint of a key at the origin.
func (s BottomSurface) Rect() geom.Rect[geom.Dot] {
	return geom.RectFromCenterAndSize(geom.DotPerUnit.Point(geom.SplatPt[geom.KeyUnit](0.5)), s.Size)
}

// RoundRect returns the 1u bottom surface with its corner radius applied.
func (s BottomSurface) RoundRect() geom.RoundRect[geom.Dot] {
	return geom.RoundRectFromRect(s.Rect(), geom.Splat(s.Radius))
}

// ScoopProps describes a scooped homing key.
type ScoopProps struct {
	// Depth of the scoop in millimeters.
	Depth geom.Mm
}

// BarProps describes the raised bar on a homing key.
type BarProps struct {
	Size geom.Vector[geom.Mm]
	// YOffset shifts the bar from the top surface center towards the
	// bottom edge.
	YOffset geom.Mm
}

// BumpProps describes the raised bump on a homing key.
type BumpProps struct {
	Diameter geom.Mm
	// YOffset shifts the bump from the top surface center towards the
	// bottom edge.
	YOffset geom.Mm
}

// HomingProps collects the homing marker properties of a profile.
type HomingProps struct {
	// Default is the style used when a key doesn't specify one.
	Default key.Homing
	Scoop   ScoopProps
	Bar     BarProps
	Bump    BumpProps
}

// Resolve maps a key's homing style to a concrete one, substituting the
// profile default.
func (p HomingProps) Resolve(h key.Homing) key.Homing {
	if h == key.HomingDefault {
		return p.Default
	}
	return h
}

// Profile is a complete keycap profile.
type Profile struct {
	Style Style
	// Depth of the top surface dish in millimeters; zero for flat
	// profiles.
	Depth  float32
	Top    TopSurface
	Bottom BottomSurface
	Homing HomingProps
}

// Default returns a generic OEM-like cylindrical profile.
func Default() Profile {
	return Profile{
		Style: Cylindrical,
		Depth: 1.0,
		Top: TopSurface{
			Size:    geom.Vec[geom.Dot](660, 735),
			Radius:  65,
			YOffset: -77.5,
		},
		Bottom: BottomSurface{
			Size:   geom.Vec[geom.Dot](950, 950),
			Radius: 65,
		},
		Homing: HomingProps{
			Default: key.HomingBar,
			Scoop:   ScoopProps{Depth: 2.0},
			Bar:     BarProps{Size: geom.Vec[geom.Mm](3.81, 0.51), YOffset: 6.35},
			Bump:    BumpProps{Diameter: 0.51, YOffset: 0},
		},
	}
}

// TopWithSize returns the top surface for a key of the given size in key
// units, stretched from the 1u template by displacing its maximum corner.
func (p Profile) TopWithSize(size geom.Vector[geom.KeyUnit]) geom.RoundRect[geom.Dot] {
	return stretch(p.Top.RoundRect(), size)
}

// BottomWithSize returns the bottom surface for a key of the given size in
// key units.
func (p Profile) BottomWithSize(size geom.Vector[geom.KeyUnit]) geom.RoundRect[geom.Dot] {
	return stretch(p.Bottom.RoundRect(), size)
}

func stretch(r geom.RoundRect[geom.Dot], size geom.Vector[geom.KeyUnit]) geom.RoundRect[geom.Dot] {
	d := geom.DotPerUnit.Vector(size.Sub(geom.Splat[geom.KeyUnit](1)))
	return geom.NewRoundRect(r.Rect().Min, r.Rect().Max.Add(d), r.Radii())
}

// Validate reports the first problem that would make the profile unusable
// for drawing.
func (p Profile) Validate() error {
	if p.Style > Flat {
		return fmt.Errorf("profile: unknown style %d", p.Style)
	}
	if math32.IsNaN(p.Depth) || p.Depth < 0 {
		return fmt.Errorf("profile: invalid depth %v", p.Depth)
	}
	if err := validSize("top", p.Top.Size); err != nil {
		return err
	}
	if math32.IsNaN(float32(p.Top.Radius)) || p.Top.Radius < 0 {
		return fmt.Errorf("profile: invalid top radius %v", p.Top.Radius)
	}
	if math32.IsNaN(float32(p.Top.YOffset)) {
		return fmt.Errorf("profile: invalid top y offset %v", p.Top.YOffset)
	}
	if err := validSize("bottom", p.Bottom.Size); err != nil {
		return err
	}
	if math32.IsNaN(float32(p.Bottom.Radius)) || p.Bottom.Radius < 0 {
		return fmt.Errorf("profile: invalid bottom radius %v", p.Bottom.Radius)
	}
	if p.Homing.Default == key.HomingDefault {
		return fmt.Errorf("profile: default homing style must be concrete")
	}
	if bar := p.Homing.Bar.Size; bar.IsNaN() || bar.X <= 0 || bar.Y <= 0 {
		return fmt.Errorf("profile: invalid homing bar size %v", bar)
	}
	if d := p.Homing.Bump.Diameter; math32.IsNaN(float32(d)) || d <= 0 {
		return fmt.Errorf("profile: invalid homing bump diameter %v", d)
	}
	return nil
}

func validSize[U geom.Unit](name string, size geom.Vector[U]) error {
	if size.IsNaN() || size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("profile: invalid %s surface size %v", name, size)
	}
	return nil
}
