package drawing

import (
	"image/color"

	"github.com/kbtools/keyset/geom"
	"github.com/kbtools/keyset/key"
)

// KeyPaths generates the cap paths for a single key: the bottom surface,
// the top surface, and any step or homing marker on top of it. A decal key
// produces no paths.
func KeyPaths(k key.Key, t Template) []KeyPath {
	if !t.ShowKeys || k.Type == key.TypeNone {
		return nil
	}

	var paths []KeyPath
	switch k.Shape.Kind {
	case key.SteppedCaps:
		paths = append(paths,
			bottom(t, k.Color, geom.Vec[geom.KeyUnit](1.75, 1)),
			top(t, k.Color, geom.Vec[geom.KeyUnit](1.25, 1)),
			step(t, k.Color),
		)
	case key.IsoVertical, key.IsoHorizontal:
		paths = append(paths,
			isoBottom(t, k.Color),
			isoTop(t, k.Color),
		)
	default:
		paths = append(paths,
			bottom(t, k.Color, k.Shape.Size),
			top(t, k.Color, k.Shape.Size),
		)
	}

	if k.Type == key.TypeHoming {
		size := k.Shape.FootprintSize()
		switch t.Profile.Homing.Resolve(k.Homing) {
		case key.HomingBar:
			paths = append(paths, homingBar(t, k.Color, size))
		case key.HomingBump:
			paths = append(paths, homingBump(t, k.Color, size))
		}
		// A scoop changes the cap's sculpt, not its outline.
	}

	return paths
}

func top(t Template, c color.Color, size geom.Vector[geom.KeyUnit]) KeyPath {
	return keyPath(t, c, t.Profile.TopWithSize(size).ToPath(arcTolerance))
}

func bottom(t Template, c color.Color, size geom.Vector[geom.KeyUnit]) KeyPath {
	return keyPath(t, c, t.Profile.BottomWithSize(size).ToPath(arcTolerance))
}

func isoTop(t Template, c color.Color) KeyPath {
	return keyPath(t, c, isoPath(t.Profile.Top.RoundRect()))
}

func isoBottom(t Template, c color.Color) KeyPath {
	return keyPath(t, c, isoPath(t.Profile.Bottom.RoundRect()))
}

// isoPath traces the L-shaped ISO enter outline from a 1u surface
// template. The outline is the union of a 1.5×1 row at the top and a
// 1.25×2 column flush with its right edge, traced clockwise with convex
// corners except the concave inner one.
func isoPath(surf geom.RoundRect[geom.Dot]) geom.Path[geom.Dot] {
	row := stretchRect(surf.Rect(), geom.Vec[geom.KeyUnit](1.5, 1))
	column := stretchRect(surf.Rect(), geom.Vec[geom.KeyUnit](1.25, 2)).
		Translate(geom.NewTranslate(geom.DotPerUnit.Length(0.25), 0))
	radii := surf.Radii()

	b := geom.NewPathBuilder[geom.Dot]()
	b.AbsMove(row.Min.Add(geom.Vec(0, radii.Y)))
	b.RelArc(radii, geom.ZeroAngle, false, true, radii.NegY())
	b.AbsHorizLine(row.Max.X - radii.X)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii)
	b.AbsVertLine(column.Max.Y - radii.Y)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii.NegX())
	b.AbsHorizLine(column.Min.X + radii.X)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii.Negate())
	b.AbsVertLine(row.Max.Y + radii.Y)
	b.RelArc(radii, geom.ZeroAngle, false, false, radii.Negate())
	b.AbsHorizLine(row.Min.X + radii.X)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii.Negate())
	b.Close()
	return b.Build()
}

func step(t Template, c color.Color) KeyPath {
	// The step sits between the top and bottom surfaces, so its outline
	// uses the average of their extents and radii.
	topRR := t.Profile.Top.RoundRect()
	bottomRR := t.Profile.Bottom.RoundRect()
	rect := topRR.Lerp(bottomRR, 0.5)

	return keyPath(t, c, stepPath(rect))
}

// stepPath traces the lowered step of a stepped caps key from the averaged
// cap surface. The step occupies the right 0.5u of the 1.75u cap and tucks
// under the raised section with concave corners on its left side.
func stepPath(surf geom.RoundRect[geom.Dot]) geom.Path[geom.Dot] {
	radii := surf.Radii()
	rect := geom.RectFromOriginAndSize(
		geom.Pt(geom.DotPerUnit.Length(1.25)-surf.Rect().Min.X, surf.Rect().Min.Y),
		geom.Vec(geom.DotPerUnit.Length(0.5), surf.Height()),
	)

	b := geom.NewPathBuilder[geom.Dot]()
	b.AbsMove(rect.Min.Add(geom.Vec(0, radii.Y)))
	b.RelArc(radii, geom.ZeroAngle, false, false, radii.Negate())
	b.AbsHorizLine(rect.Max.X - radii.X)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii)
	b.AbsVertLine(rect.Max.Y - radii.Y)
	b.RelArc(radii, geom.ZeroAngle, false, true, radii.NegX())
	b.AbsHorizLine(rect.Min.X - radii.X)
	b.RelArc(radii, geom.ZeroAngle, false, false, radii.NegY())
	b.Close()
	return b.Build()
}

func homingBar(t Template, c color.Color, size geom.Vector[geom.KeyUnit]) KeyPath {
	bar := t.Profile.Homing.Bar
	center := t.Profile.TopWithSize(size).Center().
		Add(geom.Vec(0, geom.DotPerMm.Length(bar.YOffset)))
	r := geom.RectFromCenterAndSize(center, geom.DotPerMm.Vector(bar.Size))
	return keyPath(t, c, r.ToPath(arcTolerance))
}

func homingBump(t Template, c color.Color, size geom.Vector[geom.KeyUnit]) KeyPath {
	bump := t.Profile.Homing.Bump
	center := t.Profile.TopWithSize(size).Center().
		Add(geom.Vec(0, geom.DotPerMm.Length(bump.YOffset)))
	circle := geom.NewCircle(center, geom.DotPerMm.Length(bump.Diameter)/2)
	return keyPath(t, c, circle.ToPath(arcTolerance))
}

func keyPath(t Template, c color.Color, data geom.Path[geom.Dot]) KeyPath {
	return KeyPath{
		Data: data,
		Fill: c,
		Outline: &Outline{
			Color: highlight(c, 0.15),
			Width: t.OutlineWidth,
		},
	}
}

// stretchRect widens a 1u surface rectangle to a key of the given size by
// displacing its maximum corner.
func stretchRect(r geom.Rect[geom.Dot], size geom.Vector[geom.KeyUnit]) geom.Rect[geom.Dot] {
	d := geom.DotPerUnit.Vector(size.Sub(geom.Splat[geom.KeyUnit](1)))
	return geom.NewRect(r.Min, r.Max.Add(d))
}
