// Package drawing generates keycap outline drawings from keys and a
// profile. Each key produces a set of filled and outlined paths in drawing
// units ([geom.Dot]), positioned within the key's footprint.
package drawing

import (
	"image/color"

	"github.com/kbtools/keyset/geom"
	"github.com/kbtools/keyset/key"
	"github.com/kbtools/keyset/profile"
)

// arcTolerance is the maximum deviation allowed when flattening shape arcs
// to cubic Béziers, in dots.
const arcTolerance = 1.0

// Template collects the drawing parameters shared by all keys.
type Template struct {
	Profile      profile.Profile
	OutlineWidth geom.Dot
	// ShowKeys disables cap drawing entirely when false, leaving only
	// whatever overlays callers add on top.
	ShowKeys bool
}

// NewTemplate returns a template with the default profile and a 10 dot
// outline.
func NewTemplate() Template {
	return Template{
		Profile:      profile.Default(),
		OutlineWidth: 10,
		ShowKeys:     true,
	}
}

// Outline is the stroke drawn around a key path.
type Outline struct {
	Color color.Color
	Width geom.Dot
}

// KeyPath is a single closed drawing element of a key: its path, fill, and
// outline stroke. Fill or Outline may be nil for stroke-only or fill-only
// elements.
type KeyPath struct {
	Data    geom.Path[geom.Dot]
	Fill    color.Color
	Outline *Outline
}

// KeyDrawing is the complete drawing of one key, positioned by its origin
// on the layout.
type KeyDrawing struct {
	Origin geom.Point[geom.KeyUnit]
	Paths  []KeyPath
}

// NewKeyDrawing generates the drawing for a single key.
func NewKeyDrawing(k key.Key, t Template) KeyDrawing {
	return KeyDrawing{
		Origin: k.Position,
		Paths:  KeyPaths(k, t),
	}
}

// Bounds returns the drawing's bounding box in dots, relative to the key
// origin. An empty drawing has zero bounds.
func (d KeyDrawing) Bounds() geom.Rect[geom.Dot] {
	if len(d.Paths) == 0 {
		return geom.Rect[geom.Dot]{}
	}
	bounds := d.Paths[0].Data.Bounds()
	for _, p := range d.Paths[1:] {
		bounds = bounds.Union(p.Data.Bounds())
	}
	return bounds
}

// highlight derives the outline color from the fill: dark fills are
// lightened and light fills darkened by the given fraction.
func highlight(c color.Color, amount float64) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return c
	}

	// Rec. 601 luma on the alpha-premultiplied components.
	luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / float64(a)

	adjust := func(v, a uint32) uint8 {
		f := float64(v)
		if luma > 0.5 {
			f *= 1 - amount
		} else {
			f += (float64(a) - f) * amount
		}
		return uint8(f / float64(a) * 0xff)
	}
	return color.RGBA{
		R: adjust(r, a),
		G: adjust(g, a),
		B: adjust(b, a),
		A: uint8(a >> 8),
	}
}
