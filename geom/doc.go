// Package geom provides the 2D geometry primitives used to construct keycap
// outlines: unit-tagged points and vectors, affine transforms, rectangles with
// and without rounded corners, and Bézier paths together with a builder.
//
// # Units
//
// Every scalar in this package is a float32 tagged with the measurement space
// it belongs to: keyboard units ([KeyUnit]), drawing units ([Dot]),
// millimeters ([Mm]), inches ([Inch]), or font design units ([FontUnit]).
// Geometric types are generic over the space, so mixing values from different
// spaces is a compile error rather than a silent bug. Moving between spaces
// requires an explicit [Conversion] such as [DotPerUnit] or [DotPerMm].
//
// # Paths
//
// [Path] is an ordered sequence of segments with a cached bounding rectangle.
// Apart from the leading Move of each subpath, segments store displacements
// relative to the pen position, mirroring the relative commands of SVG path
// data. Paths are assembled with [PathBuilder], which tracks the pen, the
// subpath start, and the running bounds in one place.
//
// The primitive shapes ([Rect], [RoundRect], [Circle], [Ellipse], [Arc])
// convert to paths via their ToPath methods; see [PathShape]. Elliptical arcs
// are approximated by at most four cubic Bézier segments of at most a quarter
// turn each.
package geom
