package geom

import "github.com/chewxy/math32"

// defaultTolerance is the comparison tolerance used when a caller does not
// supply one.
const defaultTolerance = 1e-6

// isClose reports whether a and b are equal within an absolute-or-relative
// tolerance. All degenerate-case thresholds in this package funnel through
// here so they stay consistent; never compare floats for exact equality at
// angle or radius boundaries.
func isClose(a, b, tolerance float32) bool {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	return math32.Abs(a-b) <= max(tolerance, tolerance*max(math32.Abs(a), math32.Abs(b)))
}
