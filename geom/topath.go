package geom

// PathShape is a primitive shape that can be flattened to a [Path] of
// moves, lines and cubic Béziers. The tolerance is the maximum permitted
// deviation of the result from the exact shape; implementations may treat
// it as a floor when their approximation is already finer.
type PathShape[U Unit] interface {
	ToPath(tolerance float32) Path[U]
}

var (
	_ PathShape[Dot] = Rect[Dot]{}
	_ PathShape[Dot] = RoundRect[Dot]{}
	_ PathShape[Dot] = Circle[Dot]{}
	_ PathShape[Dot] = Ellipse[Dot]{}
	_ PathShape[Dot] = Arc[Dot]{}
)
