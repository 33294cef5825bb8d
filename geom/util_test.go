package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares unit scalars with a loose tolerance, absorbing the
// float32 error the arc conversion accumulates.
func approx[U Unit]() cmp.Option {
	return cmp.Comparer(func(a, b U) bool {
		return isClose(float32(a), float32(b), 1e-4)
	})
}
