package parity

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// MulEvenFloat64 computes dst[i] = a[i] * b[i] for even i and dst[i] = 0 for
// odd i. Slices must have equal length. Panics if lengths differ.
//
// The full product is computed by the vectorized vecmath.MulBlock; odd lanes
// are cleared afterwards.
func MulEvenFloat64(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("parity: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.MulBlock(dst, a, b)
	for i := 1; i < len(dst); i += 2 {
		dst[i] = 0
	}
}
