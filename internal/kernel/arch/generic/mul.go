// Package generic provides the scalar pure Go masked kernels.
package generic

import "github.com/cwbudde/algo-vmask/mask"

// MulEvenBlock computes dst[i] = a[i] * b[i] for even i and dst[i] = 0 for
// odd i. Slices must have equal length. Panics if lengths differ.
func MulEvenBlock(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		if i&1 == 0 {
			dst[i] = a[i] * b[i]
		} else {
			dst[i] = 0
		}
	}
}

// MulMergeBlock computes dst[i] = a[i] * b[i] where m is active and
// dst[i] = maskedoff[i] elsewhere. Panics if lengths differ.
func MulMergeBlock(dst []int32, m mask.Mask, maskedoff, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) || len(maskedoff) != len(a) || m.Len() != len(a) {
		panic("kernel: slice length mismatch")
	}
	mask.MulMerge(dst, m, maskedoff, a, b)
}
