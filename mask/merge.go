package mask

// MulMerge performs a masked multiply with merge:
//
//	dst[i] = a[i] * b[i]     if m.Get(i)
//	dst[i] = maskedoff[i]    otherwise
//
// All slices and the mask must have equal length. Panics if lengths differ.
// dst may alias any of the inputs.
func MulMerge(dst []int32, m Mask, maskedoff, a, b []int32) {
	n := len(dst)
	if len(a) != n || len(b) != n || len(maskedoff) != n || m.Len() != n {
		panic("mask: slice length mismatch")
	}
	for i := range dst {
		if m.bits[i] {
			dst[i] = a[i] * b[i]
		} else {
			dst[i] = maskedoff[i]
		}
	}
}
