package parity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vmask/internal/kernel"
	"github.com/cwbudde/algo-vmask/mask"
)

// ErrLengthMismatch is returned when the operands differ in length.
var ErrLengthMismatch = errors.New("parity: operand length mismatch")

// Integer is the set of element types accepted by MulEvenFunc.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MulEven returns a new slice c with c[i] = a[i]*b[i] at even i and 0 at odd
// i. An empty input yields an empty, non-nil result.
func MulEven(a, b []int32) ([]int32, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	c := make([]int32, len(a))
	kernel.MulEvenBlock(c, a, b)
	return c, nil
}

// MulEvenBlock is the zero-allocation form of MulEven writing into dst.
// Slices must have equal length. Panics if lengths differ.
func MulEvenBlock(dst, a, b []int32) {
	kernel.MulEvenBlock(dst, a, b)
}

// MulEvenFunc is MulEven for any integer element type.
func MulEvenFunc[T Integer](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	c := make([]T, len(a))
	for i := 0; i < len(c); i += 2 {
		c[i] = a[i] * b[i]
	}
	return c, nil
}

// Implementation returns the name of the kernel selected for this CPU.
func Implementation() string {
	return kernel.Selected()
}

// MulMasked computes dst[i] = a[i] * b[i] where m is active and
// dst[i] = maskedoff[i] elsewhere. MulEvenBlock is MulMasked with
// mask.EvenIndices and a zero maskedoff. Panics if lengths differ.
func MulMasked(dst []int32, m mask.Mask, maskedoff, a, b []int32) {
	kernel.MulMergeBlock(dst, m, maskedoff, a, b)
}
