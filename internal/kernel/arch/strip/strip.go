// Package strip provides strip-mined, vector-length-agnostic masked kernels.
//
// The kernels follow the RVV programming model: each iteration requests the
// remaining element count, is granted vl = min(avl, vlmax) lanes, loads that
// many elements, computes under a lane mask and stores. vlmax is derived from
// the register width: VLEN * LMUL / SEW. The kernels are pure Go; the strip
// structure only affects iteration order, never results.
package strip

import (
	"fmt"

	"github.com/cwbudde/algo-vmask/internal/trace"
	"github.com/cwbudde/algo-vmask/mask"
)

const (
	// SEW is the element width in bits (int32 lanes).
	SEW = 32

	// LMUL is the register grouping factor.
	LMUL = 1

	// MinVLEN and MaxVLEN bound the register width accepted by New.
	MinVLEN = 32
	MaxVLEN = 65536

	// DefaultVLEN is the register width assumed for RVV when the hardware
	// width is unknown.
	DefaultVLEN = 128
)

// Kernel is a strip-mined kernel for a fixed register width.
// A Kernel is safe for concurrent use if its Tracer is.
type Kernel struct {
	vlen  int
	vlmax int

	// lane patterns by parity of the strip offset: even[lane] is active iff
	// lane is even; odd[lane] iff lane is odd.
	even, odd mask.Mask

	// Tracer, if set, observes every strip.
	Tracer trace.Tracer
}

// ValidateVLEN returns an error unless vlen is a power of two in
// [MinVLEN, MaxVLEN].
func ValidateVLEN(vlen int) error {
	if vlen < MinVLEN || vlen > MaxVLEN || vlen&(vlen-1) != 0 {
		return fmt.Errorf("strip: invalid VLEN %d: want a power of two in [%d, %d]", vlen, MinVLEN, MaxVLEN)
	}
	return nil
}

// New returns a kernel for registers of vlen bits.
func New(vlen int) (*Kernel, error) {
	if err := ValidateVLEN(vlen); err != nil {
		return nil, err
	}
	vlmax := vlen * LMUL / SEW
	return &Kernel{
		vlen:  vlen,
		vlmax: vlmax,
		even:  mask.EvenIndices(vlmax),
		odd:   mask.OddIndices(vlmax),
	}, nil
}

// MustNew is like New but panics on an invalid vlen.
func MustNew(vlen int) *Kernel {
	k, err := New(vlen)
	if err != nil {
		panic(err)
	}
	return k
}

// VLEN returns the register width in bits.
func (k *Kernel) VLEN() int { return k.vlen }

// VLMax returns the number of lanes per register.
func (k *Kernel) VLMax() int { return k.vlmax }

// SetVL returns the vector length granted for avl remaining elements.
func (k *Kernel) SetVL(avl int) int {
	return min(avl, k.vlmax)
}

// parityMask returns the lane mask selecting even absolute indices for a
// strip starting at offset.
func (k *Kernel) parityMask(offset int) mask.Mask {
	if offset&1 == 0 {
		return k.even
	}
	return k.odd
}

// MulEvenBlock computes dst[i] = a[i] * b[i] for even i and dst[i] = 0 for
// odd i. Slices must have equal length. Panics if lengths differ.
func (k *Kernel) MulEvenBlock(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	for i, vl := 0, 0; i < n; i += vl {
		vl = k.SetVL(n - i)
		v0 := k.parityMask(i)
		va := a[i : i+vl]
		vb := b[i : i+vl]
		vc := dst[i : i+vl]

		// vmul.vv with mask-undisturbed merge from a zero register.
		for lane := range vl {
			if v0.Get(lane) {
				vc[lane] = va[lane] * vb[lane]
			} else {
				vc[lane] = 0
			}
		}

		if k.Tracer != nil {
			k.Tracer.Strip(trace.Strip{Offset: i, VL: vl, VLMax: k.vlmax, SEW: SEW, LMUL: LMUL, Mask: v0, A: va, B: vb, C: vc})
		}
	}
}

// MulMergeBlock computes dst[i] = a[i] * b[i] where m is active and
// dst[i] = maskedoff[i] elsewhere. Panics if lengths differ.
func (k *Kernel) MulMergeBlock(dst []int32, m mask.Mask, maskedoff, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) || len(maskedoff) != len(a) || m.Len() != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	for i, vl := 0, 0; i < n; i += vl {
		vl = k.SetVL(n - i)
		va := a[i : i+vl]
		vb := b[i : i+vl]
		vm := maskedoff[i : i+vl]
		vc := dst[i : i+vl]

		for lane := range vl {
			if m.Get(i + lane) {
				vc[lane] = va[lane] * vb[lane]
			} else {
				vc[lane] = vm[lane]
			}
		}

		if k.Tracer != nil {
			v0 := mask.New(k.vlmax)
			for lane := range vl {
				v0.Set(lane, m.Get(i+lane))
			}
			k.Tracer.Strip(trace.Strip{Offset: i, VL: vl, VLMax: k.vlmax, SEW: SEW, LMUL: LMUL, Mask: v0, A: va, B: vb, C: vc})
		}
	}
}
