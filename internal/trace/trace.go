// Package trace records the strips processed by a strip-mined kernel.
//
// Each strip corresponds to one vsetvl iteration: the kernel asked for the
// remaining element count, was granted VL lanes out of VLMax, loaded A and B,
// applied the lane mask and stored C.
package trace

import (
	"sync"

	"github.com/cwbudde/algo-vmask/mask"
)

// Strip is the state of one kernel iteration.
type Strip struct {
	Offset int       // index of the first element of the strip
	VL     int       // granted vector length
	VLMax  int       // lanes per register at the configured VLEN and SEW
	SEW    int       // element width in bits
	LMUL   int       // register grouping factor
	Mask   mask.Mask // lane predicate over VLMax lanes (v0)
	A, B   []int32   // loaded operands, VL lanes
	C      []int32   // stored result, VL lanes
}

// Active returns the lanes that were both in the body (lane < VL) and
// selected by the mask. Tail lanes are never active.
func (s Strip) Active() mask.Mask {
	return s.Mask.And(mask.FirstN(s.VLMax, s.VL))
}

// Tracer observes kernel strips. Implementations must not retain the slices
// of a Strip beyond the call unless they copy them.
type Tracer interface {
	Strip(s Strip)
}

// Recorder is a Tracer that keeps copies of every strip it sees.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	strips []Strip
}

// Strip records a copy of s.
func (r *Recorder) Strip(s Strip) {
	s.Mask = s.Mask.Clone()
	s.A = append([]int32(nil), s.A...)
	s.B = append([]int32(nil), s.B...)
	s.C = append([]int32(nil), s.C...)

	r.mu.Lock()
	r.strips = append(r.strips, s)
	r.mu.Unlock()
}

// Strips returns the recorded strips in arrival order.
func (r *Recorder) Strips() []Strip {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Strip, len(r.strips))
	copy(out, r.strips)
	return out
}

// Reset discards all recorded strips.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.strips = nil
	r.mu.Unlock()
}
