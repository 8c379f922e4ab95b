// Package mask provides lane predicates for masked vector operations.
//
// A Mask selects which lanes of an element-wise operation are active. Inactive
// lanes are either left at a default (zero) or merged from a "masked-off"
// operand, matching the mask-undisturbed policy of vector ISAs.
package mask

import (
	"strings"
)

// Mask is an ordered lane predicate of fixed length.
// The zero value is an empty mask.
type Mask struct {
	bits []bool
}

// New returns a mask of n inactive lanes.
func New(n int) Mask {
	if n < 0 {
		n = 0
	}
	return Mask{bits: make([]bool, n)}
}

// EvenIndices returns a mask of n lanes where lane i is active iff i is even.
func EvenIndices(n int) Mask {
	m := New(n)
	for i := 0; i < len(m.bits); i += 2 {
		m.bits[i] = true
	}
	return m
}

// OddIndices returns a mask of n lanes where lane i is active iff i is odd.
func OddIndices(n int) Mask {
	m := New(n)
	for i := 1; i < len(m.bits); i += 2 {
		m.bits[i] = true
	}
	return m
}

// FirstN returns a mask of n lanes with the first count lanes active.
// count is clamped to [0, n].
func FirstN(n, count int) Mask {
	m := New(n)
	count = max(0, min(count, len(m.bits)))
	for i := range count {
		m.bits[i] = true
	}
	return m
}

// FromValues returns a mask with lane i active iff pred(v[i]).
func FromValues(v []int32, pred func(int32) bool) Mask {
	m := New(len(v))
	for i, x := range v {
		m.bits[i] = pred(x)
	}
	return m
}

// EvenValues returns a mask with lane i active iff v[i] is even, i.e.
// (v[i] & 1) == 0. It tests element values, not lane positions: use
// EvenIndices to select by index parity.
func EvenValues(v []int32) Mask {
	return FromValues(v, func(x int32) bool { return x&1 == 0 })
}

// Len returns the number of lanes.
func (m Mask) Len() int {
	return len(m.bits)
}

// Get reports whether lane i is active. Out-of-range lanes are inactive.
func (m Mask) Get(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// Set activates or deactivates lane i. It panics if i is out of range.
func (m Mask) Set(i int, active bool) {
	m.bits[i] = active
}

// Not returns the lane-wise complement of m.
func (m Mask) Not() Mask {
	out := New(len(m.bits))
	for i, b := range m.bits {
		out.bits[i] = !b
	}
	return out
}

// And returns the lane-wise conjunction of m and o.
// Lanes beyond the shorter mask are inactive.
func (m Mask) And(o Mask) Mask {
	out := New(len(m.bits))
	for i, b := range m.bits {
		out.bits[i] = b && o.Get(i)
	}
	return out
}

// Or returns the lane-wise disjunction of m and o, with the length of m.
func (m Mask) Or(o Mask) Mask {
	out := New(len(m.bits))
	for i, b := range m.bits {
		out.bits[i] = b || o.Get(i)
	}
	return out
}

// Count returns the number of active lanes.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	return Mask{bits: append([]bool(nil), m.bits...)}
}

// Equal reports whether m and o have the same length and lanes.
func (m Mask) Equal(o Mask) bool {
	if len(m.bits) != len(o.bits) {
		return false
	}
	for i, b := range m.bits {
		if o.bits[i] != b {
			return false
		}
	}
	return true
}

// String renders lanes in index order as '1' (active) and '0' (inactive).
func (m Mask) String() string {
	var sb strings.Builder
	sb.Grow(len(m.bits))
	for _, b := range m.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
