// Package registry provides the implementation registry for masked kernels.
//
// Several kernel variants (scalar, strip-mined at different vector lengths)
// coexist. Variant packages register themselves from init() and the kernel
// package selects the best one for the detected CPU at first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vmask/internal/cpu"
	"github.com/cwbudde/algo-vmask/mask"
)

// OpEntry is one registered kernel variant.
type OpEntry struct {
	// Name identifies the variant (e.g. "generic", "avx2-strip").
	Name string

	// SIMDLevel is the instruction set the variant is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins. generic is 0.
	// Variants that are not faster than generic register below it so
	// they are only reachable through Find.
	Priority int

	// VLEN is the vector register width in bits, 0 for scalar variants.
	VLEN int

	// MulEvenBlock computes dst[i] = a[i]*b[i] for even i and 0 for odd i.
	MulEvenBlock func(dst, a, b []int32)

	// MulMergeBlock computes dst[i] = a[i]*b[i] where m is active and
	// maskedoff[i] elsewhere.
	MulMergeBlock func(dst []int32, m mask.Mask, maskedoff, a, b []int32)
}

// OpRegistry holds registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry used by the kernel package.
var Global = &OpRegistry{}

// Register adds a variant. Registrations should complete before the first
// Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant compatible with features, or
// nil if none is (which cannot happen once generic is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the variant registered under name regardless of CPU support.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Insertion sort keeps registration order among equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}

// ListEntries returns a copy of all entries sorted by descending priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
