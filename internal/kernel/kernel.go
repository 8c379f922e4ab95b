// Package kernel dispatches masked block kernels to the best registered
// variant for the current CPU.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vmask/internal/cpu"
	"github.com/cwbudde/algo-vmask/internal/kernel/registry"
	"github.com/cwbudde/algo-vmask/mask"
)

var (
	mulEvenBlockImpl  func([]int32, []int32, []int32)
	mulMergeBlockImpl func([]int32, mask.Mask, []int32, []int32, []int32)
	selectedName      string
	initOnce          sync.Once
)

func initOperations() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered")
	}
	if entry.MulEvenBlock == nil || entry.MulMergeBlock == nil {
		panic("kernel: selected implementation missing operations")
	}
	mulEvenBlockImpl = entry.MulEvenBlock
	mulMergeBlockImpl = entry.MulMergeBlock
	selectedName = entry.Name
}

// MulEvenBlock computes dst[i] = a[i] * b[i] for even i and dst[i] = 0 for
// odd i. Slices must have equal length. Panics if lengths differ.
func MulEvenBlock(dst, a, b []int32) {
	initOnce.Do(initOperations)
	mulEvenBlockImpl(dst, a, b)
}

// MulMergeBlock computes dst[i] = a[i] * b[i] where m is active and
// dst[i] = maskedoff[i] elsewhere. Panics if lengths differ.
func MulMergeBlock(dst []int32, m mask.Mask, maskedoff, a, b []int32) {
	initOnce.Do(initOperations)
	mulMergeBlockImpl(dst, m, maskedoff, a, b)
}

// Selected returns the name of the variant bound on first use.
func Selected() string {
	initOnce.Do(initOperations)
	return selectedName
}

// Entries returns every registered variant, highest priority first.
func Entries() []registry.OpEntry {
	return registry.Global.ListEntries()
}

// Find returns the variant registered under name, or nil.
func Find(name string) *registry.OpEntry {
	return registry.Global.Find(name)
}
