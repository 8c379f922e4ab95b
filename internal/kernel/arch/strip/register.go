package strip

import (
	"github.com/cwbudde/algo-vmask/internal/cpu"
	"github.com/cwbudde/algo-vmask/internal/kernel/registry"
)

// init registers one strip-mined variant per vector extension, sized to the
// extension's register width. The variants are pure Go and slower than the
// scalar loop, so they rank below generic: dispatch never selects them, but
// they stay reachable by name for -impl, -list and the agreement tests.
func init() {
	variants := []struct {
		name     string
		level    cpu.SIMDLevel
		priority int
		vlen     int
	}{
		{"sse2-strip", cpu.SIMDSSE2, -40, 128},
		{"neon-strip", cpu.SIMDNEON, -30, 128},
		{"avx2-strip", cpu.SIMDAVX2, -20, 256},
		{"rvv-strip", cpu.SIMDRVV, -10, DefaultVLEN},
	}

	for _, v := range variants {
		k := MustNew(v.vlen)
		registry.Global.Register(registry.OpEntry{
			Name:      v.name,
			SIMDLevel: v.level,
			Priority:  v.priority,
			VLEN:      v.vlen,

			MulEvenBlock:  k.MulEvenBlock,
			MulMergeBlock: k.MulMergeBlock,
		})
	}
}
