package generic

import (
	"github.com/cwbudde/algo-vmask/internal/cpu"
	"github.com/cwbudde/algo-vmask/internal/kernel/registry"
)

// init registers the scalar kernels, the fallback used when no vector
// variant is compatible or ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MulEvenBlock:  MulEvenBlock,
		MulMergeBlock: MulMergeBlock,
	})
}
