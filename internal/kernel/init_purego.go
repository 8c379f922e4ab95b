//go:build purego

package kernel

import (
	// Scalar kernels only.
	_ "github.com/cwbudde/algo-vmask/internal/kernel/arch/generic"
)
