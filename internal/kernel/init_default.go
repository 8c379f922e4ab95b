//go:build !purego

package kernel

// Importing the variant packages runs their init() registrations.

import (
	_ "github.com/cwbudde/algo-vmask/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-vmask/internal/kernel/arch/strip"
)
