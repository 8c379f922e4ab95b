//go:build riscv64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs detection on riscv64. HasV is only set for
// RVV 1.0 compatible hardware.
func detectFeaturesImpl() Features {
	return Features{
		HasRVV:       cpu.RISCV64.HasV,
		Architecture: runtime.GOARCH,
	}
}
