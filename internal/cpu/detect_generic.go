//go:build !amd64 && !arm64 && !riscv64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures: scalar only.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
