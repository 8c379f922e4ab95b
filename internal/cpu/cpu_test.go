package cpu

import "testing"

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"sse2 present", Features{HasSSE2: true}, SIMDSSE2, true},
		{"avx2 missing", Features{HasSSE2: true}, SIMDAVX2, false},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"rvv present", Features{HasRVV: true}, SIMDRVV, true},
		{"rvv missing", Features{HasNEON: true}, SIMDRVV, false},
		{"force generic blocks avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"force generic allows none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %s) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasRVV: true, Architecture: "riscv64"})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasRVV || f.Architecture != "riscv64" {
		t.Fatalf("DetectFeatures() = %+v, want forced riscv64 features", f)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture == "" {
		t.Fatal("Architecture empty after ResetDetection")
	}
}

func TestSIMDLevelString(t *testing.T) {
	levels := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSE2:      "SSE2",
		SIMDAVX2:      "AVX2",
		SIMDNEON:      "NEON",
		SIMDRVV:       "RVV",
		SIMDLevel(42): "Unknown",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}
