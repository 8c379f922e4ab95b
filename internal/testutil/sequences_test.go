package testutil

import "testing"

func TestRamp(t *testing.T) {
	got := Ramp(5, 0, 2)
	RequireSliceEqual(t, got, []int32{0, 2, 4, 6, 8})
}

func TestDeterministicIntsReproducible(t *testing.T) {
	a := DeterministicInts(42, 100, 64)
	b := DeterministicInts(42, 100, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	RequireSliceEqual(t, a, b)
	for i, v := range a {
		if v < -100 || v > 100 {
			t.Fatalf("a[%d] = %d out of range", i, v)
		}
	}
}

func TestConst(t *testing.T) {
	RequireSliceEqual(t, Const(-3, 4), []int32{-3, -3, -3, -3})
}

func TestPermutation(t *testing.T) {
	p := Permutation(7, 32)
	seen := make([]bool, 32)
	for _, i := range p {
		if seen[i] {
			t.Fatalf("index %d repeated", i)
		}
		seen[i] = true
	}
}
