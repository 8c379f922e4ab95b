package testutil

import "math/rand"

// Ramp returns s[i] = start + i*step.
func Ramp(length int, start, step int32) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = start + int32(i)*step
	}
	return out
}

// DeterministicInts returns pseudo-random values in [-bound, bound] with a
// fixed seed for reproducibility.
func DeterministicInts(seed int64, bound int32, length int) []int32 {
	out := make([]int32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int31n(2*bound+1) - bound
	}
	return out
}

// Const returns a slice of length n filled with value.
func Const(value int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Permutation returns a deterministic permutation of [0, n).
func Permutation(seed int64, n int) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
