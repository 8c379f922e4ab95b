package testutil

import (
	"fmt"
	"testing"
)

// Integer is the set of integer element types the helpers accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RequireSliceEqual fails t if got and want differ in length or in any element.
func RequireSliceEqual[T Integer](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// FirstMismatch returns the first index where a and b differ, or -1 if they
// are equal. Returns an error if the slices differ in length.
func FirstMismatch[T Integer](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return i, nil
		}
	}
	return -1, nil
}
