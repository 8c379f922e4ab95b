// Package parity multiplies integer vectors element-wise at even indices.
//
// For equal-length inputs a and b the result c has the same length and
//
//	c[i] = a[i] * b[i]   for even i
//	c[i] = 0             for odd i
//
// The selection depends only on the index parity, never on the element
// values. Multiplication wraps around on overflow like any fixed-width Go
// integer.
//
// # Block Operations
//
// MulEvenBlock writes into a caller-provided slice without allocating and is
// dispatched at runtime to the best kernel registered for the CPU (a scalar
// loop, or a strip-mined loop sized to the vector register width). Every
// kernel produces identical output; dispatch only changes iteration order.
//
// Allocating forms (MulEven, MulEvenFunc) report a length mismatch as
// ErrLengthMismatch. Block forms panic, like the rest of the block kernels.
package parity
