package parity

// DemoLength is the vector length of the demonstration program.
const DemoLength = 16

// Demo returns the demonstration operands a[i] = i and b[i] = 2*i.
// A negative n yields empty operands.
func Demo(n int) (a, b []int32) {
	n = max(n, 0)
	a = make([]int32, n)
	b = make([]int32, n)
	for i := range n {
		a[i] = int32(i)
		b[i] = int32(2 * i)
	}
	return a, b
}

// Expected returns the closed-form result of MulEven on Demo(n):
// 2*i*i at even i, 0 at odd i. A negative n yields an empty slice.
func Expected(n int) []int32 {
	n = max(n, 0)
	c := make([]int32, n)
	for i := 0; i < n; i += 2 {
		c[i] = int32(2 * i * i)
	}
	return c
}
