package kernel

// Fibonacci returns the n-th Fibonacci number with the 1-indexed convention
// Fibonacci(1) == Fibonacci(2) == 1. n < 1 returns 0. Values overflow int64
// past n = 92; callers wanting larger terms need a big-integer kernel.
func Fibonacci(n int64) int64 {
	if n < 1 {
		return 0
	}
	a, b := int64(0), int64(1)
	for i := int64(1); i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// Factorial returns n! with Factorial(0) == 1. n < 0 returns 0. Overflows
// int64 past n = 20.
func Factorial(n int64) int64 {
	if n < 0 {
		return 0
	}
	f := int64(1)
	for i := int64(2); i <= n; i++ {
		f *= i
	}
	return f
}

// TriangleSum returns the n-th triangle number, the sum 0 + 1 + ... + n.
// n < 0 returns 0.
func TriangleSum(n int64) int64 {
	if n < 0 {
		return 0
	}
	// One of n, n+1 is even, so the halved product is exact.
	return n * (n + 1) / 2
}
