// Package euclidx provides pure integer arithmetic kernels over int64 —
// greatest common divisor at the core — and is the facade over the kernel
// tier in internal/kernel. The conformance package runs these kernels
// against fixed oracle suites.
package euclidx

import "github.com/comalice/euclidx/internal/kernel"

// GCD returns the greatest common divisor of a and b per the iterative
// Euclidean algorithm. The result is non-negative and divides both inputs;
// GCD(0, 0) == 0, GCD(a, 0) == |a|, GCD(a, a) == |a|, and
// GCD(a, b) == GCD(b, a). Negative inputs are normalized, with the single
// documented exception that a mathematical result of 2^63 (only reachable
// through math.MinInt64) is returned as math.MinInt64.
func GCD(a, b int64) int64 {
	return kernel.GCD(a, b)
}

// BinaryGCD computes the same function as GCD with Stein's shift-based
// algorithm. It exists as an independent implementation for cross-checking.
func BinaryGCD(a, b int64) int64 {
	return kernel.BinaryGCD(a, b)
}

// ExtGCD returns x, y and d = GCD(a, b) satisfying a*x + b*y == d.
func ExtGCD(a, b int64) (x, y, d int64) {
	return kernel.ExtGCD(a, b)
}

// LCM returns the non-negative least common multiple, with LCM(x, 0) == 0.
func LCM(a, b int64) int64 {
	return kernel.LCM(a, b)
}

// Fibonacci returns the n-th Fibonacci number, 1-indexed (F(1) == F(2) == 1).
func Fibonacci(n int64) int64 {
	return kernel.Fibonacci(n)
}

// Factorial returns n!, with Factorial(0) == 1.
func Factorial(n int64) int64 {
	return kernel.Factorial(n)
}

// TriangleSum returns 0 + 1 + ... + n.
func TriangleSum(n int64) int64 {
	return kernel.TriangleSum(n)
}

// IsPrime reports whether n is prime.
func IsPrime(n int64) bool {
	return kernel.IsPrime(n)
}

// NthPrime returns the n-th prime, 1-indexed (NthPrime(1) == 2).
func NthPrime(n int64) int64 {
	return kernel.NthPrime(n)
}
