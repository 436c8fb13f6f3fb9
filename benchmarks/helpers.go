// Package benchmarks provides shared helpers for kernel benchmark tests.
package benchmarks

import "math/rand"

// FibPair returns the k-th adjacent Fibonacci pair (F(k), F(k+1)). Adjacent
// Fibonacci numbers are the Euclidean algorithm's worst case (Lame's bound):
// every division step yields quotient 1. k must stay <= 91 to fit int64.
func FibPair(k int) (int64, int64) {
	a, b := int64(0), int64(1)
	for i := 0; i < k; i++ {
		a, b = b, a+b
	}
	return a, b
}

// RandomPairs generates n deterministic pseudo-random int64 pairs below 2^62.
func RandomPairs(n int, seed int64) [][2]int64 {
	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int64, n)
	for i := range pairs {
		pairs[i] = [2]int64{rng.Int63n(1 << 62), rng.Int63n(1 << 62)}
	}
	return pairs
}
