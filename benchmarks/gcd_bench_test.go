// Package benchmarks provides performance benchmarks for the GCD kernels.
package benchmarks

import (
	"testing"

	"github.com/comalice/euclidx/internal/kernel"
)

var sink int64

func BenchmarkGCDWorstCase(b *testing.B) {
	// Adjacent Fibonacci pair near the top of the int64 range.
	x, y := FibPair(90)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = kernel.GCD(x, y)
	}
}

func BenchmarkGCDRandom(b *testing.B) {
	pairs := RandomPairs(1024, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		sink = kernel.GCD(p[0], p[1])
	}
}

func BenchmarkBinaryGCDWorstCase(b *testing.B) {
	x, y := FibPair(90)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = kernel.BinaryGCD(x, y)
	}
}

func BenchmarkBinaryGCDRandom(b *testing.B) {
	pairs := RandomPairs(1024, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		sink = kernel.BinaryGCD(p[0], p[1])
	}
}

func BenchmarkExtGCD(b *testing.B) {
	x, y := FibPair(90)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, sink = kernel.ExtGCD(x, y)
	}
}

func BenchmarkGCDOracleSmall(b *testing.B) {
	// The literal oracle pairs; tiny operands, measures call overhead.
	for i := 0; i < b.N; i++ {
		sink = kernel.GCD(123456, 789012)
	}
}
