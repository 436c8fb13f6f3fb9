package benchmarks

import (
	"testing"

	"github.com/comalice/euclidx/internal/kernel"
)

func BenchmarkFibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = kernel.Fibonacci(92)
	}
}

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = kernel.Factorial(20)
	}
}

func BenchmarkNthPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = kernel.NthPrime(25)
	}
}

func BenchmarkIsPrimeLarge(b *testing.B) {
	ok := false
	for i := 0; i < b.N; i++ {
		ok = kernel.IsPrime(99991)
	}
	if !ok {
		b.Fatal("99991 should be prime")
	}
}
