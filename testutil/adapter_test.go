package testutil

import (
	"math/rand"
	"testing"

	"github.com/comalice/euclidx/conformance"
)

// Every implementation must satisfy the same eight-case oracle.
func TestImplementationsAgainstOracle(t *testing.T) {
	suite := conformance.GCDSuite()
	for _, impl := range Implementations() {
		for i, c := range suite.Cases {
			if got := impl.GCD(c.Args[0], c.Args[1]); got != c.Want {
				t.Errorf("%s: case %d GCD(%d, %d) = %d, want %d",
					impl.Name(), i, c.Args[0], c.Args[1], got, c.Want)
			}
		}
	}
}

func TestImplementationsAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := rng.Int63n(1<<50) - rng.Int63n(1<<50)
		b := rng.Int63n(1<<50) - rng.Int63n(1<<50)
		want := ReferenceGCD(a, b)
		for _, impl := range Implementations() {
			if got := impl.GCD(a, b); got != want {
				t.Fatalf("%s: GCD(%d, %d) = %d, reference says %d", impl.Name(), a, b, got, want)
			}
		}
	}
}

func TestFuncAdapterName(t *testing.T) {
	a := NewFuncAdapter("custom", func(x, y int64) int64 { return 0 })
	if a.Name() != "custom" {
		t.Errorf("got %q want custom", a.Name())
	}
}
