package testutil

import (
	"math/big"

	"github.com/comalice/euclidx"
)

// GCDAdapter provides a common interface over GCD implementations so the
// same oracle suite can be run against each of them.
type GCDAdapter interface {
	Name() string
	GCD(a, b int64) int64
}

// FuncAdapter wraps a plain GCD function.
type FuncAdapter struct {
	name string
	fn   func(a, b int64) int64
}

// NewFuncAdapter creates an adapter around fn.
func NewFuncAdapter(name string, fn func(a, b int64) int64) *FuncAdapter {
	return &FuncAdapter{name: name, fn: fn}
}

func (a *FuncAdapter) Name() string { return a.name }

func (a *FuncAdapter) GCD(x, y int64) int64 { return a.fn(x, y) }

// Implementations returns an adapter for every shipped GCD kernel.
func Implementations() []GCDAdapter {
	return []GCDAdapter{
		NewFuncAdapter("euclid", euclidx.GCD),
		NewFuncAdapter("stein", euclidx.BinaryGCD),
	}
}

// ReferenceGCD computes GCD through math/big, an independent oracle for
// property tests. Slower and allocating, which is why it lives here and not
// in the kernel tier. Callers keep inputs off math.MinInt64; a 2^63 result
// does not fit the return type.
func ReferenceGCD(a, b int64) int64 {
	var z big.Int
	z.GCD(nil, nil, new(big.Int).Abs(big.NewInt(a)), new(big.Int).Abs(big.NewInt(b)))
	return z.Int64()
}
