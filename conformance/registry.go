package conformance

import (
	"fmt"
	"sort"

	"github.com/comalice/euclidx/internal/kernel"
)

// Kernel adapts a pure int64 function for suite execution. Arity is enforced
// by the Runner before Fn is called; Fn may assume len(args) == Arity.
type Kernel struct {
	Name  string
	Arity int
	Fn    func(args []int64) int64
}

// Unary wraps a one-argument kernel function.
func Unary(name string, fn func(n int64) int64) Kernel {
	return Kernel{Name: name, Arity: 1, Fn: func(args []int64) int64 {
		return fn(args[0])
	}}
}

// Binary wraps a two-argument kernel function.
func Binary(name string, fn func(a, b int64) int64) Kernel {
	return Kernel{Name: name, Arity: 2, Fn: func(args []int64) int64 {
		return fn(args[0], args[1])
	}}
}

// Registry maps kernel names to implementations. The zero value is not
// usable; construct with NewRegistry or DefaultRegistry.
type Registry struct {
	kernels map[string]Kernel
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kernels: map[string]Kernel{}}
}

// DefaultRegistry returns a registry with every shipped kernel registered.
// "gcd/binary" is the Stein implementation under a distinct name so suites
// can cross-check it against "gcd".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, k := range []Kernel{
		Binary("gcd", kernel.GCD),
		Binary("gcd/binary", kernel.BinaryGCD),
		Binary("lcm", kernel.LCM),
		Unary("fibonacci", kernel.Fibonacci),
		Unary("factorial", kernel.Factorial),
		Unary("sum", kernel.TriangleSum),
		Unary("prime", kernel.NthPrime),
	} {
		// Registration of the fixed set cannot collide.
		_ = r.Register(k)
	}
	return r
}

// Register adds a kernel. Duplicate names and malformed kernels are rejected.
func (r *Registry) Register(k Kernel) error {
	if k.Name == "" {
		return fmt.Errorf("kernel missing name")
	}
	if k.Fn == nil {
		return fmt.Errorf("kernel %q has nil Fn", k.Name)
	}
	if k.Arity < 1 {
		return fmt.Errorf("kernel %q has arity %d", k.Name, k.Arity)
	}
	if _, exists := r.kernels[k.Name]; exists {
		return fmt.Errorf("duplicate kernel %q", k.Name)
	}
	r.kernels[k.Name] = k
	return nil
}

// Lookup returns the kernel registered under name.
func (r *Registry) Lookup(name string) (Kernel, bool) {
	k, ok := r.kernels[name]
	return k, ok
}

// Names returns registered kernel names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kernels))
	for n := range r.kernels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
