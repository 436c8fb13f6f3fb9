package conformance

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one oracle check: the kernel is applied to Args and must return Want.
type Case struct {
	Args []int64 `json:"args" yaml:"args"`
	Want int64   `json:"want" yaml:"want"`
}

// Suite is an ordered oracle bound to a kernel by name. Case order is part of
// the oracle: the lines report format emits results in this exact order.
type Suite struct {
	Name   string `json:"name" yaml:"name"`
	Kernel string `json:"kernel" yaml:"kernel"`
	Cases  []Case `json:"cases" yaml:"cases"`
}

// Validate checks structural invariants. Kernel resolution and arity are
// checked by the Runner, which knows the registry.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return errors.New("suite missing name")
	}
	if s.Kernel == "" {
		return fmt.Errorf("suite %q missing kernel", s.Name)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}
	for i, c := range s.Cases {
		if len(c.Args) == 0 {
			return fmt.Errorf("suite %q case %d has no args", s.Name, i)
		}
	}
	return nil
}

// Fingerprint computes a deterministic version for the suite:
// SHA256 of the canonical JSON encoding, truncated to 8 bytes.
// Equal suites fingerprint equally across runs and platforms.
func (s *Suite) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		// Unreachable for this shape.
		return "invalid"
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}

// LoadSuite reads a YAML suite file and validates it.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read %s: %w", path, err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// Save writes the suite as YAML.
func (s *Suite) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

//
// Builtin suites. These mirror the upstream harness oracles literally; the
// expected values are the oracle, not derived from the kernels.
//

// GCDSuite is the eight-case GCD oracle. Its lines output is exactly
// "0 1 1 5 6 12 28 42", one value per line.
func GCDSuite() Suite {
	return Suite{
		Name:   "gcd",
		Kernel: "gcd",
		Cases: []Case{
			{Args: []int64{0, 0}, Want: 0},
			{Args: []int64{17, 31}, Want: 1},
			{Args: []int64{37, 11}, Want: 1},
			{Args: []int64{10, 5}, Want: 5},
			{Args: []int64{54, 24}, Want: 6},
			{Args: []int64{123456, 789012}, Want: 12},
			{Args: []int64{0, 28}, Want: 28},
			{Args: []int64{42, 42}, Want: 42},
		},
	}
}

// FibonacciSuite covers fib(1..10).
func FibonacciSuite() Suite {
	return rangeSuite("fibonacci", "fibonacci", 1,
		[]int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55})
}

// FactorialSuite covers 0! through 9!.
func FactorialSuite() Suite {
	return rangeSuite("factorial", "factorial", 0,
		[]int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880})
}

// TriangleSumSuite covers the triangle numbers T(0..9).
func TriangleSumSuite() Suite {
	return rangeSuite("sum", "sum", 0,
		[]int64{0, 1, 3, 6, 10, 15, 21, 28, 36, 45})
}

// PrimeSuite covers the first 25 primes.
func PrimeSuite() Suite {
	return rangeSuite("prime", "prime", 1, []int64{
		2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
		43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
	})
}

// BuiltinSuites returns all shipped suites in harness order, GCD first.
func BuiltinSuites() []Suite {
	return []Suite{
		GCDSuite(),
		FibonacciSuite(),
		FactorialSuite(),
		TriangleSumSuite(),
		PrimeSuite(),
	}
}

// BuiltinSuite returns the shipped suite with the given name.
func BuiltinSuite(name string) (Suite, bool) {
	for _, s := range BuiltinSuites() {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

func rangeSuite(name, kernel string, first int64, want []int64) Suite {
	s := Suite{Name: name, Kernel: kernel, Cases: make([]Case, 0, len(want))}
	for i, w := range want {
		s.Cases = append(s.Cases, Case{Args: []int64{first + int64(i)}, Want: w})
	}
	return s
}
