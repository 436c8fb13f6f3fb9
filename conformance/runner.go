package conformance

import (
	"errors"
	"fmt"
)

// ErrUnknownKernel is returned when a suite names a kernel the registry
// does not hold.
var ErrUnknownKernel = errors.New("unknown kernel")

// Result is the outcome of one case. Set once by the Runner, never updated.
type Result struct {
	Index int     `json:"index"`
	Args  []int64 `json:"args"`
	Want  int64   `json:"want"`
	Got   int64   `json:"got"`
	Pass  bool    `json:"pass"`
}

// SuiteResult is the outcome of one suite run, results in case order.
type SuiteResult struct {
	Suite       string   `json:"suite"`
	Kernel      string   `json:"kernel"`
	Fingerprint string   `json:"fingerprint"`
	Results     []Result `json:"results"`
	Failures    int      `json:"failures"`
}

// Passed reports whether every case passed.
func (sr *SuiteResult) Passed() bool {
	return sr.Failures == 0
}

// Runner executes suites against registered kernels, one case at a time, in
// order. Each invocation is independent; a Runner holds no mutable state and
// may be shared.
type Runner struct {
	reg *Registry
}

// NewRunner returns a Runner over reg. A nil reg means DefaultRegistry.
func NewRunner(reg *Registry) *Runner {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Runner{reg: reg}
}

// Run executes every case of s against its kernel.
func (r *Runner) Run(s Suite) (SuiteResult, error) {
	return r.RunWith(s, s.Kernel)
}

// RunWith executes s against the named kernel instead of s.Kernel, so the
// same oracle can drive alternate implementations.
func (r *Runner) RunWith(s Suite, kernelName string) (SuiteResult, error) {
	if err := s.Validate(); err != nil {
		return SuiteResult{}, err
	}
	k, ok := r.reg.Lookup(kernelName)
	if !ok {
		return SuiteResult{}, fmt.Errorf("suite %q: %w %q", s.Name, ErrUnknownKernel, kernelName)
	}
	for i, c := range s.Cases {
		if len(c.Args) != k.Arity {
			return SuiteResult{}, fmt.Errorf("suite %q case %d: kernel %q wants %d args, got %d",
				s.Name, i, k.Name, k.Arity, len(c.Args))
		}
	}

	sr := SuiteResult{
		Suite:       s.Name,
		Kernel:      k.Name,
		Fingerprint: s.Fingerprint(),
		Results:     make([]Result, 0, len(s.Cases)),
	}
	for i, c := range s.Cases {
		got := k.Fn(c.Args)
		res := Result{Index: i, Args: c.Args, Want: c.Want, Got: got, Pass: got == c.Want}
		if !res.Pass {
			sr.Failures++
		}
		sr.Results = append(sr.Results, res)
	}
	return sr, nil
}
