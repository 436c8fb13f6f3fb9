package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerAllBuiltinSuitesPass(t *testing.T) {
	r := NewRunner(nil)
	for _, s := range BuiltinSuites() {
		sr, err := r.Run(s)
		require.NoError(t, err, "suite %q", s.Name)
		assert.True(t, sr.Passed(), "suite %q: %d failures", s.Name, sr.Failures)
		assert.Len(t, sr.Results, len(s.Cases))
		assert.Equal(t, s.Fingerprint(), sr.Fingerprint)
	}
}

func TestRunnerPreservesCaseOrder(t *testing.T) {
	sr, err := NewRunner(nil).Run(GCDSuite())
	require.NoError(t, err)
	got := make([]int64, 0, len(sr.Results))
	for i, res := range sr.Results {
		assert.Equal(t, i, res.Index)
		got = append(got, res.Got)
	}
	assert.Equal(t, []int64{0, 1, 1, 5, 6, 12, 28, 42}, got)
}

func TestRunWithAlternateKernel(t *testing.T) {
	// The same oracle must hold for the Stein implementation.
	sr, err := NewRunner(nil).RunWith(GCDSuite(), "gcd/binary")
	require.NoError(t, err)
	assert.Equal(t, "gcd/binary", sr.Kernel)
	assert.True(t, sr.Passed())
}

func TestRunnerUnknownKernel(t *testing.T) {
	s := GCDSuite()
	s.Kernel = "bogus"
	_, err := NewRunner(nil).Run(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKernel)
}

func TestRunnerArityMismatch(t *testing.T) {
	s := Suite{
		Name:   "bad-arity",
		Kernel: "gcd",
		Cases:  []Case{{Args: []int64{1, 2, 3}, Want: 1}},
	}
	_, err := NewRunner(nil).Run(s)
	assert.Error(t, err)
}

func TestRunnerCountsFailures(t *testing.T) {
	s := Suite{
		Name:   "wrong",
		Kernel: "gcd",
		Cases: []Case{
			{Args: []int64{54, 24}, Want: 6},
			{Args: []int64{54, 24}, Want: 7}, // deliberately wrong
			{Args: []int64{10, 5}, Want: 0},  // deliberately wrong
		},
	}
	sr, err := NewRunner(nil).Run(s)
	require.NoError(t, err)
	assert.Equal(t, 2, sr.Failures)
	assert.False(t, sr.Passed())
	assert.True(t, sr.Results[0].Pass)
	assert.False(t, sr.Results[1].Pass)
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Binary("gcd", func(a, b int64) int64 { return 0 })))
	assert.Error(t, r.Register(Binary("gcd", func(a, b int64) int64 { return 0 })), "duplicate name")
	assert.Error(t, r.Register(Kernel{Name: "", Arity: 1, Fn: func([]int64) int64 { return 0 }}))
	assert.Error(t, r.Register(Kernel{Name: "nil", Arity: 1}))
	assert.Error(t, r.Register(Kernel{Name: "zero", Arity: 0, Fn: func([]int64) int64 { return 0 }}))
}

func TestDefaultRegistryNames(t *testing.T) {
	names := DefaultRegistry().Names()
	assert.Equal(t, []string{"factorial", "fibonacci", "gcd", "gcd/binary", "lcm", "prime", "sum"}, names)
}
