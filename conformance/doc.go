// Package conformance runs integer arithmetic kernels against fixed oracle
// suites and reports the outcome.
//
// A Suite is an ordered list of cases (argument vector, expected value)
// bound to a kernel name. Suites can be built in Go, shipped as builtins
// mirroring the upstream harness oracles, or loaded from YAML files. A
// Runner resolves the kernel through a Registry, executes every case in
// order and produces one Result per case. Reports render as raw output
// lines (one decimal result per line, the harness wire format), as a table,
// or as JSON.
package conformance
