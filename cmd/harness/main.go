// The harness runs kernel conformance suites and prints the results to
// stdout. With no config present it reproduces the upstream oracle run:
// the eight GCD cases, one decimal result per line, exit code 0. Logs go to
// stderr so the result stream stays clean.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/comalice/euclidx/conformance"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := initLogger("harness")

	cfg, err := resolveConfig()
	if err != nil {
		logger.Error().Err(err).Msg("config error")
		return 1
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	suites, err := cfg.loadSuites()
	if err != nil {
		logger.Error().Err(err).Msg("suite load error")
		return 1
	}

	runner := conformance.NewRunner(nil)
	results := make([]conformance.SuiteResult, 0, len(suites))
	failures := 0
	for _, s := range suites {
		kernelName := s.Kernel
		if override, ok := cfg.Kernels[s.Name]; ok {
			kernelName = override
		}
		sr, err := runner.RunWith(s, kernelName)
		if err != nil {
			logger.Error().Err(err).Str("suite", s.Name).Msg("suite run error")
			return 1
		}
		logger.Info().
			Str("suite", sr.Suite).
			Str("kernel", sr.Kernel).
			Str("fingerprint", sr.Fingerprint).
			Int("cases", len(sr.Results)).
			Int("failures", sr.Failures).
			Msg("suite complete")
		failures += sr.Failures
		results = append(results, sr)
	}

	if err := conformance.Write(os.Stdout, cfg.Format, results...); err != nil {
		logger.Error().Err(err).Msg("report error")
		return 1
	}
	if failures > 0 {
		logger.Error().Int("failures", failures).Msg("conformance failures")
		return 1
	}
	return 0
}

func initLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}
