package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/comalice/euclidx/conformance"
)

const (
	configEnv         = "EUCLIDX_CONFIG"
	defaultConfigPath = "euclidx.toml"
)

// config is the harness config.toml mapping. The harness takes no arguments;
// everything adjustable lives here.
type config struct {
	// Builtin suite names to run, in order. Empty means just "gcd", the
	// upstream oracle.
	Suites []string `toml:"suites"`
	// Extra suites loaded from YAML files, run after the builtins.
	SuiteFiles []string `toml:"suite_files"`
	// Per-suite kernel overrides, e.g. gcd = "gcd/binary".
	Kernels map[string]string `toml:"kernels"`
	// Output format: lines, table or json.
	Format string `toml:"format"`
	// zerolog level for stderr logging.
	LogLevel string `toml:"log_level"`
}

func defaultHarnessConfig() config {
	return config{
		Suites:   []string{"gcd"},
		Format:   conformance.FormatLines,
		LogLevel: "warn",
	}
}

// resolveConfig loads the TOML file named by EUCLIDX_CONFIG, else
// ./euclidx.toml if present, else compiled defaults. An env-named file that
// does not exist is an error; a missing default file is not.
func resolveConfig() (config, error) {
	if path := os.Getenv(configEnv); path != "" {
		return loadHarnessConfig(path)
	}
	cfg, err := loadHarnessConfig(defaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultHarnessConfig(), nil
	}
	return cfg, err
}

func loadHarnessConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg := defaultHarnessConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *config) {
	if len(cfg.Suites) == 0 && len(cfg.SuiteFiles) == 0 {
		cfg.Suites = []string{"gcd"}
	}
	if cfg.Format == "" {
		cfg.Format = conformance.FormatLines
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

func (c config) validate() error {
	formatOK := false
	for _, f := range conformance.Formats() {
		if c.Format == f {
			formatOK = true
		}
	}
	if !formatOK {
		return fmt.Errorf("config format %q: want one of %s",
			c.Format, strings.Join(conformance.Formats(), ", "))
	}
	for _, name := range c.Suites {
		if _, ok := conformance.BuiltinSuite(name); !ok {
			return fmt.Errorf("config names unknown builtin suite %q", name)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// loadSuites assembles the run list: builtins first, then YAML files.
func (c config) loadSuites() ([]conformance.Suite, error) {
	suites := make([]conformance.Suite, 0, len(c.Suites)+len(c.SuiteFiles))
	for _, name := range c.Suites {
		s, _ := conformance.BuiltinSuite(name) // validated already
		suites = append(suites, s)
	}
	for _, path := range c.SuiteFiles {
		s, err := conformance.LoadSuite(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}
