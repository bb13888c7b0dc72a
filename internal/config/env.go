// Package config loads command configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Env holds the MATHSHEET_* environment settings. Command-line flags take
// precedence over these values.
type Env struct {
	Name     string `env:"NAME" envDefault:"example_worksheet"`
	Dir      string `env:"DIR" envDefault:"."`
	Seed     int64  `env:"SEED"`
	MixFile  string `env:"MIX_FILE"`
	Count    int    `env:"COUNT" envDefault:"20"`
	Compiler string `env:"COMPILER"` // Unset means DefaultCompiler; empty disables rendering
	HTML     bool   `env:"HTML"`
	Language string `env:"LANGUAGE" envDefault:"en"`
	LogMode  string `env:"LOG_MODE" envDefault:"dev"`
}

const (
	// Prefix is prepended to every variable name in Env.
	Prefix = "MATHSHEET_"

	// DefaultCompiler is used when MATHSHEET_COMPILER is not set.
	DefaultCompiler = "pdflatex"
)

// ParseEnvFrom loads configuration from the given variables instead of the
// process environment.
func ParseEnvFrom(target any, vars map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix, Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from vars. MATHSHEET_COMPILER falls back to
// DefaultCompiler only when it is absent, so setting it empty disables
// rendering.
func LoadEnv(vars map[string]string) (Env, error) {
	var e Env
	if err := ParseEnvFrom(&e, vars); err != nil {
		return Env{}, err
	}
	if _, ok := vars[Prefix+"COMPILER"]; !ok {
		e.Compiler = DefaultCompiler
	}
	return e, nil
}

// Environ returns the process environment as a map, for LoadEnv.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}
