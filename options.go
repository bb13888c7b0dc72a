package mathsheet

import (
	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
	"github.com/tsawler/mathsheet/sheet"
)

// Options holds configuration for worksheet generation.
type Options struct {
	seed   int64 // 0 draws a fresh seed
	mix    []problem.Spec
	layout sheet.Layout

	// Output
	dir       string
	compiler  latex.Compiler
	html      bool
	answerKey bool
}

// defaultOptions returns the default generation options.
func defaultOptions() Options {
	return Options{
		seed:      0,
		mix:       problem.DefaultMix(),
		layout:    sheet.DefaultLayout(),
		dir:       ".",
		compiler:  latex.DefaultCompiler(),
		html:      false,
		answerKey: true,
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := o

	// Deep copy mix slice
	if o.mix != nil {
		newOpts.mix = make([]problem.Spec, len(o.mix))
		copy(newOpts.mix, o.mix)
	}

	return newOpts
}
