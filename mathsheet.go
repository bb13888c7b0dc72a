// Package mathsheet provides a fluent API for generating randomized math
// practice worksheets as LaTeX documents.
//
// Basic usage:
//
//	result, warnings, err := mathsheet.New("example_worksheet").Export(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", latex.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := mathsheet.New("week1").
//	    Seed(42).
//	    Mix(problem.Spec{Kind: problem.KindIntMultiplication, Low: 1, High: 13}).
//	    Count(24).
//	    HTML(true).
//	    Export(ctx)
//
// For finer control over the markup, the lower-level sheet and latex
// packages are also available.
package mathsheet

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tsawler/mathsheet/answerkey"
	"github.com/tsawler/mathsheet/htmldoc"
	"github.com/tsawler/mathsheet/internal/random"
	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
	"github.com/tsawler/mathsheet/sheet"
)

// Builder configures a worksheet. Each configuration method returns a new
// Builder, so a partially configured Builder can be reused.
type Builder struct {
	name    string
	options Options

	// Accumulated error (fail-fast)
	err error
}

// Result describes the files written by Export
type Result struct {
	TexPath  string
	PDFPath  string // Written by the compiler; may not exist if it failed
	HTMLPath string // Empty unless HTML output was enabled
	KeyPath  string // Empty unless the answer key was enabled
	Seed     int64
	Problems []problem.Problem
}

// New starts a worksheet named name. The .tex file is written to
// <dir>/<name>.tex.
func New(name string) *Builder {
	b := &Builder{name: name, options: defaultOptions()}
	if name == "" {
		b.err = errors.New("worksheet name is empty")
	}
	return b
}

func (b *Builder) clone() *Builder {
	return &Builder{
		name:    b.name,
		options: b.options.clone(),
		err:     b.err,
	}
}

// Seed fixes the random seed. 0 draws a fresh seed.
func (b *Builder) Seed(seed int64) *Builder {
	nb := b.clone()
	nb.options.seed = seed
	return nb
}

// Mix replaces the problem mix. Each spec is validated immediately.
func (b *Builder) Mix(specs ...problem.Spec) *Builder {
	nb := b.clone()
	if len(specs) == 0 {
		nb.setErr(errors.New("empty problem mix"))
		return nb
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			nb.setErr(err)
			return nb
		}
	}
	nb.options.mix = append([]problem.Spec(nil), specs...)
	return nb
}

// Count sets the number of problems
func (b *Builder) Count(n int) *Builder {
	nb := b.clone()
	if n < 1 {
		nb.setErr(fmt.Errorf("problem count must be positive, got %d", n))
		return nb
	}
	nb.options.layout.Count = n
	return nb
}

// Layout replaces the sheet layout. The count set by Count is overwritten.
func (b *Builder) Layout(layout sheet.Layout) *Builder {
	nb := b.clone()
	if layout.Columns < 1 {
		nb.setErr(fmt.Errorf("column count must be positive, got %d", layout.Columns))
		return nb
	}
	nb.options.layout = layout
	return nb
}

// Dir sets the output directory
func (b *Builder) Dir(dir string) *Builder {
	nb := b.clone()
	nb.options.dir = dir
	return nb
}

// Compiler sets the LaTeX compiler. nil, including a nil *latex.ExecCompiler,
// writes the .tex file only.
func (b *Builder) Compiler(c latex.Compiler) *Builder {
	nb := b.clone()
	nb.options.compiler = c
	return nb
}

// HTML enables the HTML preview, <name>.html
func (b *Builder) HTML(enabled bool) *Builder {
	nb := b.clone()
	nb.options.html = enabled
	return nb
}

// AnswerKey controls writing <name>.key.yaml for grading. Enabled by default.
func (b *Builder) AnswerKey(enabled bool) *Builder {
	nb := b.clone()
	nb.options.answerKey = enabled
	return nb
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build generates the sheet without writing anything. It returns the seed used.
func (b *Builder) Build() (*sheet.Sheet, int64, error) {
	if b.err != nil {
		return nil, 0, b.err
	}
	r, seed, err := random.Source(b.options.seed)
	if err != nil {
		return nil, 0, err
	}
	gen, err := problem.BuildMix(r, b.options.mix)
	if err != nil {
		return nil, 0, err
	}
	return sheet.Build(gen, b.options.layout), seed, nil
}

// Export generates the sheet and writes its files. Compiler failures are
// returned as warnings; everything else is an error.
func (b *Builder) Export(ctx context.Context) (Result, []latex.Warning, error) {
	s, seed, err := b.Build()
	if err != nil {
		return Result{}, nil, err
	}

	base := filepath.Join(b.options.dir, b.name)
	s.Document.SetCompiler(b.options.compiler)
	warnings, err := s.Document.Export(ctx, base)
	if err != nil {
		return Result{}, warnings, err
	}

	res := Result{
		TexPath:  base + ".tex",
		PDFPath:  latex.PDFPath(base + ".tex"),
		Seed:     seed,
		Problems: s.Problems,
	}

	if b.options.answerKey {
		res.KeyPath = answerkey.Path(base)
		key := &answerkey.Key{Name: b.name, Seed: seed, Mix: b.options.mix, Problems: s.Problems}
		if err := answerkey.Save(res.KeyPath, key); err != nil {
			return res, warnings, err
		}
	}

	if b.options.html {
		res.HTMLPath = base + ".html"
		page := htmldoc.Page{
			Title:        b.options.layout.Title,
			Instructions: b.options.layout.Instructions,
			Columns:      b.options.layout.Columns,
			Problems:     s.Problems,
			ShowAnswers:  true,
		}
		if err := htmldoc.WriteFile(res.HTMLPath, page); err != nil {
			return res, warnings, err
		}
	}

	return res, warnings, nil
}
