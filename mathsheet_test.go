package mathsheet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/mathsheet/answerkey"
	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
)

type recordingCompiler struct {
	paths []string
	err   error
}

func (c *recordingCompiler) Compile(_ context.Context, texPath string) error {
	c.paths = append(c.paths, texPath)
	return c.err
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	compiler := &recordingCompiler{}

	res, warnings, err := New("week1").
		Seed(42).
		Dir(dir).
		Compiler(compiler).
		HTML(true).
		Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	wantTex := filepath.Join(dir, "week1.tex")
	if res.TexPath != wantTex || res.PDFPath != filepath.Join(dir, "week1.pdf") {
		t.Errorf("paths = %q, %q", res.TexPath, res.PDFPath)
	}
	if len(compiler.paths) != 1 || compiler.paths[0] != wantTex {
		t.Errorf("compiled %v, want [%s]", compiler.paths, wantTex)
	}
	if res.Seed != 42 || len(res.Problems) != 20 {
		t.Errorf("seed %d, %d problems", res.Seed, len(res.Problems))
	}

	for _, path := range []string{res.TexPath, res.HTMLPath, res.KeyPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}

	key, err := answerkey.Load(res.KeyPath)
	if err != nil {
		t.Fatalf("loading key: %v", err)
	}
	if key.Seed != 42 || len(key.Problems) != 20 || key.Problems[0] != res.Problems[0] {
		t.Errorf("key = %+v", key)
	}

	tex, err := os.ReadFile(res.TexPath)
	if err != nil {
		t.Fatal(err)
	}
	first := "1. $" + res.Problems[0].Prompt + "$"
	if !strings.Contains(string(tex), first+"\n") {
		t.Errorf("tex missing first prompt %q", first)
	}
}

func TestExportSeedReproducible(t *testing.T) {
	build := func() []problem.Problem {
		s, _, err := New("x").Seed(7).Build()
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		return s.Problems
	}
	a, b := build(), build()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("problem %d differs: %v vs %v", i+1, a[i], b[i])
		}
	}
}

func TestExportCompilerWarning(t *testing.T) {
	compiler := &recordingCompiler{err: errors.New("pdflatex exited 1")}
	_, warnings, err := New("week1").
		Dir(t.TempDir()).
		Compiler(compiler).
		AnswerKey(false).
		Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", warnings)
	}
	if !strings.Contains(latex.FormatWarnings(warnings), "exited 1") {
		t.Errorf("warning = %q", latex.FormatWarnings(warnings))
	}
}

func TestExportWithoutCompiler(t *testing.T) {
	res, warnings, err := New("plain").
		Dir(t.TempDir()).
		Compiler(nil).
		AnswerKey(false).
		Export(context.Background())
	if err != nil || len(warnings) != 0 {
		t.Fatalf("Export() = %v, %v", warnings, err)
	}
	if res.KeyPath != "" || res.HTMLPath != "" {
		t.Errorf("unexpected outputs: %+v", res)
	}
}

func TestExportTypedNilCompiler(t *testing.T) {
	var compiler *latex.ExecCompiler
	res, warnings, err := New("typed-nil").
		Dir(t.TempDir()).
		Compiler(compiler).
		Export(context.Background())
	if err != nil || len(warnings) != 0 {
		t.Fatalf("Export() = %v, %v", warnings, err)
	}
	if _, err := os.Stat(res.TexPath); err != nil {
		t.Errorf("tex file not written: %v", err)
	}
}

func TestBuilderSingleGeneratorMix(t *testing.T) {
	s, _, err := New("mul").
		Seed(3).
		Mix(problem.Spec{Kind: problem.KindIntMultiplication, Low: 1, High: 1000}).
		Count(8).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(s.Problems) != 8 {
		t.Fatalf("%d problems, want 8", len(s.Problems))
	}
	for _, p := range s.Problems {
		if !strings.Contains(p.Prompt, `\times`) {
			t.Errorf("prompt %q is not a multiplication", p.Prompt)
		}
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{"empty name", New("")},
		{"empty mix", New("x").Mix()},
		{"bad spec", New("x").Mix(problem.Spec{Kind: problem.KindIntDivision, Low: 1, High: 5})},
		{"zero count", New("x").Count(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.builder.Export(context.Background()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuilderIsImmutable(t *testing.T) {
	base := New("x").Seed(1)
	_ = base.Count(0)
	if _, _, err := base.Build(); err != nil {
		t.Errorf("derived builder error leaked into base: %v", err)
	}
}
