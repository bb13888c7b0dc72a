package latex

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Compiler renders a .tex file into a viewable document
type Compiler interface {
	Compile(ctx context.Context, texPath string) error
}

// CompilerFunc adapts a function to the Compiler interface
type CompilerFunc func(ctx context.Context, texPath string) error

func (f CompilerFunc) Compile(ctx context.Context, texPath string) error {
	return f(ctx, texPath)
}

// ExecCompiler runs an external LaTeX program against the file.
// The output lands next to the input file.
type ExecCompiler struct {
	Command string
	Args    []string // Extra arguments placed before the file name
}

// DefaultCompiler returns a pdflatex compiler in non-interactive mode
func DefaultCompiler() *ExecCompiler {
	return &ExecCompiler{
		Command: "pdflatex",
		Args:    []string{"-interaction=nonstopmode"},
	}
}

// Compile runs the command in texPath's directory. A nil *ExecCompiler
// compiles nothing.
func (c *ExecCompiler) Compile(ctx context.Context, texPath string) error {
	if c == nil {
		return nil
	}
	if _, err := exec.LookPath(c.Command); err != nil {
		return fmt.Errorf("%s not found: %w", c.Command, err)
	}

	args := append(append([]string(nil), c.Args...), filepath.Base(texPath))
	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.Dir = filepath.Dir(texPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", c.Command, err, msg)
		}
		return fmt.Errorf("%s failed: %w", c.Command, err)
	}
	return nil
}

// PDFPath returns the path a compiler writes for texPath
func PDFPath(texPath string) string {
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
}
