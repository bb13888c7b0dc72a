// Package generate implements the generate command.
package generate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"

	"github.com/tsawler/mathsheet"
	"github.com/tsawler/mathsheet/internal/config"
	"github.com/tsawler/mathsheet/internal/logger"
	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
	"github.com/tsawler/mathsheet/sheet"
)

// Config holds generate command configuration.
type Config struct {
	Name     string
	Dir      string
	Seed     int64
	MixFile  string
	Count    int
	Compiler string
	HTML     bool
	Outlined bool
	Language language.Tag
	LogMode  string
	List     bool
}

// ParseConfig parses flags into a Config. Environment values provide the
// flag defaults.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	e, err := config.LoadEnv(environ)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}
	var lang string
	fs.StringVar(&cfg.Name, "name", e.Name, "worksheet name; output is <name>.tex")
	fs.StringVar(&cfg.Dir, "dir", e.Dir, "output directory")
	fs.Int64Var(&cfg.Seed, "seed", e.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.MixFile, "mix", e.MixFile, "YAML problem mix file (default: built-in mix)")
	fs.IntVar(&cfg.Count, "count", e.Count, "number of problems")
	fs.StringVar(&cfg.Compiler, "compiler", e.Compiler, "LaTeX compiler command (empty = write .tex only)")
	fs.BoolVar(&cfg.HTML, "html", e.HTML, "also write an HTML preview")
	fs.BoolVar(&cfg.Outlined, "outlined", false, "draw cell borders in the tables")
	fs.StringVar(&lang, "lang", e.Language, "document language (BCP 47 tag)")
	fs.StringVar(&cfg.LogMode, "log", e.LogMode, "log mode (dev, prod)")
	fs.BoolVar(&cfg.List, "list", false, "list problem kinds and the default mix")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return Config{}, fmt.Errorf("parse language %q: %w", lang, err)
	}
	cfg.Language = tag
	return cfg, nil
}

// Run executes the generate command.
func Run(ctx context.Context, cfg Config, log *logger.Logger, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}

	if cfg.List {
		fmt.Fprintln(out, "Problem kinds:")
		for _, k := range problem.Kinds() {
			fmt.Fprintf(out, "  %s\n", k)
		}
		fmt.Fprintln(out, "\nDefault mix:")
		for _, s := range problem.DefaultMix() {
			fmt.Fprintf(out, "  %s\n", s)
		}
		return nil
	}

	mix, err := loadMix(cfg.MixFile)
	if err != nil {
		return err
	}

	layout := sheet.DefaultLayout()
	layout.Outlined = cfg.Outlined
	layout.Language = cfg.Language

	var compiler latex.Compiler
	if cfg.Compiler != "" {
		c := latex.DefaultCompiler()
		c.Command = cfg.Compiler
		compiler = c
	}

	res, warnings, err := mathsheet.New(cfg.Name).
		Seed(cfg.Seed).
		Mix(mix...).
		Layout(layout).
		Count(cfg.Count).
		Dir(cfg.Dir).
		Compiler(compiler).
		HTML(cfg.HTML).
		Export(ctx)
	if err != nil {
		return err
	}

	log = log.With("sheet", cfg.Name, "seed", res.Seed)
	for _, w := range warnings {
		log.Warn("export warning", "stage", w.Stage, "path", w.Path, "error", w.Message)
	}
	log.Info("worksheet exported", "tex", res.TexPath, "key", res.KeyPath, "problems", len(res.Problems))
	if res.HTMLPath != "" {
		log.Debug("html preview written", "path", res.HTMLPath)
	}

	fmt.Fprintln(out, res.TexPath)
	if compiler != nil && len(warnings) == 0 {
		fmt.Fprintln(out, res.PDFPath)
	}
	return nil
}

func loadMix(path string) ([]problem.Spec, error) {
	if path == "" {
		return problem.DefaultMix(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mix file: %w", err)
	}
	defer f.Close()
	mix, err := problem.LoadMix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(mix) == 0 {
		return nil, errors.New(path + ": empty problem mix")
	}
	return mix, nil
}
