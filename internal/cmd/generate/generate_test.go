package generate

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func parse(t *testing.T, args []string, environ map[string]string) Config {
	t.Helper()
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, args, environ)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := parse(t, nil, map[string]string{})
	if cfg.Name != "example_worksheet" || cfg.Count != 20 || cfg.Compiler != "pdflatex" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Language != language.English {
		t.Errorf("language = %v, want en", cfg.Language)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	cfg := parse(t, []string{"-name", "flagged", "-seed", "9", "-lang", "fr"}, map[string]string{
		"MATHSHEET_NAME": "from-env",
		"MATHSHEET_SEED": "5",
		"MATHSHEET_HTML": "true",
	})
	if cfg.Name != "flagged" || cfg.Seed != 9 {
		t.Errorf("flags did not override env: %+v", cfg)
	}
	if !cfg.HTML {
		t.Error("expected HTML from env")
	}
	if cfg.Language != language.French {
		t.Errorf("language = %v, want fr", cfg.Language)
	}
}

func TestParseConfigEmptyCompilerEnv(t *testing.T) {
	cfg := parse(t, nil, map[string]string{"MATHSHEET_COMPILER": ""})
	if cfg.Compiler != "" {
		t.Errorf("Compiler = %q, want empty", cfg.Compiler)
	}

	cfg = parse(t, []string{"-compiler", "lualatex"}, map[string]string{"MATHSHEET_COMPILER": ""})
	if cfg.Compiler != "lualatex" {
		t.Errorf("Compiler = %q, want flag value", cfg.Compiler)
	}
}

func TestParseConfigBadLanguage(t *testing.T) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-lang", "!!"}, map[string]string{}); err == nil {
		t.Error("expected error for invalid language")
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{List: true}, nil, &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for _, want := range []string{"int-mul", "dec-div", "Default mix"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestRunWritesSheet(t *testing.T) {
	dir := t.TempDir()
	mixPath := filepath.Join(dir, "mix.yaml")
	mix := "- kind: int-mul\n  low: 1\n  high: 13\n"
	if err := os.WriteFile(mixPath, []byte(mix), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := parse(t, []string{"-name", "times", "-dir", dir, "-mix", mixPath, "-compiler", "", "-seed", "11", "-count", "12"}, map[string]string{})
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	texPath := filepath.Join(dir, "times.tex")
	if strings.TrimSpace(out.String()) != texPath {
		t.Errorf("output = %q, want %q", out.String(), texPath)
	}
	data, err := os.ReadFile(texPath)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), `\times`); n != 12 {
		t.Errorf("found %d multiplication prompts, want 12", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "times.key.yaml")); err != nil {
		t.Errorf("answer key missing: %v", err)
	}
}

func TestRunBadMixFile(t *testing.T) {
	cfg := Config{Name: "x", Dir: t.TempDir(), MixFile: "/nonexistent/mix.yaml", Count: 20, Language: language.English}
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Error("expected error for missing mix file")
	}
}
