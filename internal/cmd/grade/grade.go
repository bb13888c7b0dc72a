// Package grade implements the grade command.
package grade

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	sheetgrade "github.com/tsawler/mathsheet/grade"
	"github.com/tsawler/mathsheet/internal/config"
	"github.com/tsawler/mathsheet/internal/logger"
	"github.com/tsawler/mathsheet/ocr"
)

// Config holds grade command configuration.
type Config struct {
	KeyPath  string
	ScanPath string
	OCRLang  string
	LogMode  string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	e, err := config.LoadEnv(environ)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	fs.StringVar(&cfg.KeyPath, "key", "", "answer key (.key.yaml) or the sheet's .tex file")
	fs.StringVar(&cfg.ScanPath, "scan", "", "scanned answer sheet (png, jpeg, tiff, bmp)")
	fs.StringVar(&cfg.OCRLang, "ocr-lang", "eng", "tesseract language")
	fs.StringVar(&cfg.LogMode, "log", e.LogMode, "log mode (dev, prod)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.KeyPath == "" || cfg.ScanPath == "" {
		return Config{}, errors.New("both -key and -scan are required")
	}
	return cfg, nil
}

// Recognizer is an OCR engine that can be released.
type Recognizer interface {
	sheetgrade.Recognizer
	Close() error
}

// NewRecognizer opens the OCR engine used by Run. Tests replace it.
var NewRecognizer = func(lang string) (Recognizer, error) {
	client, err := ocr.NewAnswerReader()
	if err != nil {
		return nil, err
	}
	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Run executes the grade command.
func Run(ctx context.Context, cfg Config, log *logger.Logger, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}

	rec, err := NewRecognizer(cfg.OCRLang)
	if err != nil {
		return fmt.Errorf("open OCR engine: %w", err)
	}
	defer rec.Close()

	report, err := sheetgrade.Scan(ctx, cfg.KeyPath, cfg.ScanPath, rec)
	if err != nil {
		return err
	}
	log.Info("sheet graded", "sheet", report.Name, "score", report.Score(), "missing", len(report.Missing()))

	for _, res := range report.Results {
		mark := "ok"
		switch {
		case res.Given == "":
			mark = "missing"
		case !res.Correct:
			mark = "wrong"
		}
		fmt.Fprintf(out, "%2d. %-8s expected %s got %s\n", res.Number, mark, res.Expected, res.Given)
	}
	fmt.Fprintf(out, "Score: %s\n", report.Score())
	return nil
}
