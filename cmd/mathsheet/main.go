// Command mathsheet generates randomized math practice worksheets and grades
// scanned, filled-in copies.
//
//	mathsheet [generate] [-name week1] [-seed 42] [-mix mix.yaml] [-html]
//	mathsheet grade -key week1.key.yaml -scan week1.tiff
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/mathsheet/internal/cmd/generate"
	"github.com/tsawler/mathsheet/internal/cmd/grade"
	"github.com/tsawler/mathsheet/internal/config"
	"github.com/tsawler/mathsheet/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	command := "generate"
	if len(args) > 0 && (args[0] == "generate" || args[0] == "grade") {
		command, args = args[0], args[1:]
	}
	environ := config.Environ()

	switch command {
	case "grade":
		cfg, err := grade.ParseConfig(flag.NewFlagSet("grade", flag.ExitOnError), args, environ)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return err
		}
		defer log.Sync()
		return grade.Run(ctx, cfg, log, os.Stdout)

	default:
		cfg, err := generate.ParseConfig(flag.NewFlagSet("generate", flag.ExitOnError), args, environ)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return err
		}
		defer log.Sync()
		return generate.Run(ctx, cfg, log, os.Stdout)
	}
}
