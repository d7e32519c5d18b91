// Package main implements a GameID generator for Nintendo DS ROM images.
// For every ROM file it prints "<game code> <JAMCRC>", the key used by cheat
// and compatibility databases.
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/retroenv/ndsgameid/internal/cli"
	"github.com/retroenv/ndsgameid/internal/config"
	"github.com/retroenv/ndsgameid/internal/detector"
	"github.com/retroenv/ndsgameid/internal/fileprocessor"
	"github.com/retroenv/ndsgameid/internal/gamecode"
	"github.com/retroenv/ndsgameid/internal/gameid"
	"github.com/retroenv/ndsgameid/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := app.Context()
	name := filepath.Base(os.Args[0])

	opts, err := cli.ParseGameIDFlags(name, os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stderr)
		} else {
			logger.Error(err.Error())
		}
		return fileprocessor.ExitUsage
	}

	logger := config.CreateLogger(opts.Flags)
	fileprocessor.PrintBanner(logger, opts, "ndsgameid", version, commit, date)

	extractor, err := createExtractor(opts)
	if err != nil {
		logger.Error("Unusable environment", log.Err(err))
		return fileprocessor.ExitFatal
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Error(err.Error())
		return fileprocessor.ExitUsage
	}

	job := fileprocessor.GameIDJob(gameid.New(extractor), detector.New(logger))
	processor := fileprocessor.New(logger, os.Stdout, job)
	if opts.Progress {
		processor.WithProgress(os.Stderr)
	}

	summary, err := processor.Process(ctx, files)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error("Processing aborted", log.Err(err))
		}
		return fileprocessor.ExitFatal
	}
	return summary.ExitCode()
}

// createExtractor returns the game code extractor selected by the options.
// A missing ndstool is reported before any file is processed.
func createExtractor(opts options.Program) (gamecode.Extractor, error) {
	if opts.Native {
		return gamecode.NewHeader(), nil
	}

	tool := gamecode.NewNDSTool(opts.Tool)
	if err := tool.Available(); err != nil {
		return nil, err
	}
	return tool, nil
}
