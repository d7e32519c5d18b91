// Package main implements a tool that prints the JAMCRC (complement of the CRC-32)
// of the first bytes of files.
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/retroenv/ndsgameid/internal/cli"
	"github.com/retroenv/ndsgameid/internal/config"
	"github.com/retroenv/ndsgameid/internal/fileprocessor"
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

	opts, err := cli.ParseChecksumFlags(name, os.Args[1:])
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
	fileprocessor.PrintBanner(logger, opts, "jamcrc", version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Error(err.Error())
		return fileprocessor.ExitUsage
	}

	processor := fileprocessor.New(logger, os.Stdout, fileprocessor.ChecksumJob(opts.HeaderSize))
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
