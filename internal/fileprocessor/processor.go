// Package fileprocessor handles the per file processing loop of the tools.
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/ndsgameid/internal/gamecode"
	"github.com/retroenv/ndsgameid/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/schollz/progressbar/v3"
)

// Job produces the output line for a single file.
type Job struct {
	Name string // used in log messages, for example "generating GameID"
	Run  func(ctx context.Context, path string) (string, error)
}

// Summary counts the outcome of a processing run.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
}

// Processor runs a job for every file in the order given.
type Processor struct {
	logger   *log.Logger
	output   io.Writer
	job      Job
	progress io.Writer
}

// New returns a processor that writes job results as lines to output.
func New(logger *log.Logger, output io.Writer, job Job) *Processor {
	return &Processor{
		logger: logger,
		output: output,
		job:    job,
	}
}

// WithProgress enables a progress bar written to w.
func (p *Processor) WithProgress(w io.Writer) *Processor {
	p.progress = w
	return p
}

// Process runs the job for all files. Paths that are not existing regular files are skipped.
// Per file failures are logged and processing continues with the next file. A missing
// header inspection tool or a cancelled context aborts the run and is returned.
func (p *Processor) Process(ctx context.Context, files []string) (Summary, error) {
	var summary Summary

	var bar *progressbar.ProgressBar
	if p.progress != nil {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionSetDescription(p.job.Name),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		err := p.processFile(ctx, file, &summary)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (p *Processor) processFile(ctx context.Context, file string, summary *Summary) error {
	if !isRegularFile(file) {
		p.logger.Warn("Skipping file, not a regular file", log.String("file", file))
		summary.Skipped++
		return nil
	}

	result, err := p.job.Run(ctx, file)
	if err != nil {
		if errors.Is(err, gamecode.ErrToolNotFound) || errors.Is(err, context.Canceled) {
			return err
		}
		p.logger.Error("Failed "+p.job.Name,
			log.String("file", file),
			log.Err(err))
		summary.Failed++
		return nil
	}

	if _, err := fmt.Fprintln(p.output, result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	summary.Processed++
	return nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return append(matches, opts.Files...), nil
	}
	return opts.Files, nil
}

// Exit codes of the tools.
const (
	ExitOK          = 0
	ExitUsage       = 1 // invalid command line
	ExitFatal       = 1 // environment unusable, for example ndstool missing
	ExitFileFailure = 2 // at least one file failed
)

// ExitCode returns the process exit code for the run.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return ExitFileFailure
	}
	return ExitOK
}
