// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/retroenv/ndsgameid/internal/checksum"
	"github.com/retroenv/ndsgameid/internal/gamecode"
	"github.com/retroenv/ndsgameid/internal/options"
)

// ParseGameIDFlags parses the command line arguments of the GameID tool.
// args does not include the program name.
func ParseGameIDFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readCommonFlags(flags, &opts)
	flags.StringVar(&opts.Tool, "tool", gamecode.DefaultTool, "name or path of the ndstool binary")
	flags.BoolVar(&opts.Native, "native", false, "read the game code from the ROM header instead of running ndstool")

	usage := fmt.Sprintf("usage: %s [options] <ROM file>...", name)
	if err := parse(flags, usage, args, &opts); err != nil {
		return opts, err
	}
	opts.HeaderSize = checksum.DefaultHeaderSize
	return opts, nil
}

// ParseChecksumFlags parses the command line arguments of the checksum tool.
// args does not include the program name.
func ParseChecksumFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readCommonFlags(flags, &opts)
	flags.IntVar(&opts.HeaderSize, "n", checksum.DefaultHeaderSize, "number of header bytes to checksum")

	usage := fmt.Sprintf("usage: %s [options] <file>...", name)
	if err := parse(flags, usage, args, &opts); err != nil {
		return opts, err
	}
	if opts.HeaderSize <= 0 {
		return opts, fmt.Errorf("invalid header size %d, must be positive", opts.HeaderSize)
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "%s\n\n", e.usage)
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(w)
}

func parse(flags *flag.FlagSet, usage string, args []string, opts *options.Program) error {
	flags.SetOutput(io.Discard)
	if err := flags.Parse(args); err != nil {
		return &UsageError{flags: flags, usage: usage, msg: err.Error()}
	}

	files := flags.Args()
	if len(files) == 0 && opts.Batch == "" {
		return &UsageError{flags: flags, usage: usage}
	}
	if err := validateArgs(files); err != nil {
		err.flags = flags
		err.usage = usage
		return err
	}

	opts.Files = files
	return nil
}

// validateArgs checks that no flags follow the file arguments.
func validateArgs(args []string) *UsageError {
	for i, arg := range args {
		if i > 0 && len(arg) > 1 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to process, please pass the files as last arguments", arg),
			}
		}
	}
	return nil
}

func readCommonFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of files matching the given path and file mask, for example *.nds")
	flags.BoolVar(&opts.Progress, "progress", false, "show a progress bar on stderr")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
