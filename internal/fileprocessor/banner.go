package fileprocessor

import (
	"strings"

	"github.com/retroenv/ndsgameid/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the tool name and version information.
func PrintBanner(logger *log.Logger, opts options.Program, name, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Debug(name, log.String("version", buildinfo.Version(version, commit, date)))
	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
