// Package detector handles ROM image type detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// System is a detected ROM image type.
type System string

const (
	Unknown System = ""
	NDS     System = "nds"
	DSi     System = "dsi"
)

func (s System) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}

// Detector handles ROM image type detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the ROM image type from the file extension and warns
// about files that do not look like Nintendo DS ROM images.
func (d *Detector) Detect(path string) System {
	system := detectFromFile(path)
	if system == Unknown {
		d.logger.Warn("File extension does not match a Nintendo DS ROM image",
			log.String("file", path))
		return system
	}

	d.logger.Debug("Detected ROM image type",
		log.Stringer("system", system),
		log.String("file", path))
	return system
}

func detectFromFile(path string) System {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".nds", ".srl", ".ids":
		return NDS
	case ".dsi":
		return DSi
	default:
		return Unknown
	}
}
