// Package gamecode extracts the 4 character game code of Nintendo DS ROM images.
package gamecode

import (
	"context"
	"errors"
	"fmt"
)

// Length is the number of significant characters of a game code.
const Length = 4

var (
	// ErrToolNotFound is returned when the external header inspection tool is not installed.
	// No file can be processed without it.
	ErrToolNotFound = errors.New("header inspection tool not found")

	// ErrGameCodeNotFound is returned when no game code could be located for a file.
	ErrGameCodeNotFound = errors.New("game code not found")
)

// Extractor returns the game code of a ROM file.
type Extractor interface {
	ExtractGameCode(ctx context.Context, path string) (string, error)
}

// ToolError is returned when the external tool exits with a failure for a file.
type ToolError struct {
	Tool   string
	Path   string
	Output string // diagnostic output of the tool
	Err    error
}

func (e *ToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("running %s on '%s': %v", e.Tool, e.Path, e.Err)
	}
	return fmt.Sprintf("running %s on '%s': %s: %v", e.Tool, e.Path, e.Output, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
