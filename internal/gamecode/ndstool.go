package gamecode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultTool is the name of the ndstool binary looked up in the PATH.
const DefaultTool = "ndstool"

// NDSTool extracts game codes by running ndstool -i on a file.
type NDSTool struct {
	name string
}

// NewNDSTool returns an extractor that runs the given tool name or path.
// An empty name selects the default ndstool binary.
func NewNDSTool(name string) *NDSTool {
	if name == "" {
		name = DefaultTool
	}
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		name += ".exe"
	}
	return &NDSTool{name: name}
}

// Available returns ErrToolNotFound if the tool can not be located.
func (n *NDSTool) Available() error {
	if _, err := exec.LookPath(n.name); err != nil {
		return fmt.Errorf("%w: %s is not installed or not in PATH", ErrToolNotFound, n.name)
	}
	return nil
}

// ExtractGameCode runs the tool on the file and parses the game code from its output.
func (n *NDSTool) ExtractGameCode(ctx context.Context, path string) (string, error) {
	if err := n.Available(); err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, n.name, "-i", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return "", &ToolError{
				Tool:   n.name,
				Path:   path,
				Output: strings.TrimSpace(stderr.String()),
				Err:    err,
			}
		case errors.Is(err, exec.ErrNotFound):
			return "", fmt.Errorf("%w: %s", ErrToolNotFound, n.name)
		default:
			return "", fmt.Errorf("running %s on '%s': %w", n.name, path, err)
		}
	}

	code, err := ParseGameCode(&stdout)
	if err != nil {
		return "", fmt.Errorf("parsing %s output for '%s': %w", n.name, path, err)
	}
	return code, nil
}
