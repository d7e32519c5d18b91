// Package loader handles ROM header loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Loader handles loading ROM header slices from disk.
type Loader struct{}

// New creates a new header loader.
func New() *Loader {
	return &Loader{}
}

// Load reads up to size bytes from the start of the file.
// Files shorter than size return their full content without padding.
func (l *Loader) Load(path string, size int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file, size)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads up to size bytes from the reader.
func (l *Loader) LoadFromReader(r io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid header size %d", size)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}
