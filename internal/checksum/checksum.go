// Package checksum calculates the JAMCRC of ROM headers.
package checksum

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/retroenv/ndsgameid/internal/loader"
)

// DefaultHeaderSize is the number of bytes from the start of a file that are checksummed.
const DefaultHeaderSize = 512

// ErrEmptyFile is returned when there are no bytes to checksum.
var ErrEmptyFile = errors.New("file is empty")

// JAMCRC is the bitwise complement of a CRC-32 (IEEE) value.
type JAMCRC uint32

// String returns the value as 8 uppercase zero padded hex digits.
func (c JAMCRC) String() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// Hex returns the value with a 0x prefix.
func (c JAMCRC) Hex() string {
	return "0x" + c.String()
}

// Compute returns the JAMCRC of the given data.
func Compute(data []byte) JAMCRC {
	return JAMCRC(^crc32.ChecksumIEEE(data))
}

// Header returns the JAMCRC of the first size bytes read from r.
func Header(r io.Reader, size int) (JAMCRC, error) {
	data, err := loader.New().LoadFromReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}
	if len(data) == 0 {
		return 0, ErrEmptyFile
	}
	return Compute(data), nil
}

// File returns the JAMCRC of the first size bytes of the file.
func File(path string, size int) (JAMCRC, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	crc, err := Header(file, size)
	if err != nil {
		return 0, fmt.Errorf("file '%s': %w", path, err)
	}
	return crc, nil
}
