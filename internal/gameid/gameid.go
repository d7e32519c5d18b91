// Package gameid resolves the GameID of Nintendo DS ROM images. A GameID is the game code
// followed by a space and the JAMCRC of the cartridge header, for example "IPKE 4DFFBF91".
// External cheat and compatibility databases are keyed by exactly this string.
package gameid

import (
	"context"
	"fmt"

	"github.com/retroenv/ndsgameid/internal/checksum"
	"github.com/retroenv/ndsgameid/internal/gamecode"
)

// GameID identifies a ROM image.
type GameID struct {
	Code string
	CRC  checksum.JAMCRC
}

func (g GameID) String() string {
	return g.Code + " " + g.CRC.String()
}

// ChecksumFunc calculates the header checksum of a file.
type ChecksumFunc func(path string) (checksum.JAMCRC, error)

// Resolver combines a game code extractor with the header checksum.
type Resolver struct {
	extractor gamecode.Extractor
	checksum  ChecksumFunc
}

// New returns a resolver that checksums the default header size.
func New(extractor gamecode.Extractor) *Resolver {
	return &Resolver{
		extractor: extractor,
		checksum: func(path string) (checksum.JAMCRC, error) {
			return checksum.File(path, checksum.DefaultHeaderSize)
		},
	}
}

// WithChecksum replaces the checksum function.
func (r *Resolver) WithChecksum(fn ChecksumFunc) *Resolver {
	r.checksum = fn
	return r
}

// Resolve returns the GameID of the file. The checksum is only calculated once the game code
// has been extracted successfully.
func (r *Resolver) Resolve(ctx context.Context, path string) (GameID, error) {
	code, err := r.extractor.ExtractGameCode(ctx, path)
	if err != nil {
		return GameID{}, fmt.Errorf("extracting game code: %w", err)
	}

	crc, err := r.checksum(path)
	if err != nil {
		return GameID{}, fmt.Errorf("calculating JAMCRC: %w", err)
	}

	return GameID{Code: code, CRC: crc}, nil
}
