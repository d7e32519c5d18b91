package gamecode

import (
	"context"
	"fmt"
	"strings"

	"github.com/retroenv/ndsgameid/internal/loader"
)

// gameCodeOffset is the offset of the game code in the cartridge header.
const gameCodeOffset = 0x0C

// Header extracts game codes directly from the cartridge header without an external tool.
type Header struct {
	loader *loader.Loader
}

// NewHeader returns a header based extractor.
func NewHeader() *Header {
	return &Header{loader: loader.New()}
}

// ExtractGameCode reads the game code from the cartridge header of the file.
func (h *Header) ExtractGameCode(_ context.Context, path string) (string, error) {
	data, err := h.loader.Load(path, gameCodeOffset+Length)
	if err != nil {
		return "", err
	}
	if len(data) < gameCodeOffset+Length {
		return "", fmt.Errorf("header of '%s' too short: %w", path, ErrGameCodeNotFound)
	}

	code := data[gameCodeOffset : gameCodeOffset+Length]
	for _, b := range code {
		if b <= ' ' || b > '~' {
			return "", fmt.Errorf("invalid game code bytes in '%s': %w", path, ErrGameCodeNotFound)
		}
	}
	return strings.ToUpper(string(code)), nil
}
