package gamecode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const gameCodeLabel = "Game code"

// ParseGameCode scans ndstool info output for the game code line. Lines are tab delimited,
// the third field holds the code followed by a region annotation, for example:
//
//	0x0C	Game code                	IPKE (NTR-IPKE-USA)
func ParseGameCode(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, gameCodeLabel) {
			continue
		}

		// ndstool may pad the label column with extra tabs.
		parts := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
		if len(parts) < 3 {
			continue
		}

		code := []rune(strings.TrimSpace(parts[2]))
		if len(code) > Length {
			code = code[:Length]
		}
		if len(code) == 0 {
			continue
		}
		return strings.ToUpper(string(code)), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading tool output: %w", err)
	}
	return "", ErrGameCodeNotFound
}
