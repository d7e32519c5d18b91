package fileprocessor

import (
	"context"
	"fmt"

	"github.com/retroenv/ndsgameid/internal/checksum"
	"github.com/retroenv/ndsgameid/internal/detector"
	"github.com/retroenv/ndsgameid/internal/gameid"
)

// GameIDJob resolves the GameID of a file and outputs it as "<code> <JAMCRC>".
func GameIDJob(resolver *gameid.Resolver, detect *detector.Detector) Job {
	return Job{
		Name: "generating GameID",
		Run: func(ctx context.Context, path string) (string, error) {
			if detect != nil {
				detect.Detect(path)
			}
			id, err := resolver.Resolve(ctx, path)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
	}
}

// ChecksumJob calculates the header JAMCRC of a file and outputs it as "<path>: 0x<JAMCRC>".
func ChecksumJob(headerSize int) Job {
	return Job{
		Name: "calculating JAMCRC",
		Run: func(_ context.Context, path string) (string, error) {
			crc, err := checksum.File(path, headerSize)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s: %s", path, crc.Hex()), nil
		},
	}
}
