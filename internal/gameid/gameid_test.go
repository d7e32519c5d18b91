package gameid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/ndsgameid/internal/checksum"
	"github.com/retroenv/ndsgameid/internal/gamecode"
	"github.com/retroenv/retrogolib/assert"
)

type fakeExtractor struct {
	code  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractGameCode(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.code, f.err
}

func TestGameIDString(t *testing.T) {
	id := GameID{Code: "IPKE", CRC: 0x4DFFBF91}
	assert.Equal(t, "IPKE 4DFFBF91", id.String())

	id = GameID{Code: "ABCD", CRC: 0x0000BEEF}
	assert.Equal(t, "ABCD 0000BEEF", id.String())
}

func TestResolve(t *testing.T) {
	t.Run("complement of CRC-32 is appended", func(t *testing.T) {
		extractor := &fakeExtractor{code: "ABCD"}
		resolver := New(extractor).WithChecksum(func(string) (checksum.JAMCRC, error) {
			return checksum.JAMCRC(^uint32(0x12345678)), nil
		})

		id, err := resolver.Resolve(context.Background(), "rom.nds")
		assert.NoError(t, err)
		assert.Equal(t, "ABCD EDCBA987", id.String())
	})

	t.Run("header checksum of file", func(t *testing.T) {
		data := make([]byte, 1024)
		copy(data, "123456789")
		path := filepath.Join(t.TempDir(), "rom.nds")
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}

		id, err := New(&fakeExtractor{code: "IPKE"}).Resolve(context.Background(), path)
		assert.NoError(t, err)
		assert.Equal(t, "IPKE", id.Code)
		assert.Equal(t, checksum.Compute(data[:checksum.DefaultHeaderSize]), id.CRC)
	})

	t.Run("checksum is skipped when extraction fails", func(t *testing.T) {
		extractor := &fakeExtractor{err: gamecode.ErrGameCodeNotFound}
		checksummed := false
		resolver := New(extractor).WithChecksum(func(string) (checksum.JAMCRC, error) {
			checksummed = true
			return 0, nil
		})

		_, err := resolver.Resolve(context.Background(), "rom.nds")
		assert.True(t, errors.Is(err, gamecode.ErrGameCodeNotFound))
		assert.False(t, checksummed)
		assert.Equal(t, 1, extractor.calls)
	})

	t.Run("checksum failure is propagated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.nds")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}

		_, err := New(&fakeExtractor{code: "IPKE"}).Resolve(context.Background(), path)
		assert.True(t, errors.Is(err, checksum.ErrEmptyFile))
	})
}
