package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("file longer than header", func(t *testing.T) {
		data := make([]byte, 1024)
		for i := range data {
			data[i] = byte(i)
		}
		tmpFile := createTempFile(t, data)

		header, err := New().Load(tmpFile, 512)
		assert.NoError(t, err)
		assert.Len(t, header, 512)
		assert.True(t, bytes.Equal(data[:512], header))
	})

	t.Run("file shorter than header is not padded", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03}
		tmpFile := createTempFile(t, data)

		header, err := New().Load(tmpFile, 512)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal(data, header))
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		header, err := New().Load(tmpFile, 512)
		assert.NoError(t, err)
		assert.Len(t, header, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.nds", 512)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "/nonexistent/file.nds")
	})

	t.Run("error on invalid size", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x01})

		_, err := New().Load(tmpFile, 0)
		assert.Error(t, err)
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("exact size", func(t *testing.T) {
		header, err := New().LoadFromReader(bytes.NewReader([]byte{1, 2, 3, 4}), 4)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal([]byte{1, 2, 3, 4}, header))
	})

	t.Run("read error", func(t *testing.T) {
		_, err := New().LoadFromReader(failingReader{}, 4)
		assert.Error(t, err)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device error")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.nds")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
