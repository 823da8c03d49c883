package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Buffer holds the full contents of one file. The bytes are never
// modified after Open; opening another file means a new Buffer.
type Buffer struct {
	filename     string
	data         []byte
	originalHash string
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", filename)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}

	return &Buffer{
		filename:     abs,
		data:         data,
		originalHash: hashOf(data),
	}, nil
}

func hashOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

// Data returns the loaded bytes. Callers must not modify them.
func (b *Buffer) Data() []byte {
	return b.data
}

// HasChangedOnDisk reports whether the file content differs from what was
// loaded. A file that disappeared counts as changed.
func (b *Buffer) HasChangedOnDisk() (bool, error) {
	data, err := os.ReadFile(b.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return hashOf(data) != b.originalHash, nil
}

// Reload reads the file again into a new Buffer.
func (b *Buffer) Reload() (*Buffer, error) {
	return Open(b.filename)
}
