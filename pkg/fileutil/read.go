package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/atheme/internal/errors"
)

// MaxFileSize is the maximum file size we'll read (1MB).
// Terminal configs are a few KiB; anything larger is not one.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
// It returns an error if the file is larger than the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// Exists reports whether path names an existing file or directory,
// following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
