package theme

import (
	"github.com/thoreinstein/atheme/pkg/fileutil"
)

// FileSystem is the file access the engine needs. Tests substitute a mock.
type FileSystem interface {
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of an existing file.
	WriteFile(path string, data []byte) error

	// Exists reports whether path exists.
	Exists(path string) bool
}

// OSFileSystem is the FileSystem backed by the real disk.
// Reads are size-capped and writes are atomic.
type OSFileSystem struct{}

// ReadFile reads at most fileutil.MaxFileSize bytes from path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return fileutil.ReadFileWithLimit(path)
}

// WriteFile replaces path atomically, following symlinks and keeping the mode.
func (OSFileSystem) WriteFile(path string, data []byte) error {
	return fileutil.ReplaceFile(path, data)
}

// Exists reports whether path exists, following symlinks.
func (OSFileSystem) Exists(path string) bool {
	return fileutil.Exists(path)
}
