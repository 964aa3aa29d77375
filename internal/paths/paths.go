package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/atheme/internal/errors"
)

// AppName is the directory name used for atheme's own settings.
const AppName = "atheme"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		msg := "empty home directory"
		if err != nil {
			msg = err.Error()
		}
		return "", errors.Wrap(ErrHomeDirNotFound, msg)
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// The value is read from the environment each call so tests that change
// XDG_CONFIG_HOME or HOME see their override.
func ConfigHome() string {
	xdg.Reload()
	return xdg.ConfigHome
}

// SettingsDir returns the directory holding atheme's own settings.
// Returns: <ConfigHome>/atheme/
func SettingsDir() string {
	return filepath.Join(ConfigHome(), AppName)
}
