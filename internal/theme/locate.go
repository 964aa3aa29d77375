package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
	"github.com/thoreinstein/atheme/internal/paths"
)

// Names used to build the candidate config locations.
const (
	AppName        = "alacritty"
	ConfigFileName = "alacritty.yml"
)

// Locator finds the Alacritty config file. The zero value is not usable;
// build one with NewLocator.
type Locator struct {
	// ConfigHome is the XDG config directory. Empty skips the first two candidates.
	ConfigHome string

	// HomeDir resolves the user's home directory. It is only called when
	// the ConfigHome candidates are all missing.
	HomeDir func() (string, error)

	fs     FileSystem
	logger *slog.Logger
}

// NewLocator returns a Locator that uses the process environment and fsys.
// A nil fsys means the real disk.
func NewLocator(fsys FileSystem) *Locator {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &Locator{
		ConfigHome: paths.ConfigHome(),
		HomeDir:    paths.ResolveHome,
		fs:         fsys,
		logger:     slog.Default(),
	}
}

// configHomeCandidates returns the locations under the XDG config home:
//
//  1. $XDG_CONFIG_HOME/alacritty/alacritty.yml
//  2. $XDG_CONFIG_HOME/alacritty.yml
func (l *Locator) configHomeCandidates() []string {
	if l.ConfigHome == "" {
		return nil
	}
	return []string{
		filepath.Join(l.ConfigHome, AppName, ConfigFileName),
		filepath.Join(l.ConfigHome, ConfigFileName),
	}
}

// homeCandidates returns the fallback locations under the home directory:
//
//  3. $HOME/.config/alacritty/alacritty.yml
//  4. $HOME/.alacritty.yml
func homeCandidates(home string) []string {
	return []string{
		filepath.Join(home, ".config", AppName, ConfigFileName),
		filepath.Join(home, "."+ConfigFileName),
	}
}

// Candidates returns every location Locate probes, in priority order.
// If the home directory cannot be resolved the XDG candidates are returned
// together with ErrHomeDirectoryMissing.
func (l *Locator) Candidates() ([]string, error) {
	candidates := l.configHomeCandidates()
	home, err := l.resolveHome()
	if err != nil {
		return candidates, err
	}
	return append(candidates, homeCandidates(home)...), nil
}

// Locate returns explicit unchanged when it is non-empty; whether it exists
// is checked when the file is read. Otherwise it returns the first candidate
// that exists.
func (l *Locator) Locate(explicit string) (string, error) {
	if explicit != "" {
		l.log().Debug("using explicit config path", "path", explicit)
		return explicit, nil
	}

	if path, ok := l.firstExisting(l.configHomeCandidates()); ok {
		return path, nil
	}

	home, err := l.resolveHome()
	if err != nil {
		return "", err
	}

	if path, ok := l.firstExisting(homeCandidates(home)); ok {
		return path, nil
	}

	return "", ErrConfigurationNotFound
}

func (l *Locator) firstExisting(candidates []string) (string, bool) {
	fsys := l.fs
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	for _, c := range candidates {
		found := fsys.Exists(c)
		l.log().Log(context.Background(), logging.LevelTrace, "probing config location", "path", c, "found", found)
		if found {
			l.log().Debug("found config", "path", c)
			return c, true
		}
	}
	return "", false
}

func (l *Locator) resolveHome() (string, error) {
	if l.HomeDir == nil {
		return "", errors.Wrap(ErrHomeDirectoryMissing, "no home directory resolver")
	}
	home, err := l.HomeDir()
	if err != nil {
		return "", errors.Mark(err, ErrHomeDirectoryMissing)
	}
	if home == "" {
		return "", errors.Wrap(ErrHomeDirectoryMissing, "empty home directory")
	}
	return home, nil
}

func (l *Locator) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}
