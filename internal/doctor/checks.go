package doctor

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
	"github.com/thoreinstein/atheme/internal/theme"
)

// Target is the Alacritty config under diagnosis. Checks share one Target
// so the file is located and loaded once, the same way 'atheme change' does.
type Target struct {
	// Explicit is the configured path; empty means discovery.
	Explicit string

	// Locator finds the config when Explicit is empty. Nil uses the
	// process environment.
	Locator *theme.Locator

	loaded    bool
	path      string
	locateErr error
	session   *theme.Session
	loadErr   error
}

func (t *Target) load() {
	if t.loaded {
		return
	}
	t.loaded = true

	l := t.Locator
	if l == nil {
		l = theme.NewLocator(theme.OSFileSystem{})
	}

	// Locate separately so the path is known even when loading fails.
	t.path, t.locateErr = l.Locate(t.Explicit)
	if t.locateErr != nil {
		return
	}

	t.session, t.loadErr = theme.Load(t.path,
		theme.WithLocator(l),
		theme.WithLogger(logging.NewDiscard()))
}

// readErr is the load error when the file itself could not be read.
func (t *Target) readErr() error {
	if t.loadErr != nil && errors.Is(t.loadErr, theme.ErrIO) {
		return t.loadErr
	}
	return nil
}

// catalogErr is the load error when the file was read but not parsed.
func (t *Target) catalogErr() error {
	if t.loadErr != nil && !errors.Is(t.loadErr, theme.ErrIO) {
		return t.loadErr
	}
	return nil
}

func (t *Target) readable() bool {
	return t.locateErr == nil && t.readErr() == nil
}

// skipped is the result for a check whose input is unavailable.
func skipped(reason string) *CheckResult {
	return &CheckResult{
		Status:  SeverityInfo,
		Message: "skipped: " + reason,
	}
}

// SettingsCheck reports whether atheme's own settings loaded.
type SettingsCheck struct {
	// Err is the error returned when loading settings, if any.
	Err error
}

var _ Check = (*SettingsCheck)(nil)

func (c *SettingsCheck) Name() string     { return "settings" }
func (c *SettingsCheck) Category() string { return "atheme" }

func (c *SettingsCheck) Run() *CheckResult {
	if c.Err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: c.Err.Error(),
			FixHint: "Fix the settings file or reset a key with 'atheme config set'",
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "settings loaded"}
}

// LocationCheck reports which Alacritty config is used.
type LocationCheck struct {
	Target *Target
}

var _ Check = (*LocationCheck)(nil)

func (c *LocationCheck) Name() string     { return "config-location" }
func (c *LocationCheck) Category() string { return "config" }

func (c *LocationCheck) Run() *CheckResult {
	c.Target.load()
	if err := c.Target.locateErr; err != nil {
		hint := "Run 'atheme where' to see the locations searched, or pass --config-file"
		if errors.Is(err, theme.ErrHomeDirectoryMissing) {
			hint = "Set $HOME or pass --config-file"
		}
		return &CheckResult{Status: SeverityError, Message: err.Error(), FixHint: hint}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "using " + c.Target.path,
		Details: map[string]any{"path": c.Target.path},
	}
}

// FileCheck verifies the config can be read and replaced.
type FileCheck struct {
	Target *Target
}

var _ Check = (*FileCheck)(nil)

func (c *FileCheck) Name() string     { return "config-file" }
func (c *FileCheck) Category() string { return "config" }

func (c *FileCheck) Run() *CheckResult {
	c.Target.load()
	if c.Target.locateErr != nil {
		return skipped("config not located")
	}
	if err := c.Target.readErr(); err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Check that the file exists and is readable",
		}
	}

	details := map[string]any{}
	if lfi, err := os.Lstat(c.Target.path); err == nil && lfi.Mode()&os.ModeSymlink != 0 {
		if dest, err := os.Readlink(c.Target.path); err == nil {
			details["symlink"] = dest
		}
	}

	fi, err := os.Stat(c.Target.path)
	if err != nil {
		return &CheckResult{Status: SeverityError, Message: err.Error(), Details: details}
	}
	details["mode"] = fmt.Sprintf("%04o", fi.Mode().Perm())
	details["bytes"] = fi.Size()

	if !fi.Mode().IsRegular() {
		return &CheckResult{
			Status:  SeverityError,
			Message: "not a regular file",
			Details: details,
		}
	}
	if fi.Mode().Perm()&0o200 == 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "file is not writable by its owner; 'atheme change' will fail",
			Details: details,
			FixHint: "chmod u+w " + c.Target.path,
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "readable and writable", Details: details}
}

// CatalogCheck verifies the color_schemes mapping.
type CatalogCheck struct {
	Target *Target
}

var _ Check = (*CatalogCheck)(nil)

func (c *CatalogCheck) Name() string     { return "color-schemes" }
func (c *CatalogCheck) Category() string { return "themes" }

func (c *CatalogCheck) Run() *CheckResult {
	c.Target.load()
	if !c.Target.readable() {
		return skipped("config not readable")
	}
	if err := c.Target.catalogErr(); err != nil {
		hint := "Declare your themes under a top-level color_schemes mapping"
		if errors.Is(err, theme.ErrParse) {
			hint = "Fix the YAML syntax in your Alacritty config"
		}
		return &CheckResult{Status: SeverityError, Message: err.Error(), FixHint: hint}
	}

	names := c.Target.session.Themes()
	if len(names) == 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "color_schemes is empty",
			FixHint: "Add at least one named scheme under color_schemes",
		}
	}

	var unsupported []string
	for _, n := range names {
		if !theme.ValidName(n) {
			unsupported = append(unsupported, n)
		}
	}
	details := map[string]any{"themes": names}
	if len(unsupported) > 0 {
		details["unsupported"] = unsupported
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "cannot switch to " + strings.Join(unsupported, ", "),
			Details: details,
			FixHint: "Rename schemes using only letters, digits, and underscores",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("%d themes declared", len(names)),
		Details: details,
	}
}

// ActiveThemeCheck verifies there is exactly one active-theme line and that
// it names a declared scheme.
type ActiveThemeCheck struct {
	Target *Target
}

var _ Check = (*ActiveThemeCheck)(nil)

func (c *ActiveThemeCheck) Name() string     { return "active-theme" }
func (c *ActiveThemeCheck) Category() string { return "themes" }

func (c *ActiveThemeCheck) Run() *CheckResult {
	c.Target.load()
	if !c.Target.readable() {
		return skipped("config not readable")
	}
	if c.Target.catalogErr() != nil {
		return skipped("catalog not parsed")
	}

	s := c.Target.session
	current := s.Current()
	details := map[string]any{"current": current}
	switch len(current) {
	case 0:
		return &CheckResult{
			Status:  SeverityError,
			Message: theme.ErrActiveThemeMissing.Error(),
			FixHint: "Add a top-level line like 'colors: *<theme>'",
		}
	case 1:
	default:
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("%d active theme lines: %s", len(current), strings.Join(current, ", ")),
			Details: details,
			FixHint: "Keep a single top-level 'colors: *<theme>' line",
		}
	}

	if !slices.Contains(s.Themes(), current[0]) {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("active theme %q is not declared under color_schemes", current[0]),
			Details: details,
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "active theme " + current[0],
		Details: details,
	}
}

// DefaultChecks returns the standard checks in the order they are reported.
func DefaultChecks(settingsErr error, target *Target) []Check {
	return []Check{
		&SettingsCheck{Err: settingsErr},
		&LocationCheck{Target: target},
		&FileCheck{Target: target},
		&CatalogCheck{Target: target},
		&ActiveThemeCheck{Target: target},
	}
}
