package theme

import (
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/paths"
)

// Sentinel errors. Wrapped errors returned by this package match exactly
// one of these with errors.Is.
var (
	// ErrIO indicates reading or writing the config file failed.
	// The underlying fs error stays reachable through the chain.
	ErrIO = errors.New("config file I/O failed")

	// ErrParse indicates the config file is not well-formed YAML.
	ErrParse = errors.New("failed to parse the Alacritty config")

	// ErrHomeDirectoryMissing indicates auto-discovery needed the home
	// directory and the platform could not provide one.
	ErrHomeDirectoryMissing = paths.ErrHomeDirNotFound

	// ErrConfigurationNotFound indicates every candidate location was missing.
	ErrConfigurationNotFound = errors.New("could not find an Alacritty config")

	// ErrColorSchemesMissing indicates color_schemes is absent or null.
	ErrColorSchemesMissing = errors.New(`no color schemes found under the "color_schemes" key`)

	// ErrColorSchemesNotAMapping indicates color_schemes is present with the wrong shape.
	ErrColorSchemesNotAMapping = errors.New(`found the "color_schemes" key, but it is not a mapping`)

	// ErrColorSchemeNotAvailable indicates the requested theme is not in the catalog.
	ErrColorSchemeNotAvailable = errors.New("color scheme not available")

	// ErrActiveThemeMissing indicates no "colors: *<name>" line exists.
	ErrActiveThemeMissing = errors.New(`no "colors: *<name>" line found`)

	// ErrActiveThemeAmbiguous indicates more than one "colors: *<name>" line exists.
	ErrActiveThemeAmbiguous = errors.New(`more than one "colors: *<name>" line found`)
)
