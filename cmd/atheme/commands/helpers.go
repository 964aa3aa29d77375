package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/atheme/internal/config"
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
	"github.com/thoreinstein/atheme/internal/paths"
	"github.com/thoreinstein/atheme/internal/theme"
)

// style returns a color that is only applied when w is a color terminal.
func style(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if logging.SupportsColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// configPath returns the Alacritty config path to use. The flag wins over
// the config_file setting (which includes ATHEME_CONFIG_FILE); empty means
// auto-discovery.
func configPath() (string, error) {
	path := configFile
	if path == "" {
		path = viper.GetString(config.KeyConfigFile)
	}
	return expandHome(path)
}

// expandHome replaces a leading "~/" with the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := paths.ResolveHome()
	if err != nil {
		return "", errors.Mark(err, theme.ErrHomeDirectoryMissing)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// loggerFor returns the logger setupLogging stored on the command context.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		return logging.FromContext(ctx)
	}
	return slog.Default()
}

// loadSession opens the Alacritty config for cmd. Errors are already
// classified for the CLI.
func loadSession(cmd *cobra.Command) (*theme.Session, error) {
	path, err := configPath()
	if err != nil {
		return nil, classify(err)
	}
	s, err := theme.Load(path, theme.WithLogger(loggerFor(cmd)))
	if err != nil {
		return nil, classify(err)
	}
	return s, nil
}

// classify turns an engine error into an ExitError with an exit code and a
// hint for the user.
func classify(err error) error {
	var exitErr *errors.ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, theme.ErrHomeDirectoryMissing):
		return errors.NewSystemError(err, "Set $HOME or pass --config-file")
	case errors.Is(err, theme.ErrIO):
		return errors.NewSystemError(err, "Check that the file exists and is readable and writable")
	case errors.Is(err, theme.ErrConfigurationNotFound):
		return errors.NewUserError(err, "Create an Alacritty config or pass --config-file; 'atheme where' lists the locations searched")
	case errors.Is(err, theme.ErrParse):
		return errors.NewUserError(err, "Fix the YAML syntax in your Alacritty config")
	case errors.Is(err, theme.ErrColorSchemesMissing):
		return errors.NewUserError(err, "Declare your themes under a top-level color_schemes mapping")
	case errors.Is(err, theme.ErrColorSchemesNotAMapping):
		return errors.NewUserError(err, "color_schemes must map theme names to color settings")
	case errors.Is(err, theme.ErrActiveThemeMissing):
		return errors.NewUserError(err, "Add a top-level line like 'colors: *<theme>' to your Alacritty config")
	case errors.Is(err, theme.ErrActiveThemeAmbiguous):
		return errors.NewUserError(err, "Keep a single top-level 'colors: *<theme>' line; 'atheme current' lists them")
	case errors.Is(err, theme.ErrUnsupportedThemeName):
		return errors.NewUserError(err, "Rename the scheme using only letters, digits, and underscores")
	default:
		return errors.NewUserError(err, "")
	}
}

// classifyUnknownTheme is classify for ErrColorSchemeNotAvailable, adding a
// suggestion drawn from the known themes.
func classifyUnknownTheme(err error, name string, known []string) error {
	if !errors.Is(err, theme.ErrColorSchemeNotAvailable) {
		return classify(err)
	}
	return errors.NewUserError(err, suggestTheme(name, known))
}

// suggestTheme returns a "did you mean" hint for name, or a pointer to the
// list command when nothing is close.
func suggestTheme(name string, known []string) string {
	if name != "" {
		if matches := fuzzy.Find(name, known); len(matches) > 0 {
			return "Did you mean '" + matches[0].Str + "'?"
		}
	}
	return "Run 'atheme list' to see available themes"
}
