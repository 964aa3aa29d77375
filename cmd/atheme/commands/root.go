// Package commands implements the CLI commands for atheme.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/cmd"
	"github.com/thoreinstein/atheme/internal/config"
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
)

// configFile holds the value of the -c/--config-file flag.
var configFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// settingsErr holds any error that occurred while loading atheme's settings.
var settingsErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config-file", "c", "",
		"path to the Alacritty config (default: auto-discovered)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("atheme version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	_, settingsErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "atheme",
	Short: "Switch the active Alacritty color scheme",
	Long: `atheme lists the color schemes declared under color_schemes in your
Alacritty YAML config and switches between them by rewriting the single
"colors: *<name>" line. Everything else in the file is left byte for byte.

The config is found in the usual Alacritty locations:

  $XDG_CONFIG_HOME/alacritty/alacritty.yml
  $XDG_CONFIG_HOME/alacritty.yml
  $HOME/.config/alacritty/alacritty.yml
  $HOME/.alacritty.yml

Use --config-file, ATHEME_CONFIG_FILE, or "atheme config set config_file"
to point at another file.`,
	Example: `  # List available themes
  atheme list

  # Show the active theme
  atheme current

  # Switch theme
  atheme change gruvbox_dark

  # Pick a theme interactively
  atheme change

  See Also: atheme where, atheme config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd, args)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("ATHEME_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "opening log file"), "")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings reports a broken settings file. The config, doctor, and
// version commands still run so the file can be inspected and repaired.
func checkSettings(cmd *cobra.Command, _ []string) error {
	if settingsErr == nil {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "config", "doctor":
			return nil
		}
	}
	return errors.NewUserError(settingsErr, "Fix or remove the settings file, or run 'atheme config set'")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
