package commands

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/atheme/internal/config"
	"github.com/thoreinstein/atheme/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage atheme settings",
	Long: `Manage atheme's own settings stored in ~/.config/atheme/config.yaml.

Without a subcommand, lists all settings. Keys:

  version      settings format version (1)
  config_file  Alacritty config to edit instead of discovering one`,
	Example: `  # List settings
  atheme config

  # Always edit a dotfiles copy
  atheme config set config_file ~/dotfiles/alacritty.yml

  # Go back to discovery
  atheme config set config_file ""

See Also: atheme where`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE:      runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a setting",
	Long:      `Set a setting and write the settings file.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE:      runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List all settings in YAML format, including environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in $EDITOR",
	Long:  `Open atheme's settings file in your editor, creating it with the current values first if needed.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func runConfigGet(_ *cobra.Command, args []string) error {
	return runConfigGetWithWriter(os.Stdout, args[0])
}

// runConfigGetWithWriter allows injecting a writer for testing.
func runConfigGetWithWriter(w io.Writer, key string) error {
	if !isKnownKey(key) {
		return errors.NewUserError(errors.Wrapf(config.ErrUnknownKey, "%q", key),
			"Run 'atheme config list' to see the keys")
	}
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}
	fmt.Fprintln(w, viper.GetString(key))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	return runConfigSetWithWriter(os.Stdout, args[0], args[1])
}

// runConfigSetWithWriter allows injecting a writer for testing.
func runConfigSetWithWriter(w io.Writer, key, value string) error {
	if err := config.Set(key, value); err != nil {
		return errors.NewUserError(err, "Run 'atheme config list' to see the keys")
	}
	if err := config.Save(""); err != nil {
		return errors.NewSystemError(err, "Check that "+config.Dir()+" is writable")
	}
	if !quiet {
		fmt.Fprintf(w, "Set %s = %s\n", key, viper.GetString(key))
	}
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	return runConfigListWithWriter(os.Stdout)
}

// runConfigListWithWriter allows injecting a writer for testing.
func runConfigListWithWriter(w io.Writer) error {
	data, err := yaml.Marshal(config.Current())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return err
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.File()
		if err := config.Save(path); err != nil {
			return errors.NewSystemError(err, "Check that "+config.Dir()+" is writable")
		}
	}
	if err := openEditor(path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}
	return nil
}

func isKnownKey(key string) bool {
	return slices.Contains(config.Keys, key)
}
