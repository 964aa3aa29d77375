package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/internal/editor"
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
	"github.com/thoreinstein/atheme/internal/theme"
)

// openEditor launches the editor. Tests replace it.
var openEditor = editor.Open

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the Alacritty config in $EDITOR",
	Long: `Open the Alacritty config atheme uses in your editor ($VISUAL, then
$EDITOR, then nano or vi). The config only has to exist; it is checked after
the editor exits and problems are reported as warnings.`,
	Example: `  atheme edit
  EDITOR="code --wait" atheme edit

See Also: atheme doctor, atheme where`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	logger := loggerFor(cmd)

	explicit, err := configPath()
	if err != nil {
		return classify(err)
	}
	path, err := theme.NewLocator(nil).Locate(explicit)
	if err != nil {
		return classify(err)
	}
	if _, err := os.Stat(path); err != nil {
		return classify(errors.Mark(errors.Wrapf(err, "opening %s", path), theme.ErrIO))
	}

	if err := openEditor(path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	s, err := theme.Load(path, theme.WithLogger(logging.NewDiscard()))
	if err != nil {
		logger.Warn("config has problems after editing", "path", path, "error", err)
		return nil
	}
	if current := s.Current(); len(current) != 1 {
		logger.Warn("config should have exactly one active theme line", "path", path, "found", current)
	}
	return nil
}
