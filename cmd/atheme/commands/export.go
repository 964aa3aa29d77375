package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <theme>",
	Short: "Print a theme as Alacritty TOML",
	Long: `Print one color scheme as a TOML [colors] table, the format newer
Alacritty releases read. Anchors and merge keys are resolved.`,
	Example: `  # Print a theme
  atheme export gruvbox_dark

  # Save it as a TOML theme file
  atheme export gruvbox_dark > ~/.config/alacritty/themes/gruvbox_dark.toml

See Also: atheme list`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemes,
	RunE:              runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	return runExportWithWriter(cmd, args[0], os.Stdout)
}

// runExportWithWriter allows injecting a writer for testing.
func runExportWithWriter(cmd *cobra.Command, name string, w io.Writer) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	out, err := s.Export(name)
	if err != nil {
		return classifyUnknownTheme(err, name, s.Themes())
	}
	_, err = w.Write(out)
	return err
}
