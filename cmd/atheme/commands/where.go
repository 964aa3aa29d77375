package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/theme"
)

func init() {
	rootCmd.AddCommand(whereCmd)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show which Alacritty config is used",
	Long: `Print the Alacritty config atheme would edit and the locations searched,
in priority order.`,
	Example: `  atheme where
  atheme where -c ~/dotfiles/alacritty.yml

See Also: atheme config`,
	Args: cobra.NoArgs,
	RunE: runWhere,
}

func runWhere(cmd *cobra.Command, _ []string) error {
	return runWhereWithWriter(cmd, theme.NewLocator(nil), os.Stdout)
}

// whereReport is what where prints.
type whereReport struct {
	// Resolved is the config in use; empty when none was found.
	Resolved string
	// Source describes how Resolved was chosen.
	Source     string
	Candidates []string
	Found      map[string]bool
}

// runWhereWithWriter allows injecting a locator and writer for testing.
func runWhereWithWriter(cmd *cobra.Command, l *theme.Locator, w io.Writer) error {
	logger := loggerFor(cmd)

	explicit, err := configPath()
	if err != nil {
		return classify(err)
	}

	report := whereReport{Found: map[string]bool{}}
	candidates, err := l.Candidates()
	if err != nil {
		logger.Warn("home directory unavailable; listing XDG locations only", "error", err)
	}
	report.Candidates = candidates
	fsys := theme.OSFileSystem{}
	for _, c := range candidates {
		report.Found[c] = fsys.Exists(c)
	}

	switch {
	case configFile != "":
		report.Resolved, report.Source = explicit, "--config-file"
	case explicit != "":
		report.Resolved, report.Source = explicit, "config_file setting"
	default:
		path, err := l.Locate("")
		switch {
		case err == nil:
			report.Resolved, report.Source = path, "discovered"
		case errors.Is(err, theme.ErrConfigurationNotFound):
		default:
			return classify(err)
		}
	}

	outputWhere(w, report)
	return nil
}

func outputWhere(w io.Writer, r whereReport) {
	heading := style(w, color.FgCyan, color.Bold)
	found := style(w, color.FgGreen)
	gray := style(w, color.FgHiBlack)

	fmt.Fprintln(w, heading.Sprint("Config:"))
	if r.Resolved == "" {
		fmt.Fprintln(w, gray.Sprint("  (not found)"))
	} else {
		fmt.Fprintf(w, "  %s %s\n", r.Resolved, gray.Sprint("("+r.Source+")"))
	}

	fmt.Fprintln(w, heading.Sprint("Searched:"))
	for i, c := range r.Candidates {
		mark := gray.Sprint("missing")
		if r.Found[c] {
			mark = found.Sprint("found")
		}
		fmt.Fprintf(w, "  %d. %s  %s\n", i+1, c, mark)
	}
}
