package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var currentJSON bool

func init() {
	currentCmd.Flags().BoolVar(&currentJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active theme",
	Long: `Show the theme named on the top-level "colors: *<name>" line.

A config with several such lines reports all of them; "atheme change"
refuses to edit it until only one remains.`,
	Example: `  # Show the active theme
  atheme current

  # Output as JSON
  atheme current --json

See Also: atheme list, atheme change`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

// currentOutput is the JSON output format for current.
type currentOutput struct {
	Path    string   `json:"path"`
	Current []string `json:"current"`
}

func runCurrent(cmd *cobra.Command, _ []string) error {
	return runCurrentWithWriter(cmd, os.Stdout)
}

// runCurrentWithWriter allows injecting a writer for testing.
func runCurrentWithWriter(cmd *cobra.Command, w io.Writer) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	current := s.Current()
	if len(current) > 1 {
		loggerFor(cmd).Warn("config has more than one active theme line", "path", s.Path(), "count", len(current))
	}
	if currentJSON {
		return outputJSON(w, currentOutput{Path: s.Path(), Current: current})
	}
	outputCurrent(w, current)
	return nil
}

// outputCurrent prints every active theme under a heading.
func outputCurrent(w io.Writer, current []string) {
	heading := style(w, color.FgCyan, color.Bold)
	gray := style(w, color.FgHiBlack)

	fmt.Fprintln(w, heading.Sprint("Current theme:"))
	if len(current) == 0 {
		fmt.Fprintln(w, gray.Sprint("  (no 'colors: *<theme>' line found)"))
		return
	}
	for _, name := range current {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}
