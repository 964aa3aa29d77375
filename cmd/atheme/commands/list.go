package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Long: `List the themes declared under color_schemes, in file order.
The active theme is marked.`,
	Example: `  # List themes
  atheme list

  # Output as JSON
  atheme list --json

See Also: atheme current, atheme change`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listOutput is the JSON output format for list.
type listOutput struct {
	Path    string   `json:"path"`
	Themes  []string `json:"themes"`
	Current []string `json:"current"`
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd, os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	out := listOutput{Path: s.Path(), Themes: s.Themes(), Current: s.Current()}
	if listJSON {
		return outputJSON(w, out)
	}
	outputListTabular(w, out.Themes, out.Current)
	return nil
}

// outputListTabular prints one theme per line under a heading.
func outputListTabular(w io.Writer, themes, current []string) {
	heading := style(w, color.FgCyan, color.Bold)
	active := style(w, color.FgGreen, color.Bold)
	gray := style(w, color.FgHiBlack)

	fmt.Fprintln(w, heading.Sprint("Available themes:"))
	if len(themes) == 0 {
		fmt.Fprintln(w, gray.Sprint("  (none declared under color_schemes)"))
		return
	}
	for _, name := range themes {
		if slices.Contains(current, name) {
			fmt.Fprintf(w, "  - %s %s\n", active.Sprint(name), gray.Sprint("(active)"))
			continue
		}
		fmt.Fprintf(w, "  - %s\n", name)
	}
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
