package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
	"github.com/thoreinstein/atheme/internal/theme"
)

var changeDryRun bool

// Tests replace these to drive the interactive path.
var (
	pickTheme       = pickThemeInteractive
	stdinIsTerminal = logging.IsInteractive
)

func init() {
	changeCmd.Flags().BoolVar(&changeDryRun, "dry-run", false,
		"show the line that would change without writing the file")
	rootCmd.AddCommand(changeCmd)
}

var changeCmd = &cobra.Command{
	Use:     "change [theme]",
	Aliases: []string{"set", "use"},
	Short:   "Switch the active theme",
	Long: `Switch the active theme by rewriting the "colors: *<name>" line and
saving the file. The theme must be declared under color_schemes; nothing is
written otherwise.

Without a theme name on a terminal, pick one interactively. The preview
shows the scheme's colors.`,
	Example: `  # Switch theme
  atheme change gruvbox_dark

  # Pick interactively
  atheme change

  # Show what would change
  atheme change gruvbox_dark --dry-run

See Also: atheme list, atheme current`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeThemes,
	RunE:              runChange,
}

func runChange(cmd *cobra.Command, args []string) error {
	return runChangeWithWriter(cmd, args, os.Stdout)
}

// runChangeWithWriter allows injecting a writer for testing.
func runChangeWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		if !stdinIsTerminal(cmd.InOrStdin()) {
			return errors.NewUserError(
				errors.Wrap(errors.ErrMissingArgument, "theme name required"),
				"Pass a theme name; 'atheme list' shows them")
		}
		picked, ok, err := pickTheme(s)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		name = picked
	}

	previous := s.Current()
	if err := s.Change(name); err != nil {
		return classifyUnknownTheme(err, name, s.Themes())
	}

	if changeDryRun {
		outputChangeDiff(w, s.Path(), previous, name)
		return nil
	}

	if !s.Modified() {
		if !quiet {
			fmt.Fprintf(w, "Theme is already %s\n", name)
		}
		return nil
	}

	if err := s.Save(); err != nil {
		return classify(err)
	}

	if !quiet {
		ok := style(w, color.FgGreen)
		fmt.Fprintf(w, "%s %s in %s\n", ok.Sprint("Changed theme to"), name, s.Path())
	}
	return nil
}

// outputChangeDiff prints the active line before and after a change.
func outputChangeDiff(w io.Writer, path string, previous []string, name string) {
	del := style(w, color.FgRed)
	add := style(w, color.FgGreen)

	fmt.Fprintf(w, "%s\n", path)
	for _, p := range previous {
		fmt.Fprintln(w, del.Sprint("- "+theme.Line(p)))
	}
	fmt.Fprintln(w, add.Sprint("+ "+theme.Line(name)))
}

// pickThemeInteractive opens a fuzzy finder over the declared themes. The
// second result is false when the user aborts.
func pickThemeInteractive(s *theme.Session) (string, bool, error) {
	themes := s.Themes()
	if len(themes) == 0 {
		return "", false, classify(theme.ErrColorSchemesMissing)
	}
	current := strings.Join(s.Current(), ", ")

	idx, err := fuzzyfinder.Find(
		themes,
		func(i int) string {
			return themes[i]
		},
		fuzzyfinder.WithHeader("current: "+current),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			out, err := s.Export(themes[i])
			if err != nil {
				return err.Error()
			}
			return string(out)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "interactive selection failed")
	}
	return themes[idx], true, nil
}

// completeThemes offers the declared theme names for shell completion.
func completeThemes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	path, err := configPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := theme.Load(path, theme.WithLogger(logging.NewDiscard()))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return s.Themes(), cobra.ShellCompDirectiveNoFileComp
}
