package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/internal/doctor"
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/theme"
)

var (
	doctorJSON    bool
	doctorAll bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show passed checks too")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config problems",
	Long: `Check that atheme can switch themes in your Alacritty config: the file
is found and writable, color_schemes is a mapping of switchable names, and
exactly one "colors: *<theme>" line points at a declared scheme.

Exit codes:
  0 - All checks passed
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  atheme doctor
  atheme doctor --all
  atheme doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("doctor found errors")

func runDoctor(_ *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return classify(err)
	}
	return runDoctorWithWriter(os.Stdout, &doctor.Target{Explicit: path, Locator: theme.NewLocator(nil)})
}

// runDoctorWithWriter allows injecting a target and writer for testing.
func runDoctorWithWriter(w io.Writer, target *doctor.Target) error {
	runner := doctor.NewRunner()
	for _, c := range doctor.DefaultChecks(settingsErr, target) {
		runner.AddCheck(c)
	}
	report := runner.Run()

	if doctorJSON {
		if err := outputJSON(w, report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else if !quiet {
		outputDoctorText(w, report, doctorAll)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report, showAll bool) {
	hint := style(w, color.FgHiBlack)

	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(w, result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintln(w, hint.Sprint("  hint: "+result.FixHint))
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(w io.Writer, s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return style(w, color.FgGreen).Sprint("✓")
	case doctor.SeverityInfo:
		return style(w, color.FgCyan).Sprint("ℹ")
	case doctor.SeverityWarning:
		return style(w, color.FgYellow).Sprint("⚠")
	case doctor.SeverityError:
		return style(w, color.FgRed).Sprint("✗")
	default:
		return "?"
	}
}
