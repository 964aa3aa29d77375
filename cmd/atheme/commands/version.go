package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/atheme/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of atheme.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printVersion(os.Stdout)
	},
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "atheme version %s\n", cmd.Version)
	fmt.Fprintf(w, "  commit:    %s\n", cmd.Commit)
	fmt.Fprintf(w, "  built:     %s\n", cmd.Date)
	fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
}
