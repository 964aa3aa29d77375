// Package main is the entry point for the atheme CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/atheme/cmd/atheme/commands"
	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/logging"
)

func main() {
	err := commands.Execute()
	if err != nil {
		report(err)
	}
	os.Exit(errors.ExitCode(err))
}

// report prints err and any suggestion it carries to stderr.
func report(err error) {
	label := color.New(color.FgRed, color.Bold)
	hint := color.New(color.FgYellow)
	if logging.SupportsColor(os.Stderr) {
		label.EnableColor()
		hint.EnableColor()
	} else {
		label.DisableColor()
		hint.DisableColor()
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", label.Sprint("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, hint.Sprint(exitErr.Suggestion))
	}
}
