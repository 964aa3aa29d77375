// Package errors provides error handling conventions for the atheme CLI.
//
// It re-exports the cockroachdb/errors helpers used throughout the module so
// callers need a single import for wrapping, marking, and inspection:
//
//	if errors.Is(err, theme.ErrColorSchemeNotAvailable) {
//	    // suggest a close match
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown theme, malformed config, etc.)
//   - ExitSystem (2): System-related error (I/O, missing home directory, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion. The CLI layer builds one per failure and main renders it:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Fprintln(os.Stderr, exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
