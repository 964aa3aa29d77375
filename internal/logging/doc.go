// Package logging provides structured logging for atheme using slog.
//
// Log records go to stderr so they never mix with command output on stdout.
// The text handler colorizes levels when stderr is a terminal; JSON output is
// available for scripting and for the --log-file sink.
//
//	logger := logging.New(logging.Config{Level: slog.LevelInfo})
//	logger.Warn("skipping color scheme with non-string key", "key", "1")
//
// Tests use [ForTest] so records show up only on failure or with -v.
package logging
