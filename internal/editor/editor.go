// Package editor launches the user's preferred text editor on a file.
package editor

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/atheme/internal/errors"
)

// Streams are the terminal the editor runs on.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open launches the editor on path attached to the process terminal and
// waits for it to exit.
func Open(path string) error {
	return OpenWith(path, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// OpenWith is Open with explicit streams.
func OpenWith(path string, s Streams) error {
	name, args := Command()
	slog.Debug("launching editor", "editor", name, "args", args, "path", path)

	cmd := exec.Command(name, append(args, path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Command returns the editor program and any arguments configured with it,
// so EDITOR="code --wait" works.
func Command() (string, []string) {
	fields := strings.Fields(detectEditor())
	if len(fields) == 0 {
		return "vi", nil
	}
	return fields[0], fields[1:]
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $VISUAL → $EDITOR → nano → vi
func detectEditor() string {
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
