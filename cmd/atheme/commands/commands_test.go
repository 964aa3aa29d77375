package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/theme"
)

const testConfig = `# terminal settings
font:
  size: 11.0

color_schemes:
  gruvbox_light: &gruvbox_light
    primary:
      background: '0xfbf1c7'
  gruvbox_dark: &gruvbox_dark
    primary:
      background: '0x282828'
  nord: &nord
    primary:
      background: '0x2e3440'

colors: *gruvbox_light # active
`

// setupTest isolates settings and flag state and returns the path of a
// fresh Alacritty config.
func setupTest(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ATHEME_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	os.Unsetenv("ATHEME_CONFIG_FILE")
	os.Unsetenv("ATHEME_DEBUG")

	origPick, origTerminal, origEditor := pickTheme, stdinIsTerminal, openEditor
	reset := func() {
		configFile, verbosity, quiet, logFormat, logFile = "", 0, false, "text", ""
		listJSON, currentJSON, changeDryRun = false, false, false
		doctorJSON, doctorAll = false, false
		settingsErr = nil
	}
	t.Cleanup(func() {
		reset()
		pickTheme, stdinIsTerminal, openEditor = origPick, origTerminal, origEditor
	})
	reset()
	openEditor = func(string) error { return errors.New("no editor in tests") }
	stdinIsTerminal = func(io.Reader) bool { return false }

	path := filepath.Join(t.TempDir(), "alacritty.yml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// captureStdout captures stdout during function execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Go(func() {
		_, _ = io.Copy(&buf, r)
	})

	fn()

	w.Close()
	os.Stdout = oldStdout
	wg.Wait()

	return buf.String()
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var err error
	out := captureStdout(t, func() {
		rootCmd.SetArgs(args)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetIn(strings.NewReader(""))
		err = rootCmd.Execute()
	})
	return out, err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestList(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "list", "-c", path)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	want := "Available themes:\n  - gruvbox_light (active)\n  - gruvbox_dark\n  - nord\n"
	if out != want {
		t.Errorf("list output:\n%s\nwant:\n%s", out, want)
	}
}

func TestList_JSON(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "list", "--json", "--config-file", path)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, s := range []string{`"themes": [`, `"nord"`, `"current": [`, `"path": "` + path + `"`} {
		if !strings.Contains(out, s) {
			t.Errorf("JSON output missing %s:\n%s", s, out)
		}
	}
}

func TestCurrent(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "current", "-c", path)
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if out != "Current theme:\n  - gruvbox_light\n" {
		t.Errorf("current output = %q", out)
	}
}

func TestOutputCurrent_Multiple(t *testing.T) {
	var buf bytes.Buffer
	outputCurrent(&buf, []string{"a", "b"})
	if buf.String() != "Current theme:\n  - a\n  - b\n" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	outputCurrent(&buf, nil)
	if !strings.Contains(buf.String(), "no 'colors: *<theme>' line found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestChange(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "change", "gruvbox_dark", "-c", path)
	if err != nil {
		t.Fatalf("change error = %v", err)
	}
	if !strings.Contains(out, "Changed theme to gruvbox_dark in "+path) {
		t.Errorf("change output = %q", out)
	}

	want := strings.Replace(testConfig, "colors: *gruvbox_light # active", "colors: *gruvbox_dark # active", 1)
	if got := readFile(t, path); got != want {
		t.Errorf("file after change:\n%s\nwant:\n%s", got, want)
	}
}

func TestChange_Sequence(t *testing.T) {
	path := setupTest(t)

	for _, name := range []string{"gruvbox_dark", "nord", "gruvbox_light"} {
		if _, err := execute(t, "change", name, "-c", path); err != nil {
			t.Fatalf("change %s error = %v", name, err)
		}
		out, err := execute(t, "current", "-c", path)
		if err != nil {
			t.Fatal(err)
		}
		if out != "Current theme:\n  - "+name+"\n" {
			t.Errorf("after change %s, current = %q", name, out)
		}
	}
	if got := readFile(t, path); got != testConfig {
		t.Error("returning to the first theme should restore the original bytes")
	}
}

func TestChange_UnknownTheme(t *testing.T) {
	path := setupTest(t)

	_, err := execute(t, "change", "non_existent", "-c", path)
	if !errors.Is(err, theme.ErrColorSchemeNotAvailable) {
		t.Fatalf("change error = %v, want ErrColorSchemeNotAvailable", err)
	}
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", code, errors.ExitUser)
	}
	if got := readFile(t, path); got != testConfig {
		t.Error("failed change modified the file")
	}
}

func TestChange_Suggestion(t *testing.T) {
	path := setupTest(t)

	_, err := execute(t, "change", "light", "-c", path)
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("change error = %v, want ExitError", err)
	}
	if !strings.Contains(exitErr.Suggestion, "gruvbox_light") {
		t.Errorf("suggestion = %q, want gruvbox_light", exitErr.Suggestion)
	}
}

func TestChange_DryRun(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "change", "nord", "--dry-run", "-c", path)
	if err != nil {
		t.Fatalf("change error = %v", err)
	}
	for _, s := range []string{"- colors: *gruvbox_light", "+ colors: *nord"} {
		if !strings.Contains(out, s) {
			t.Errorf("dry-run output missing %q:\n%s", s, out)
		}
	}
	if got := readFile(t, path); got != testConfig {
		t.Error("dry run modified the file")
	}
}

func TestChange_AlreadyActive(t *testing.T) {
	path := setupTest(t)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "change", "gruvbox_light", "-c", path)
	if err != nil {
		t.Fatalf("change error = %v", err)
	}
	if !strings.Contains(out, "already gruvbox_light") {
		t.Errorf("output = %q", out)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(before, after) {
		t.Error("file was rewritten for a no-op change")
	}
}

func TestChange_MissingArgument(t *testing.T) {
	path := setupTest(t)

	_, err := execute(t, "change", "-c", path)
	if !errors.Is(err, errors.ErrMissingArgument) {
		t.Errorf("change error = %v, want ErrMissingArgument", err)
	}
}

func TestChange_Interactive(t *testing.T) {
	path := setupTest(t)
	stdinIsTerminal = func(io.Reader) bool { return true }

	var offered []string
	pickTheme = func(s *theme.Session) (string, bool, error) {
		offered = s.Themes()
		return "nord", true, nil
	}

	if _, err := execute(t, "change", "-c", path); err != nil {
		t.Fatalf("change error = %v", err)
	}
	if len(offered) != 3 {
		t.Errorf("picker offered %v", offered)
	}
	if !strings.Contains(readFile(t, path), "colors: *nord # active") {
		t.Error("picked theme was not written")
	}
}

func TestChange_InteractiveAbort(t *testing.T) {
	path := setupTest(t)
	stdinIsTerminal = func(io.Reader) bool { return true }
	pickTheme = func(*theme.Session) (string, bool, error) { return "", false, nil }

	if _, err := execute(t, "change", "-c", path); err != nil {
		t.Fatalf("change error = %v", err)
	}
	if got := readFile(t, path); got != testConfig {
		t.Error("aborted pick modified the file")
	}
}

func TestChange_ConfigFileSetting(t *testing.T) {
	path := setupTest(t)
	t.Setenv("ATHEME_CONFIG_FILE", path)

	if _, err := execute(t, "change", "nord"); err != nil {
		t.Fatalf("change error = %v", err)
	}
	if !strings.Contains(readFile(t, path), "colors: *nord") {
		t.Error("ATHEME_CONFIG_FILE was not used")
	}
}

func TestLoad_NotFound(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "list")
	if !errors.Is(err, theme.ErrConfigurationNotFound) {
		t.Fatalf("list error = %v, want ErrConfigurationNotFound", err)
	}
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", code, errors.ExitUser)
	}
}

func TestLoad_ExplicitMissing(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "list", "-c", filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, theme.ErrIO) {
		t.Fatalf("list error = %v, want ErrIO", err)
	}
	if code := errors.ExitCode(err); code != errors.ExitSystem {
		t.Errorf("exit code = %d, want %d", code, errors.ExitSystem)
	}
}

func TestLoad_Discovered(t *testing.T) {
	path := setupTest(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "alacritty")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(path, filepath.Join(dir, "alacritty.yml")); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "current")
	if err != nil {
		t.Fatalf("current error = %v", err)
	}
	if !strings.Contains(out, "gruvbox_light") {
		t.Errorf("current output = %q", out)
	}
}

func TestExport(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "export", "nord", "-c", path)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "[colors.primary]") || !strings.Contains(out, "0x2e3440") {
		t.Errorf("export output:\n%s", out)
	}

	_, err = execute(t, "export", "solarized", "-c", path)
	if !errors.Is(err, theme.ErrColorSchemeNotAvailable) {
		t.Errorf("export error = %v, want ErrColorSchemeNotAvailable", err)
	}
}

func TestWhere(t *testing.T) {
	path := setupTest(t)

	out, err := execute(t, "where", "-c", path)
	if err != nil {
		t.Fatalf("where error = %v", err)
	}
	if !strings.Contains(out, path+" (--config-file)") {
		t.Errorf("where output:\n%s", out)
	}
	if !strings.Contains(out, "4. ") || !strings.Contains(out, ".alacritty.yml  missing") {
		t.Errorf("where should list every candidate:\n%s", out)
	}
}

func TestWhere_NotFound(t *testing.T) {
	setupTest(t)

	out, err := execute(t, "where")
	if err != nil {
		t.Fatalf("where error = %v", err)
	}
	if !strings.Contains(out, "(not found)") {
		t.Errorf("where output:\n%s", out)
	}
}

func TestCompleteThemes(t *testing.T) {
	path := setupTest(t)
	configFile = path

	got, directive := completeThemes(&cobra.Command{}, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}
	if strings.Join(got, ",") != "gruvbox_light,gruvbox_dark,nord" {
		t.Errorf("completions = %v", got)
	}

	if got, _ := completeThemes(&cobra.Command{}, []string{"nord"}, ""); got != nil {
		t.Errorf("second argument completions = %v, want none", got)
	}
}
