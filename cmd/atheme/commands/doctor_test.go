package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/atheme/internal/doctor"
	"github.com/thoreinstein/atheme/internal/errors"
)

func TestDoctor_Healthy(t *testing.T) {
	path := setupTest(t)
	doctorAll = true

	var buf bytes.Buffer
	if err := runDoctorWithWriter(&buf, &doctor.Target{Explicit: path}); err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	out := buf.String()
	for _, s := range []string{"[config] config-location: using " + path, "active theme gruvbox_light", "Summary: 5 passed, 0 info, 0 warnings, 0 errors"} {
		if !strings.Contains(out, s) {
			t.Errorf("doctor output missing %q:\n%s", s, out)
		}
	}
}

func TestDoctor_ErrorsOnly(t *testing.T) {
	setupTest(t)
	path := filepath.Join(t.TempDir(), "alacritty.yml")
	if err := os.WriteFile(path, []byte("color_schemes: {a: {}}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runDoctorWithWriter(&buf, &doctor.Target{Explicit: path})
	if !errors.Is(err, errDoctorErrors) || errors.ExitCode(err) != errors.ExitSystem {
		t.Fatalf("doctor error = %v (code %d), want errors exit", err, errors.ExitCode(err))
	}
	out := buf.String()
	if strings.Contains(out, "config-location") {
		t.Errorf("passed checks should be hidden without --all:\n%s", out)
	}
	if !strings.Contains(out, "active-theme") || !strings.Contains(out, "hint:") {
		t.Errorf("doctor output:\n%s", out)
	}
}

func TestDoctor_Warnings(t *testing.T) {
	setupTest(t)
	path := filepath.Join(t.TempDir(), "alacritty.yml")
	if err := os.WriteFile(path, []byte("color_schemes: {a: &a {}, my-theme: {}}\ncolors: *a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runDoctorWithWriter(&bytes.Buffer{}, &doctor.Target{Explicit: path})
	if !errors.Is(err, errDoctorWarnings) || errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("doctor error = %v, want warnings exit", err)
	}
}

func TestDoctor_JSON(t *testing.T) {
	path := setupTest(t)
	doctorJSON = true

	var buf bytes.Buffer
	if err := runDoctorWithWriter(&buf, &doctor.Target{Explicit: path}); err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	if !strings.Contains(buf.String(), `"status": "pass"`) || !strings.Contains(buf.String(), `"summary"`) {
		t.Errorf("doctor JSON:\n%s", buf.String())
	}
}

func TestEdit(t *testing.T) {
	path := setupTest(t)

	var opened string
	openEditor = func(p string) error {
		opened = p
		return nil
	}

	if _, err := execute(t, "edit", "-c", path); err != nil {
		t.Fatalf("edit error = %v", err)
	}
	if opened != path {
		t.Errorf("editor opened %q, want %q", opened, path)
	}
}

func TestEdit_Failures(t *testing.T) {
	path := setupTest(t)

	_, err := execute(t, "edit", "-c", path)
	if errors.ExitCode(err) != errors.ExitSystem {
		t.Errorf("editor failure error = %v, want system error", err)
	}

	_, err = execute(t, "edit", "-c", filepath.Join(t.TempDir(), "missing.yml"))
	if errors.ExitCode(err) != errors.ExitSystem {
		t.Errorf("missing file error = %v, want system error", err)
	}
}

func TestConfigEdit_CreatesSettings(t *testing.T) {
	setupTest(t)

	var opened string
	openEditor = func(p string) error {
		opened = p
		return nil
	}

	if _, err := execute(t, "config", "edit"); err != nil {
		t.Fatalf("config edit error = %v", err)
	}
	want := filepath.Join(os.Getenv("ATHEME_CONFIG_DIR"), "config.yaml")
	if opened != want {
		t.Errorf("editor opened %q, want %q", opened, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}
