package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("theme changed", "from", "gruvbox_light", "to", "gruvbox_dark")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "theme changed" {
		t.Errorf("msg = %v, want 'theme changed'", parsed["msg"])
	}
	if parsed["to"] != "gruvbox_dark" {
		t.Errorf("to = %v, want 'gruvbox_dark'", parsed["to"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("loaded config", "path", "/tmp/alacritty.yml")

	output := buf.String()
	if json.Valid(buf.Bytes()) {
		t.Errorf("text output should not be JSON: %s", output)
	}
	if !strings.Contains(output, "path=/tmp/alacritty.yml") {
		t.Errorf("output missing attribute: %s", output)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Info record should be filtered at Warn: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("Warn record missing: %s", output)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic
	logger.Error("nowhere")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContext(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext() did not return the stored logger")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext() without a logger should return slog.Default()")
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("ForTest() logger should enable Trace")
	}
	logger.Debug("visible with -v")
}
