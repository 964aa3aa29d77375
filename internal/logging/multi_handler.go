package logging

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/atheme/internal/errors"
)

// MultiHandler fans records out to several sinks. The CLI pairs the stderr
// handler with the JSON --log-file handler; each sink keeps its own level.
type MultiHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler returns a handler writing to every sink in order.
func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

// Enabled is true if at least one sink accepts level, so a verbose log file
// still receives records the terminal filters out.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle writes r to each sink that accepts its level. A failing sink does
// not stop the others; all failures are returned together.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, r.Level) {
			continue
		}
		if err := sink.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs applies attrs to every sink.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

// WithGroup opens group name on every sink.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.each(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

func (h *MultiHandler) each(fn func(slog.Handler) slog.Handler) *MultiHandler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		sinks[i] = fn(sink)
	}
	return NewMultiHandler(sinks...)
}
