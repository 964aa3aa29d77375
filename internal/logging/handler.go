package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler implements slog.Handler for terminal text output.
// Levels and keys are colorized when the writer supports it.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string

	useColor   bool
	timeColor  *color.Color
	traceColor *color.Color
	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	keyColor   *color.Color
}

// NewHandler creates a new terminal text handler.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts:     *opts,
		out:      out,
		mu:       &sync.Mutex{},
		useColor: SupportsColor(out),
	}

	if h.useColor {
		h.timeColor = enabled(color.New(color.FgHiBlack))
		h.traceColor = enabled(color.New(color.FgBlue))
		h.debugColor = enabled(color.New(color.FgMagenta))
		h.infoColor = enabled(color.New(color.FgGreen))
		h.warnColor = enabled(color.New(color.FgYellow))
		h.errorColor = enabled(color.New(color.FgRed, color.Bold))
		h.keyColor = enabled(color.New(color.FgCyan))
	}

	return h
}

// enabled forces color on; the handler already checked the writer, while
// fatih/color only inspects stdout.
func enabled(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes one line: time, level, message, attributes.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(h.paint(h.timeColor, r.Time.Format(time.Kitchen)))
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "%-5s ", h.paint(h.levelColor(r.Level), levelName(r.Level)))
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&b, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, a, h.prefix)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return h.errorColor
	case level >= slog.LevelWarn:
		return h.warnColor
	case level >= slog.LevelInfo:
		return h.infoColor
	case level >= slog.LevelDebug:
		return h.debugColor
	default:
		return h.traceColor
	}
}

func levelName(level slog.Level) string {
	if level < slog.LevelDebug {
		return "TRACE"
	}
	return level.String()
}

func (h *Handler) paint(c *color.Color, s string) string {
	if !h.useColor || c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) appendAttr(b *strings.Builder, a slog.Attr, prefix string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(b, ga, groupPrefix)
		}
		return
	}

	fmt.Fprintf(b, " %s=%v", h.paint(h.keyColor, prefix+a.Key), a.Value.Any())
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler whose subsequent keys are prefixed
// with name and a dot.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}
