package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

const (
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// ColorHandler wraps a slog handler and colors records by level when the
// output is a terminal.
type ColorHandler struct {
	slog.Handler
	out       io.Writer
	isColored bool
}

// NewColorHandler wraps a text (pretty) or JSON handler over out.
func NewColorHandler(out io.Writer, opts *slog.HandlerOptions, pretty bool) *ColorHandler {
	isColored := false
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isColored = true
	}

	var inner slog.Handler
	if pretty {
		inner = slog.NewTextHandler(out, opts)
	} else {
		inner = slog.NewJSONHandler(out, opts)
	}

	return &ColorHandler{Handler: inner, out: out, isColored: isColored}
}

func (h *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.isColored {
		return h.Handler.Handle(ctx, r)
	}

	if color := levelColor(r.Level); color != "" {
		_, _ = io.WriteString(h.out, color)
		defer func() { _, _ = io.WriteString(h.out, colorReset) }()
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs and WithGroup keep the coloring on derived loggers.
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ColorHandler{Handler: h.Handler.WithAttrs(attrs), out: h.out, isColored: h.isColored}
}

func (h *ColorHandler) WithGroup(name string) slog.Handler {
	return &ColorHandler{Handler: h.Handler.WithGroup(name), out: h.out, isColored: h.isColored}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level < slog.LevelInfo:
		return colorBlue
	default:
		return ""
	}
}
