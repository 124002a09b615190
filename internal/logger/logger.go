package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// PrettyHandler writes one coloured line per record for terminal use.
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = red, "ERR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = yellow, "WRN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = green, "INF"
	default:
		levelColor, levelText = gray, "DBG"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, r.Time.Format("15:04:05"), reset,
		levelColor, levelText, reset,
		r.Message,
	)

	for _, a := range h.attrs {
		h.writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(h.qualify(a))
		return true
	})

	_, err := fmt.Fprintln(h.w)
	return err
}

func (h *PrettyHandler) writeAttr(a slog.Attr) {
	fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
}

// qualify prefixes the key with the groups open at the time of the call.
func (h *PrettyHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.qualify(a))
	}
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		name = next.group + "." + name
	}
	next.group = name
	return &next
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithWriter builds a logger writing to w. format "json" selects the JSON
// handler, anything else the pretty handler.
func NewWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = NewPrettyHandler(w, level)
	}
	return slog.New(handler)
}

// New configures a logger from LOG_FORMAT and LOG_LEVEL, writes to stderr so
// command output on stdout stays clean, and installs it as the default.
func New() *slog.Logger {
	log := NewWithWriter(os.Stderr, os.Getenv("LOG_FORMAT"), ParseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(log)
	return log
}
