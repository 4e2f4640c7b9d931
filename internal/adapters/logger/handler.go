// Package logger implements weft.Logger using log/slog with a colorized,
// task-oriented text handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"go.weft.dev/weft/internal/ui/output"
	"go.weft.dev/weft/internal/ui/style"
)

// PrettyHandler renders one line per record in the required diagnostic
// format: "[TIMESTAMP] LEVEL  <task name>: <message>", colored by level.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
}

// NewPrettyHandler creates a handler writing to w (stderr if nil).
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	levelVar := &slog.LevelVar{}
	levelVar.Set(level)
	return &PrettyHandler{out: output.New(w), level: levelVar}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var color termenv.Color
	msg := r.Message
	switch r.Level {
	case slog.LevelWarn:
		msg = style.Warning + " " + msg
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		msg = style.NotReady + " " + msg
		color = termenv.RGBColor(string(style.Red))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	task := "-"
	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	appendAttr := func(a slog.Attr) {
		if a.Key == "task" {
			task = a.Value.String()
			return
		}
		attrParts = append(attrParts, a.Key+"="+a.Value.String())
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool { appendAttr(a); return true })

	line := fmt.Sprintf("[%s] %-5s %s: %s", r.Time.Format("15:04:05.000"), r.Level, task, msg)
	if len(attrParts) > 0 {
		line += " " + strings.Join(attrParts, " ")
	}

	styled := h.out.String(line).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	copy(merged[len(h.attrs):], attrs)
	return &PrettyHandler{out: h.out, level: h.level, attrs: merged}
}

func (h *PrettyHandler) WithGroup(string) slog.Handler { return h }
