package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.weft.dev/weft/internal/adapters/logger"
)

func TestPrettyHandlerMarksWarnAndError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h)

	lg.Warn("not ready")
	lg.Error("blew up")

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "!")
	assert.Contains(t, string(lines[1]), "✖")
}

func TestPrettyHandlerIncludesTaskAttr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h)

	lg.Info("requirement not ready", "task", "steeped-tea", "requirements", "✖ steeping-tea")

	out := buf.String()
	assert.Contains(t, out, "steeped-tea")
	assert.Contains(t, out, "requirements=✖ steeping-tea")
}

func TestPrettyHandlerWithAttrsAccumulates(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}).
		WithAttrs([]slog.Attr{slog.String("run", "1")})
	lg := slog.New(h)

	lg.Info("hello", "task", "t")

	assert.Contains(t, buf.String(), "run=1")
}

func TestPrettyHandlerWithGroupIsNoOp(t *testing.T) {
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	require.Same(t, h, h.WithGroup("g"))
}

func TestPrettyHandlerNilWriterDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo})
	})
}
