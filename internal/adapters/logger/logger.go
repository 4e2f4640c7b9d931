package logger

import (
	"context"
	"io"
	"log/slog"

	"go.weft.dev/weft"
)

// Logger implements weft.Logger using log/slog with PrettyHandler.
type Logger struct {
	logger *slog.Logger
}

var _ weft.Logger = (*Logger)(nil)

// New creates a Logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{logger: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) { l.logger.DebugContext(ctx, msg, args...) }
func (l *Logger) Info(ctx context.Context, msg string, args ...any)  { l.logger.InfoContext(ctx, msg, args...) }
func (l *Logger) Warn(ctx context.Context, msg string, args ...any)  { l.logger.WarnContext(ctx, msg, args...) }
func (l *Logger) Error(ctx context.Context, msg string, args ...any) { l.logger.ErrorContext(ctx, msg, args...) }
