package cmd

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	loomerrors "github.com/go-drift/loom/pkg/errors"
)

// newLogger creates a new logger with timestamp formatting. The logger
// writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package. Using a
// distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx. If no logger is
// attached, it returns log.Default(), so commands always have a valid
// logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// errorLogHandler adapts the CLI logger to the toolkit's error handler, so
// errors reported by library code (bundled font loading, label measurement)
// reach the terminal through the same logger as command output.
type errorLogHandler struct {
	logger *log.Logger
}

func (h *errorLogHandler) HandleError(err *loomerrors.LoomError) {
	if err == nil {
		return
	}
	args := []any{"kind", err.Kind.String()}
	if err.Path != "" {
		args = append(args, "path", err.Path)
	}
	args = append(args, "err", err.Err)
	h.logger.Error(err.Op, args...)
}

func (h *errorLogHandler) HandlePanic(err *loomerrors.PanicError) {
	if err == nil {
		return
	}
	h.logger.Error("panic", "op", err.Op, "value", err.Value)
}
