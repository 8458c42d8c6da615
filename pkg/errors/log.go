package errors

import (
	"log/slog"
)

// LogHandler is a Handler that logs through log/slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default().With("component", "leego")
}

// HandleError logs a LeeGoError at error level.
func (h *LogHandler) HandleError(err *LeeGoError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Brick != "" {
		attrs = append(attrs, "brick", err.Brick)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("leego error", attrs...)
}

// HandleViolation logs a ContractError at error level.
func (h *LogHandler) HandleViolation(err *ContractError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "message", err.Message}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("leego contract violation", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"value", err.Value}
	if err.Op != "" {
		attrs = append(attrs, "op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("leego panic", attrs...)
}
