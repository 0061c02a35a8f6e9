package errors

import (
	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes errors to a zerolog logger.
type LogHandler struct {
	// Logger receives the error records.
	Logger zerolog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger zerolog.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// HandleError logs a DOMError.
func (h *LogHandler) HandleError(err *DOMError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("op", err.Op).
		Err(err.Err)
	if h.Verbose {
		ev = ev.Str("kind", err.Kind.String()).Time("at", err.Timestamp)
	}
	ev.Msg("dom error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("kind", KindPanic.String()).
		Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
