package errors

import (
	"fmt"
	"os"
)

// LogHandler is the default [ErrorHandler]. It writes each reported error
// and panic to stderr as a single line, adding captured stack traces when
// Verbose is set.
type LogHandler struct {
	Verbose bool
}

// HandleError writes a reported error to stderr.
func (h *LogHandler) HandleError(err *LoomError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "loom: %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintln(os.Stderr, err.StackTrace)
	}
}

// HandlePanic writes a recovered panic to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "loom: %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintln(os.Stderr, err.StackTrace)
	}
}
