// Package debug provides conditional debug logging for slidemd.
//
// Debug logging is enabled by setting the SLIDEMD_DEBUG environment
// variable:
//
//	SLIDEMD_DEBUG=1 slidemd talk.md 2>debug.log
//
// When enabled, messages are written to stderr with timestamps; redirect
// stderr to a file to keep them off the presentation screen. When disabled
// (default), every call is a no-op.
package debug

import (
	"log"
	"os"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("SLIDEMD_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[SLIDEMD] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	return enabled
}

// SetEnabled switches debug logging programmatically, initializing the
// logger when needed.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[SLIDEMD] ", log.Ltime|log.Lmicroseconds)
	}
}

// Log writes a printf-style debug message if debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}
