// Package logging provides the hierarchical logger used across the engine.
//
// Subsystems never construct their own logger; they receive one derived
// from a parent via With and add their own name to it, mirroring the way
// every other engine subsystem is wired to the root logger.
package logging

import (
	"io"
	"os"

	"github.com/go-kit/log"
)

// New builds the root logger. Output is logfmt, one line per call, with a
// UTC timestamp prepended to every line.
func New(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// NewStderr builds the root logger writing to os.Stderr.
func NewStderr() log.Logger {
	return New(os.Stderr)
}

// Discard is a logger that drops everything, used in tests and in
// contexts that don't care about diagnostic output.
var Discard = log.NewNopLogger()

// WithSubsystem derives a child logger scoped to the named subsystem, the
// Go analogue of a parent logger's "new child with context" call.
func WithSubsystem(parent log.Logger, name string) log.Logger {
	return log.With(parent, "subsystem", name)
}
