// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package logger defines the logging interface consumed by the rest of
// the repository. The implementation lives in internal/logger.
package logger

// Logger is the interface used to write log messages.
type Logger interface {
	// Errorf logs a message at error level.
	Errorf(msg string, args ...any)

	// Warningf logs a message at warning level.
	Warningf(msg string, args ...any)

	// Infof logs a message at info level.
	Infof(msg string, args ...any)

	// Debugf logs a message at debug level.
	Debugf(msg string, args ...any)

	// Tracef logs a message at trace level.
	Tracef(msg string, args ...any)

	// IsTraceEnabled reports whether trace messages would be emitted.
	IsTraceEnabled() bool

	// Child returns a logger whose name has the given suffix appended.
	Child(name string) Logger
}
