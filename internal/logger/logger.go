// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package logger provides the loggo backed implementation of
// core/logger.Logger.
package logger

import (
	"github.com/juju/loggo/v2"

	corelogger "github.com/canonical/dynamoexport/core/logger"
)

// GetLogger returns a logger with the given module name, creating it if
// necessary. Names are dotted paths rooted at "dynamoexport".
func GetLogger(name string) corelogger.Logger {
	return loggoLogger{loggo.GetLogger(name)}
}

// ConfigureLoggers adjusts logger levels from a loggo specification such
// as "<root>=INFO;dynamoexport.exporter=DEBUG". An empty specification is
// a no-op, so callers can pass an unset environment variable straight in.
func ConfigureLoggers(spec string) error {
	return loggo.ConfigureLoggers(spec)
}

type loggoLogger struct {
	loggo.Logger
}

// Child is part of core/logger.Logger.
func (l loggoLogger) Child(name string) corelogger.Logger {
	return loggoLogger{l.Logger.Child(name)}
}
