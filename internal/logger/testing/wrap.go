// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package testing bridges core/logger.Logger onto a test log, so that
// output from code under test lands in the test's own output.
package testing

import (
	corelogger "github.com/canonical/dynamoexport/core/logger"
)

// CheckLog is implemented by *gc.C.
type CheckLog interface {
	Logf(format string, args ...any)
}

// WrapCheckLog returns a Logger that writes to the given test log.
func WrapCheckLog(log CheckLog) corelogger.Logger {
	return checkLogger{log: log}
}

type checkLogger struct {
	log CheckLog
}

func (c checkLogger) Errorf(msg string, args ...any) {
	c.log.Logf("ERROR: "+msg, args...)
}

func (c checkLogger) Warningf(msg string, args ...any) {
	c.log.Logf("WARNING: "+msg, args...)
}

func (c checkLogger) Infof(msg string, args ...any) {
	c.log.Logf("INFO: "+msg, args...)
}

func (c checkLogger) Debugf(msg string, args ...any) {
	c.log.Logf("DEBUG: "+msg, args...)
}

func (c checkLogger) Tracef(msg string, args ...any) {
	c.log.Logf("TRACE: "+msg, args...)
}

func (c checkLogger) IsTraceEnabled() bool {
	return true
}

func (c checkLogger) Child(string) corelogger.Logger {
	return c
}
