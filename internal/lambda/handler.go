// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package lambda adapts the export trigger to the scheduled-function
// invocation model: event in, result record out. The event payload
// carries nothing this system uses; the schedule itself is the trigger.
package lambda

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/canonical/dynamoexport/core/export"
	corelogger "github.com/canonical/dynamoexport/core/logger"
	"github.com/canonical/dynamoexport/internal/config"
	"github.com/canonical/dynamoexport/internal/ddbclient"
	"github.com/canonical/dynamoexport/internal/exporter"
)

// ExportTrigger is the part of the exporter the handler drives.
type ExportTrigger interface {
	StartExport(ctx context.Context) (export.Job, error)
}

// Result is the invocation result record returned to the scheduler.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ExportARN  string `json:"exportArn,omitempty"`
	ExportTime string `json:"exportTime,omitempty"`
	S3Location string `json:"s3Location,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Handler handles scheduled invocations.
type Handler struct {
	trigger ExportTrigger
	logger  corelogger.Logger
}

// NewHandler returns a Handler driving the given trigger.
func NewHandler(trigger ExportTrigger, logger corelogger.Logger) (*Handler, error) {
	if trigger == nil {
		return nil, errors.NotValidf("nil trigger")
	}
	if logger == nil {
		return nil, errors.NotValidf("nil Logger")
	}
	return &Handler{trigger: trigger, logger: logger}, nil
}

// NewHandlerFromEnviron wires a Handler from the process environment and
// the default AWS credential chain. Called once per cold start.
func NewHandlerFromEnviron(ctx context.Context, logger corelogger.Logger) (*Handler, error) {
	cfg, err := config.FromEnviron(os.Getenv)
	if err != nil {
		return nil, errors.Trace(err)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "loading AWS configuration")
	}
	trigger, err := exporter.New(exporter.Config{
		Session: ddbclient.NewClientFromConfig(awsCfg, logger.Child("ddbclient")),
		Clock:   clock.WallClock,
		Logger:  logger.Child("exporter"),
		Export:  cfg,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewHandler(trigger, logger)
}

// Handle starts one export. A returned error marks the invocation failed
// so the scheduler's own retry and alerting policy applies; the Result
// carries the same information for callers that inspect the payload.
func (h *Handler) Handle(ctx context.Context, event events.CloudWatchEvent) (Result, error) {
	if deadline, ok := ctx.Deadline(); ok {
		h.logger.Debugf("invocation %q, %s of execution budget remaining",
			event.ID, time.Until(deadline).Round(time.Millisecond))
	}

	job, err := h.trigger.StartExport(ctx)
	if err != nil {
		return Result{
			StatusCode: http.StatusInternalServerError,
			Message:    "export not started",
			Error:      err.Error(),
		}, errors.Trace(err)
	}

	return Result{
		StatusCode: http.StatusOK,
		Message:    "export started",
		ExportARN:  job.ExportARN,
		ExportTime: job.ExportTime.Format(time.RFC3339),
		S3Location: job.S3Location(),
	}, nil
}
