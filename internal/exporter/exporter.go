// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package exporter implements the export trigger: one start-export call
// per invocation, plus a single-shot status sample. It never retries and
// never waits; the invoking scheduler owns both.
package exporter

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/canonical/dynamoexport/core/export"
	corelogger "github.com/canonical/dynamoexport/core/logger"
	"github.com/canonical/dynamoexport/internal/config"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

// LookbackWindow is how far behind the current time the exported point
// in time lies. It must stay inside the table's recovery retention
// window, which the service enforces.
const LookbackWindow = 30 * 24 * time.Hour

// Config holds the dependencies and settings of an Exporter.
type Config struct {
	// Session performs the export calls.
	Session ddbclient.Session

	// Clock supplies the current time the lookback is computed from.
	Clock clock.Clock

	// Logger is used to record the outcome of each invocation.
	Logger corelogger.Logger

	// Export carries the table, bucket and prefix settings. Only
	// StartExport needs it; status checks leave it empty.
	Export config.Config
}

// Validate ensures the config values are valid.
func (c Config) Validate() error {
	if c.Session == nil {
		return errors.NotValidf("nil Session")
	}
	if c.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if c.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Exporter triggers point-in-time exports.
type Exporter struct {
	config Config
}

// New returns an Exporter, failing before any network activity if the
// configuration is invalid.
func New(config Config) (*Exporter, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Exporter{config: config}, nil
}

// StartExport computes the export point in time as the current time less
// the lookback window and issues one start-export call. The computed time
// is truncated to whole seconds, the precision the export API stores.
func (e *Exporter) StartExport(ctx context.Context) (export.Job, error) {
	cfg := e.config.Export
	if err := cfg.Validate(); err != nil {
		return export.Job{}, errors.Trace(err)
	}
	exportTime := e.config.Clock.Now().UTC().Truncate(time.Second).Add(-LookbackWindow)

	e.config.Logger.Infof("starting export of table %q as of %s to s3://%s/%s",
		cfg.TableName, exportTime.Format(time.RFC3339), cfg.BucketName, cfg.Prefix)

	job, err := e.config.Session.StartExport(ctx, export.Request{
		TableName:  cfg.TableName,
		ExportTime: exportTime,
		Bucket:     cfg.BucketName,
		Prefix:     cfg.Prefix,
	})
	if err != nil {
		e.config.Logger.Errorf("export of table %q as of %s to s3://%s/%s failed: %v",
			cfg.TableName, exportTime.Format(time.RFC3339), cfg.BucketName, cfg.Prefix, err)
		return export.Job{}, errors.Trace(err)
	}

	e.config.Logger.Infof("export %q accepted with status %s", job.ExportARN, job.Status)
	return job, nil
}

// CheckExportStatus samples the export once and returns its observed
// description. It never blocks waiting for a transition; a later
// invocation observes completion.
func (e *Exporter) CheckExportStatus(ctx context.Context, exportARN string) (export.Job, error) {
	job, err := e.config.Session.DescribeExport(ctx, exportARN)
	if err != nil {
		e.config.Logger.Errorf("describing export %q failed: %v", exportARN, err)
		return export.Job{}, errors.Trace(err)
	}

	switch job.Status {
	case export.Completed:
		e.config.Logger.Infof("export %q completed at %s, wrote %s",
			job.ExportARN, job.EndTime.Format(time.RFC3339), job.S3Location())
	case export.Failed:
		e.config.Logger.Errorf("export %q failed: %s: %s",
			job.ExportARN, job.FailureCode, job.FailureMessage)
	default:
		e.config.Logger.Infof("export %q is %s", job.ExportARN, job.Status)
	}
	return job, nil
}
