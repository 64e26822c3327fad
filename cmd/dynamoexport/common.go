// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"

	"github.com/canonical/dynamoexport/core/export"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

// sessionCommand is the base for commands that talk to the export
// service. The session factory and clock are replaceable for tests.
type sessionCommand struct {
	cmd.CommandBase

	newSession func(ctx context.Context) (ddbclient.Session, error)
	clk        clock.Clock
}

func (c *sessionCommand) session(ctx context.Context) (ddbclient.Session, error) {
	if c.newSession != nil {
		return c.newSession(ctx)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "loading AWS configuration")
	}
	return ddbclient.NewClientFromConfig(awsCfg, logger.Child("ddbclient")), nil
}

func (c *sessionCommand) clock() clock.Clock {
	if c.clk == nil {
		return clock.WallClock
	}
	return c.clk
}

// formattedJob is the job shape written by the output formatters.
type formattedJob struct {
	ExportARN      string `json:"export-arn" yaml:"export-arn"`
	Status         string `json:"status" yaml:"status"`
	ExportTime     string `json:"export-time,omitempty" yaml:"export-time,omitempty"`
	S3Location     string `json:"s3-location,omitempty" yaml:"s3-location,omitempty"`
	EndTime        string `json:"end-time,omitempty" yaml:"end-time,omitempty"`
	FailureCode    string `json:"failure-code,omitempty" yaml:"failure-code,omitempty"`
	FailureMessage string `json:"failure-message,omitempty" yaml:"failure-message,omitempty"`
}

func formatJob(job export.Job) formattedJob {
	f := formattedJob{
		ExportARN:      job.ExportARN,
		Status:         job.Status.String(),
		FailureCode:    job.FailureCode,
		FailureMessage: job.FailureMessage,
	}
	if !job.ExportTime.IsZero() {
		f.ExportTime = job.ExportTime.Format(time.RFC3339)
	}
	if job.Bucket != "" {
		f.S3Location = job.S3Location()
	}
	if !job.EndTime.IsZero() {
		f.EndTime = job.EndTime.Format(time.RFC3339)
	}
	return f
}
