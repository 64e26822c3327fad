// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package ddbclient wraps the DynamoDB SDK behind the two export
// operations this system needs, so everything above it can be tested
// against a double instead of a live endpoint.
package ddbclient

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/juju/errors"

	"github.com/canonical/dynamoexport/core/export"
	corelogger "github.com/canonical/dynamoexport/core/logger"
)

// DynamoDBAPI is the subset of the DynamoDB client consumed here.
type DynamoDBAPI interface {
	ExportTableToPointInTime(ctx context.Context, params *dynamodb.ExportTableToPointInTimeInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ExportTableToPointInTimeOutput, error)
	DescribeExport(ctx context.Context, params *dynamodb.DescribeExportInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeExportOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Session is the narrow export surface used by the trigger and the
// poller.
type Session interface {
	// StartExport asks the service to begin a point-in-time export.
	StartExport(ctx context.Context, req export.Request) (export.Job, error)

	// DescribeExport samples the current state of an export.
	DescribeExport(ctx context.Context, exportARN string) (export.Job, error)
}

// Client implements Session on top of the DynamoDB SDK.
type Client struct {
	api    DynamoDBAPI
	logger corelogger.Logger

	// newToken supplies the per-request idempotency token.
	newToken func() string
}

// NewClient returns a Client using the given API implementation.
func NewClient(api DynamoDBAPI, logger corelogger.Logger) *Client {
	return &Client{
		api:      api,
		logger:   logger,
		newToken: uuid.NewString,
	}
}

// NewClientFromConfig returns a Client backed by a real DynamoDB client.
func NewClientFromConfig(cfg aws.Config, logger corelogger.Logger) *Client {
	return NewClient(dynamodb.NewFromConfig(cfg), logger)
}

// StartExport implements Session. The table is configured by name, but
// the export API wants an ARN, so the table is described first; that
// lookup doubles as an early existence and permission check.
func (c *Client) StartExport(ctx context.Context, req export.Request) (export.Job, error) {
	table, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(req.TableName),
	})
	if err != nil {
		return export.Job{}, errors.Annotatef(mapError(err), "resolving table %q", req.TableName)
	}
	tableARN := aws.ToString(table.Table.TableArn)
	c.logger.Debugf("resolved table %q to %q", req.TableName, tableARN)

	out, err := c.api.ExportTableToPointInTime(ctx, &dynamodb.ExportTableToPointInTimeInput{
		TableArn:     aws.String(tableARN),
		ExportTime:   aws.Time(req.ExportTime),
		S3Bucket:     aws.String(req.Bucket),
		S3Prefix:     aws.String(req.Prefix),
		ExportFormat: types.ExportFormatDynamodbJson,
		ClientToken:  aws.String(c.newToken()),
	})
	if err != nil {
		return export.Job{}, errors.Trace(mapError(err))
	}
	job := jobFromDescription(out.ExportDescription)
	// Acceptance is the entry into the initial state, whatever the
	// description already says.
	job.Status = export.Starting
	return job, nil
}

// DescribeExport implements Session.
func (c *Client) DescribeExport(ctx context.Context, exportARN string) (export.Job, error) {
	out, err := c.api.DescribeExport(ctx, &dynamodb.DescribeExportInput{
		ExportArn: aws.String(exportARN),
	})
	if err != nil {
		return export.Job{}, errors.Trace(mapError(err))
	}
	return jobFromDescription(out.ExportDescription), nil
}

func jobFromDescription(d *types.ExportDescription) export.Job {
	if d == nil {
		return export.Job{}
	}
	job := export.Job{
		ExportARN:      aws.ToString(d.ExportArn),
		TableARN:       aws.ToString(d.TableArn),
		Bucket:         aws.ToString(d.S3Bucket),
		Prefix:         aws.ToString(d.S3Prefix),
		FailureCode:    aws.ToString(d.FailureCode),
		FailureMessage: aws.ToString(d.FailureMessage),
	}
	if d.ExportTime != nil {
		job.ExportTime = *d.ExportTime
	}
	if d.EndTime != nil {
		job.EndTime = *d.EndTime
	}
	if status, err := export.ParseStatus(string(d.ExportStatus)); err == nil {
		job.Status = status
	}
	return job
}

// mapError classifies an SDK error per the error taxonomy: a service
// fault is a rejection and anything else is a transport failure. The
// service's message is preserved verbatim either way. Faults for a
// missing table or export additionally carry the not-found kind.
func mapError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return errors.WithType(err, export.ErrTransient)
	}
	switch apiErr.(type) {
	case *types.TableNotFoundException, *types.ExportNotFoundException:
		return errors.WithType(errors.WithType(err, export.ErrExternalService), errors.NotFound)
	}
	return errors.WithType(err, export.ErrExternalService)
}
