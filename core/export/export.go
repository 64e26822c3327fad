// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package export holds the vocabulary shared by everything that triggers
// or observes a point-in-time table export. The export itself is owned by
// the DynamoDB service; nothing in this repository transitions its state.
package export

import (
	"time"

	"github.com/juju/errors"
)

const (
	// ErrConfiguration indicates required configuration was missing or
	// empty. It is raised before any request leaves the process.
	ErrConfiguration = errors.ConstError("export configuration not valid")

	// ErrExternalService indicates the export service rejected a request,
	// for example because point-in-time recovery is disabled on the table,
	// the export time falls outside the retention window, or the bucket or
	// permissions are wrong. The service's reason is preserved verbatim.
	ErrExternalService = errors.ConstError("export service rejected request")

	// ErrTransient indicates the export service could not be reached.
	// Nothing here retries; the next scheduled invocation is the retry
	// policy.
	ErrTransient = errors.ConstError("export service unreachable")
)

// Status is the observed state of an export job. Transitions are owned
// exclusively by the export service; this system only samples them.
type Status string

const (
	// Starting is the initial state, entered when the service accepts a
	// start-export request.
	Starting Status = "STARTING"

	// InProgress is reported while the service writes the export.
	InProgress Status = "IN_PROGRESS"

	// Completed and Failed are the terminal states.
	Completed Status = "COMPLETED"
	Failed    Status = "FAILED"
)

// Terminal reports whether no further status transitions can occur.
func (s Status) Terminal() bool {
	return s == Completed || s == Failed
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus maps a wire status reported by the export service onto a
// Status. The service never reports STARTING on a describe call, but the
// mapping accepts it so a job freshly returned by a start call round-trips.
func ParseStatus(wire string) (Status, error) {
	switch Status(wire) {
	case Starting, InProgress, Completed, Failed:
		return Status(wire), nil
	}
	return "", errors.NotValidf("export status %q", wire)
}

// Request describes a single point-in-time export to be started.
type Request struct {
	// TableName is the source table, by name rather than ARN.
	TableName string

	// ExportTime is the point in time to export. It must fall inside the
	// table's recovery retention window or the service rejects it.
	ExportTime time.Time

	// Bucket and Prefix locate the destination in object storage.
	Bucket string
	Prefix string
}

// Job is the observed description of an export created by the service.
type Job struct {
	// ExportARN identifies the job for later describe calls.
	ExportARN string

	// Status is the state observed when the job was last sampled.
	Status Status

	// ExportTime is the point in time the service is exporting.
	ExportTime time.Time

	// TableARN, Bucket and Prefix echo what the job was started with.
	TableARN string
	Bucket   string
	Prefix   string

	// EndTime is set once the job reaches a terminal state.
	EndTime time.Time

	// FailureCode and FailureMessage are set when Status is Failed.
	FailureCode    string
	FailureMessage string
}

// S3Location renders the destination the service writes to, for reporting.
func (j Job) S3Location() string {
	return "s3://" + j.Bucket + "/" + j.Prefix
}
