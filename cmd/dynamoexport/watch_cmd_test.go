// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/dynamoexport/core/export"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

type watchCommandSuite struct {
	testing.IsolationSuite

	session *stubSession
}

var _ = gc.Suite(&watchCommandSuite{})

func (s *watchCommandSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.session = &stubSession{}
}

func (s *watchCommandSuite) newCommand() cmd.Command {
	command := &watchCommand{}
	command.newSession = func(context.Context) (ddbclient.Session, error) {
		return s.session, nil
	}
	command.clk = clock.WallClock
	return command
}

func (s *watchCommandSuite) TestWatchCompleted(c *gc.C) {
	s.session.jobs = []export.Job{{
		ExportARN: "arn:export/01234",
		Status:    export.Completed,
		Bucket:    "orders-backups",
		Prefix:    "dynamodb-backups/",
	}}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(), "arn:export/01234")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "status: COMPLETED")
}

func (s *watchCommandSuite) TestWatchFailed(c *gc.C) {
	s.session.jobs = []export.Job{{
		ExportARN:      "arn:export/01234",
		Status:         export.Failed,
		FailureCode:    "S3NoSuchBucket",
		FailureMessage: "The specified bucket does not exist",
	}}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(), "arn:export/01234")
	c.Check(err, gc.ErrorMatches, "export failed: S3NoSuchBucket: The specified bucket does not exist")
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "status: FAILED")
}

func (s *watchCommandSuite) TestWatchTimesOut(c *gc.C) {
	s.session.jobs = []export.Job{{
		ExportARN: "arn:export/01234",
		Status:    export.InProgress,
	}}

	_, err := cmdtesting.RunCommand(c, s.newCommand(),
		"--timeout", "50ms", "arn:export/01234")
	c.Check(err, gc.ErrorMatches, `timed out waiting for export "arn:export/01234" after 50ms`)
}

func (s *watchCommandSuite) TestWatchRequiresARN(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, s.newCommand())
	c.Check(err, gc.ErrorMatches, "no export ARN specified")
	s.session.CheckCallNames(c)
}

func (s *watchCommandSuite) TestWatchRejectsBadTimeout(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, s.newCommand(),
		"--timeout", "-1s", "arn:export/01234")
	c.Check(err, gc.ErrorMatches, `timeout -1s not valid`)
}
