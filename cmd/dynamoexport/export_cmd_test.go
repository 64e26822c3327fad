// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"context"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/cmd/v4"
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/dynamoexport/core/export"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

type exportCommandSuite struct {
	testing.IsolationSuite

	session *stubSession
	clock   *testclock.Clock
}

var _ = gc.Suite(&exportCommandSuite{})

var testNow = time.Date(2026, 8, 23, 3, 0, 0, 0, time.UTC)

func (s *exportCommandSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.session = &stubSession{jobs: []export.Job{{
		ExportARN: "arn:export/01234",
		Status:    export.Starting,
		Bucket:    "orders-backups",
		Prefix:    "dynamodb-backups/",
	}}}
	s.clock = testclock.NewClock(testNow)
}

func (s *exportCommandSuite) newCommand() cmd.Command {
	command := &exportCommand{}
	command.newSession = func(context.Context) (ddbclient.Session, error) {
		return s.session, nil
	}
	command.clk = s.clock
	return command
}

func (s *exportCommandSuite) TestExportWithFlags(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, s.newCommand(),
		"--table", "orders", "--bucket", "orders-backups")
	c.Assert(err, jc.ErrorIsNil)

	want := testNow.Add(-30 * 24 * time.Hour)
	s.session.CheckCalls(c, []testing.StubCall{{
		FuncName: "StartExport",
		Args: []interface{}{export.Request{
			TableName:  "orders",
			ExportTime: want,
			Bucket:     "orders-backups",
			Prefix:     "dynamodb-backups/",
		}},
	}})

	out := cmdtesting.Stdout(ctx)
	c.Check(out, jc.Contains, "export-arn: arn:export/01234")
	c.Check(out, jc.Contains, "status: STARTING")
}

func (s *exportCommandSuite) TestExportFromEnvironment(c *gc.C) {
	s.PatchEnvironment("TABLE_NAME", "orders")
	s.PatchEnvironment("BUCKET_NAME", "orders-backups")
	s.PatchEnvironment("PREFIX", "monthly/")

	_, err := cmdtesting.RunCommand(c, s.newCommand())
	c.Assert(err, jc.ErrorIsNil)

	req := s.session.Calls()[0].Args[0].(export.Request)
	c.Check(req.TableName, gc.Equals, "orders")
	c.Check(req.Bucket, gc.Equals, "orders-backups")
	c.Check(req.Prefix, gc.Equals, "monthly/")
}

func (s *exportCommandSuite) TestExportJSON(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, s.newCommand(),
		"--table", "orders", "--bucket", "orders-backups", "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals,
		`{"export-arn":"arn:export/01234","status":"STARTING","export-time":"2026-07-24T03:00:00Z","s3-location":"s3://orders-backups/dynamodb-backups/"}
`)
}

func (s *exportCommandSuite) TestExportMissingConfiguration(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, s.newCommand())
	c.Check(err, jc.ErrorIs, export.ErrConfiguration)
	c.Check(err, gc.ErrorMatches, "empty TABLE_NAME not valid")
	s.session.CheckCallNames(c)
}

func (s *exportCommandSuite) TestExportRejectsPositionalArgs(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, s.newCommand(), "orders")
	c.Check(err, gc.ErrorMatches, `unrecognized args: \["orders"\]`)
}
