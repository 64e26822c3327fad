// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"context"
	"time"

	"github.com/juju/cmd/v4"
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/dynamoexport/core/export"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

type statusCommandSuite struct {
	testing.IsolationSuite

	session *stubSession
}

var _ = gc.Suite(&statusCommandSuite{})

func (s *statusCommandSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.session = &stubSession{}
}

func (s *statusCommandSuite) newCommand() cmd.Command {
	command := &statusCommand{}
	command.newSession = func(context.Context) (ddbclient.Session, error) {
		return s.session, nil
	}
	return command
}

func (s *statusCommandSuite) TestStatus(c *gc.C) {
	s.session.jobs = []export.Job{{
		ExportARN:  "arn:export/01234",
		Status:     export.Completed,
		ExportTime: time.Date(2026, 7, 24, 3, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 8, 23, 3, 25, 0, 0, time.UTC),
		Bucket:     "orders-backups",
		Prefix:     "dynamodb-backups/",
	}}

	ctx, err := cmdtesting.RunCommand(c, s.newCommand(), "arn:export/01234")
	c.Assert(err, jc.ErrorIsNil)

	s.session.CheckCalls(c, []testing.StubCall{{
		FuncName: "DescribeExport",
		Args:     []interface{}{"arn:export/01234"},
	}})

	out := cmdtesting.Stdout(ctx)
	c.Check(out, jc.Contains, "status: COMPLETED")
	c.Check(out, jc.Contains, "end-time:")
}

func (s *statusCommandSuite) TestStatusRequiresARN(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, s.newCommand())
	c.Check(err, gc.ErrorMatches, "no export ARN specified")
	s.session.CheckCallNames(c)
}

func (s *statusCommandSuite) TestStatusError(c *gc.C) {
	s.session.SetErrors(errors.WithType(errors.New("boom"), export.ErrTransient))

	_, err := cmdtesting.RunCommand(c, s.newCommand(), "arn:export/01234")
	c.Check(err, jc.ErrorIs, export.ErrTransient)
}
