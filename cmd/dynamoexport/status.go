// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/dynamoexport/internal/exporter"
)

const statusDoc = `
Samples the current state of an export once and prints it. The command
never waits for a transition; run it again later, or use watch.

Examples:

    dynamoexport status arn:aws:dynamodb:ap-northeast-1:123456789012:table/orders/export/01234

See also:
    export
    watch
`

func newStatusCommand() cmd.Command {
	return &statusCommand{}
}

type statusCommand struct {
	sessionCommand
	out cmd.Output

	exportARN string
}

// Info implements Command.
func (c *statusCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "status",
		Args:    "<export-arn>",
		Purpose: "Show the current status of an export.",
		Doc:     statusDoc,
	}
}

// SetFlags implements Command.
func (c *statusCommand) SetFlags(f *gnuflag.FlagSet) {
	c.sessionCommand.SetFlags(f)
	c.out.AddFlags(f, "yaml", cmd.DefaultFormatters.Formatters())
}

// Init implements Command.
func (c *statusCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no export ARN specified")
	}
	c.exportARN = args[0]
	return cmd.CheckEmpty(args[1:])
}

// Run implements Command.
func (c *statusCommand) Run(ctx *cmd.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	e, err := exporter.New(exporter.Config{
		Session: session,
		Clock:   c.clock(),
		Logger:  logger.Child("exporter"),
	})
	if err != nil {
		return errors.Trace(err)
	}
	job, err := e.CheckExportStatus(ctx, c.exportARN)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, formatJob(job))
}
