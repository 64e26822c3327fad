// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"time"

	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/dynamoexport/core/export"
	"github.com/canonical/dynamoexport/internal/worker/exportpoller"
)

const watchDoc = `
Samples the export on a backoff schedule until it completes or fails,
then prints the terminal description. Exits non-zero if the export
failed or is still running when the timeout elapses.

Examples:

    dynamoexport watch arn:aws:dynamodb:ap-northeast-1:123456789012:table/orders/export/01234
    dynamoexport watch --timeout 1h <export-arn>

See also:
    export
    status
`

func newWatchCommand() cmd.Command {
	return &watchCommand{}
}

type watchCommand struct {
	sessionCommand
	out cmd.Output

	exportARN string
	timeout   time.Duration
}

// Info implements Command.
func (c *watchCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "watch",
		Args:    "<export-arn>",
		Purpose: "Wait for an export to reach a terminal state.",
		Doc:     watchDoc,
	}
}

// SetFlags implements Command.
func (c *watchCommand) SetFlags(f *gnuflag.FlagSet) {
	c.sessionCommand.SetFlags(f)
	f.DurationVar(&c.timeout, "timeout", 30*time.Minute, "give up after this long")
	c.out.AddFlags(f, "yaml", cmd.DefaultFormatters.Formatters())
}

// Init implements Command.
func (c *watchCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no export ARN specified")
	}
	c.exportARN = args[0]
	if c.timeout <= 0 {
		return errors.NotValidf("timeout %v", c.timeout)
	}
	return cmd.CheckEmpty(args[1:])
}

// Run implements Command.
func (c *watchCommand) Run(ctx *cmd.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	poller, err := exportpoller.NewWorker(exportpoller.WorkerConfig{
		Session:   session,
		ExportARN: c.exportARN,
		Clock:     c.clock(),
		Logger:    logger.Child("poller"),
	})
	if err != nil {
		return errors.Trace(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- poller.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Trace(err)
		}
	case <-c.clock().After(c.timeout):
		poller.Kill()
		<-done
		return errors.Errorf("timed out waiting for export %q after %v", c.exportARN, c.timeout)
	}

	job := poller.Job()
	if err := c.out.Write(ctx, formatJob(job)); err != nil {
		return errors.Trace(err)
	}
	if job.Status == export.Failed {
		return errors.Errorf("export failed: %s: %s", job.FailureCode, job.FailureMessage)
	}
	return nil
}
