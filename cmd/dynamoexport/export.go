// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"os"

	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/dynamoexport/internal/config"
	"github.com/canonical/dynamoexport/internal/exporter"
)

const exportDoc = `
Starts a point-in-time export of the table as it was 30 days ago,
writing to the configured bucket and prefix. The command returns as soon
as the service accepts the export; use status or watch to observe
completion.

Configuration comes from TABLE_NAME, BUCKET_NAME and PREFIX, each
overridable with a flag.

Examples:

    dynamoexport export
    dynamoexport export --table orders --bucket orders-backups

See also:
    status
    watch
`

func newExportCommand() cmd.Command {
	return &exportCommand{}
}

type exportCommand struct {
	sessionCommand
	out cmd.Output

	table  string
	bucket string
	prefix string
}

// Info implements Command.
func (c *exportCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "export",
		Purpose: "Start a point-in-time export of a table.",
		Doc:     exportDoc,
	}
}

// SetFlags implements Command.
func (c *exportCommand) SetFlags(f *gnuflag.FlagSet) {
	c.sessionCommand.SetFlags(f)
	f.StringVar(&c.table, "table", "", "source table (default $TABLE_NAME)")
	f.StringVar(&c.bucket, "bucket", "", "destination bucket (default $BUCKET_NAME)")
	f.StringVar(&c.prefix, "prefix", "", "destination prefix (default $PREFIX, or dynamodb-backups/)")
	c.out.AddFlags(f, "yaml", cmd.DefaultFormatters.Formatters())
}

// Init implements Command.
func (c *exportCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements Command.
func (c *exportCommand) Run(ctx *cmd.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	e, err := exporter.New(exporter.Config{
		Session: session,
		Clock:   c.clock(),
		Logger:  logger.Child("exporter"),
		Export:  c.exportConfig(),
	})
	if err != nil {
		return errors.Trace(err)
	}
	job, err := e.StartExport(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, formatJob(job))
}

func (c *exportCommand) exportConfig() config.Config {
	cfg := config.Config{
		TableName:  c.table,
		BucketName: c.bucket,
		Prefix:     c.prefix,
	}
	if cfg.TableName == "" {
		cfg.TableName = os.Getenv(config.TableNameKey)
	}
	if cfg.BucketName == "" {
		cfg.BucketName = os.Getenv(config.BucketNameKey)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = os.Getenv(config.PrefixKey)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = config.DefaultPrefix
	}
	return cfg
}
