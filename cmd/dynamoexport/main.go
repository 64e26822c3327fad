// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// dynamoexport triggers and observes DynamoDB point-in-time exports from
// the command line, using the same trigger the scheduled function runs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/juju/cmd/v4"

	internallogger "github.com/canonical/dynamoexport/internal/logger"
)

var logger = internallogger.GetLogger("dynamoexport.cmd")

const (
	loggingConfigEnvKey = "DYNAMOEXPORT_LOGGING_CONFIG"

	doc = `
dynamoexport starts point-in-time exports of a DynamoDB table to S3 and
reports on their progress. The export itself is performed entirely by the
DynamoDB service; these commands only trigger and observe it.

Configuration is read from the TABLE_NAME, BUCKET_NAME and PREFIX
environment variables, with a local .env file honoured when present.
`
)

func main() {
	os.Exit(Main(os.Args))
}

// Main runs the dynamoexport supercommand, returning the process exit
// code.
func Main(args []string) int {
	// If the environment key is empty, ConfigureLoggers is a no-op.
	if err := internallogger.ConfigureLoggers(os.Getenv(loggingConfigEnvKey)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR parsing %s: %s\n\n", loggingConfigEnvKey, err)
	}
	if err := godotenv.Load(); err == nil {
		logger.Debugf("loaded environment from .env")
	}

	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(newSuperCommand(), ctx, args[1:])
}

func newSuperCommand() *cmd.SuperCommand {
	super := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "dynamoexport",
		Purpose: "Trigger and observe DynamoDB point-in-time exports.",
		Doc:     doc,
		Log:     &cmd.Log{},
	})
	super.Register(newExportCommand())
	super.Register(newStatusCommand())
	super.Register(newWatchCommand())
	return super
}
