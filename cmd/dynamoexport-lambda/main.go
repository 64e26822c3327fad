// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// dynamoexport-lambda is the scheduled-function build of the export
// trigger. The schedule (EventBridge) invokes it; each invocation starts
// one export and returns without waiting for completion.
package main

import (
	"context"
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/canonical/dynamoexport/internal/lambda"
	internallogger "github.com/canonical/dynamoexport/internal/logger"
)

const (
	loggingConfigEnvKey  = "DYNAMOEXPORT_LOGGING_CONFIG"
	defaultLoggingConfig = "<root>=INFO"
)

var logger = internallogger.GetLogger("dynamoexport.lambda")

func main() {
	spec := defaultLoggingConfig
	if env := os.Getenv(loggingConfigEnvKey); env != "" {
		spec = env
	}
	if err := internallogger.ConfigureLoggers(spec); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR parsing %s: %s\n", loggingConfigEnvKey, err)
	}

	handler, err := lambda.NewHandlerFromEnviron(context.Background(), logger)
	if err != nil {
		// Configuration problems are fatal for the whole function, not
		// just one invocation; fail loudly at cold start.
		logger.Errorf("initialising export trigger: %v", err)
		os.Exit(1)
	}
	awslambda.Start(handler.Handle)
}
