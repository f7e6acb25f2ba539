package main

import (
	"fmt"

	"github.com/temirov/advent/internal/cli"
	"github.com/temirov/advent/internal/utils"
)

const (
	loggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	applicationExecutionFailedMessage       = "application execution failed"
)

// main is the entry point for the advent command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(utils.DefaultLogLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(loggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(applicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
