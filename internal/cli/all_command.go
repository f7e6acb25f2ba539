package cli

import (
	"github.com/spf13/cobra"
)

const (
	allUse              = "all"
	allShortDescription = "solve every registered day"
	allLongDescription  = `Solve both parts of every registered day concurrently.
Inputs are read from the configured inputs.directory; days without an input file are skipped with a warning.
Answers are printed in day and part order.`
	allUsageExample = `  # Solve everything found in ./input
  advent all

  # Read inputs from another directory and print XML
  advent all --input-dir ~/aoc/2022 --format xml`
	inputDirFlagDescription = "directory holding the daily inputs"
)

func newAllCommand(state *session) *cobra.Command {
	var inputDirectory string
	var copyRequested bool

	allCommand := &cobra.Command{
		Use:     allUse,
		Short:   allShortDescription,
		Long:    allLongDescription,
		Example: allUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			state.applyCopyOverride(command, copyRequested)
			if command.Flags().Changed(inputDirFlagName) {
				state.settings.InputDirectory = inputDirectory
			}
			var requests []solveRequest
			for _, dailyPuzzle := range state.registry.Days() {
				requests = append(requests, solveRequest{
					puzzle:      dailyPuzzle,
					partNumbers: dailyPuzzle.PartNumbers(),
					inputPath:   state.settings.InputPath(dailyPuzzle.Day),
				})
			}
			answers, solveError := solveAll(command.Context(), state.logger, requests)
			if solveError != nil {
				return solveError
			}
			return state.renderAnswers(command, answers)
		},
	}
	allCommand.Flags().StringVar(&inputDirectory, inputDirFlagName, "", inputDirFlagDescription)
	registerBooleanFlag(allCommand.Flags(), &copyRequested, copyFlagName, false, copyFlagDescription)
	return allCommand
}
