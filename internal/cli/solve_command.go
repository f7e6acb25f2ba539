package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/advent/internal/output"
	"github.com/temirov/advent/internal/puzzle"
	"github.com/temirov/advent/internal/types"
)

const (
	solveUse              = "solve <day> [input]"
	solveAlias            = "s"
	solveShortDescription = "solve one day (" + solveAlias + ")"
	solveLongDescription  = `Solve both parts of a day, or only the part named by --part.
The input defaults to the configured inputs.directory and inputs.file_pattern.`
	solveUsageExample = `  # Solve day 7 from input/day7.txt
  advent solve 7

  # Solve part two of day 5 from a specific file as JSON
  advent solve day05 puzzles/crates.txt --part 2 --format json`
	partFlagDescription = "solve only this part (1 or 2)"
)

func newSolveCommand(state *session) *cobra.Command {
	var partNumber int
	var copyRequested bool

	solveCommand := &cobra.Command{
		Use:     solveUse,
		Aliases: []string{solveAlias},
		Short:   solveShortDescription,
		Long:    solveLongDescription,
		Example: solveUsageExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(command *cobra.Command, arguments []string) error {
			state.applyCopyOverride(command, copyRequested)
			day, dayError := puzzle.ParseDay(arguments[0])
			if dayError != nil {
				return dayError
			}
			dailyPuzzle, lookupError := state.registry.Lookup(day)
			if lookupError != nil {
				return lookupError
			}
			partNumbers := dailyPuzzle.PartNumbers()
			if command.Flags().Changed(partFlagName) {
				if _, partError := dailyPuzzle.Part(partNumber); partError != nil {
					return partError
				}
				partNumbers = []int{partNumber}
			}
			inputPath := state.settings.InputPath(day)
			if len(arguments) > 1 {
				inputPath = arguments[1]
			}

			answers, solveError := solve(command.Context(), state.logger, solveRequest{
				puzzle:      dailyPuzzle,
				partNumbers: partNumbers,
				inputPath:   inputPath,
			})
			if solveError != nil {
				return solveError
			}
			return state.renderAnswers(command, answers)
		},
	}
	solveCommand.Flags().IntVar(&partNumber, partFlagName, 0, partFlagDescription)
	registerBooleanFlag(solveCommand.Flags(), &copyRequested, copyFlagName, false, copyFlagDescription)
	return solveCommand
}

// renderAnswers prints answers in the configured format and copies their values.
func (state *session) renderAnswers(command *cobra.Command, answers []types.Answer) error {
	if renderError := output.RenderAnswers(command.OutOrStdout(), state.settings.Format, answers); renderError != nil {
		return renderError
	}
	state.copyText(answerValues(answers))
	return nil
}
