package cli

import (
	"github.com/spf13/cobra"

	"github.com/temirov/advent/internal/output"
	"github.com/temirov/advent/internal/types"
)

const (
	daysUse              = "days"
	daysShortDescription = "list the registered days"
)

func newDaysCommand(state *session) *cobra.Command {
	return &cobra.Command{
		Use:   daysUse,
		Short: daysShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			var days []types.DayOutput
			for _, dailyPuzzle := range state.registry.Days() {
				days = append(days, types.DayOutput{
					Day:   dailyPuzzle.Day,
					Name:  dailyPuzzle.Name,
					Title: dailyPuzzle.Title,
					Parts: dailyPuzzle.PartNumbers(),
				})
			}
			return output.RenderDays(command.OutOrStdout(), state.settings.Format, days)
		},
	}
}
