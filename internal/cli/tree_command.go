package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/advent/internal/filesystem"
	"github.com/temirov/advent/internal/output"
)

const (
	treeUse              = "tree [transcript]"
	treeAlias            = "t"
	treeShortDescription = "render the filesystem reconstructed from a terminal transcript (" + treeAlias + ")"
	treeLongDescription  = `Rebuild the directory tree from a day 7 cd/ls transcript and print every node with its recursive size.
The transcript defaults to the configured day 7 input.`
	treeUsageExample = `  # Draw the tree of the day 7 input
  advent tree

  # Emit the tree of a transcript as JSON
  advent tree session.log --format json`

	treeDay                    = 7
	errorOpenTranscriptFormat  = "open transcript %s: %w"
	errorParseTranscriptFormat = "parse transcript %s: %w"
)

func newTreeCommand(state *session) *cobra.Command {
	return &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			transcriptPath := state.settings.InputPath(treeDay)
			if len(arguments) == 1 {
				transcriptPath = arguments[0]
			}
			transcript, openError := os.Open(transcriptPath)
			if openError != nil {
				return fmt.Errorf(errorOpenTranscriptFormat, transcriptPath, openError)
			}
			defer transcript.Close()

			root, parseError := filesystem.Parse(transcript)
			if parseError != nil {
				return fmt.Errorf(errorParseTranscriptFormat, transcriptPath, parseError)
			}
			return output.RenderTree(command.OutOrStdout(), state.settings.Format, output.BuildTreeOutput(root))
		},
	}
}
