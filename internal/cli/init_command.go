package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/advent/internal/config"
)

const (
	initUse                  = "init"
	initShortDescription     = "write the default configuration file"
	initLongDescription      = "Write the default configuration to ./.advent.yaml, or to ~/.advent/config.yaml with --global."
	globalFlagDescription    = "write the global configuration instead of the local one"
	forceFlagDescription     = "overwrite an existing configuration file"
	initWrittenMessageFormat = "Configuration written to %s\n"
)

func newInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			_, printError := fmt.Fprintf(command.OutOrStdout(), initWrittenMessageFormat, path)
			return printError
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
