// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/advent/internal/config"
	"github.com/temirov/advent/internal/puzzle"
	"github.com/temirov/advent/internal/services/clipboard"
	"github.com/temirov/advent/internal/solutions"
	"github.com/temirov/advent/internal/utils"
)

const (
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	formatFlagName   = "format"
	copyFlagName     = "copy"
	partFlagName     = "part"
	inputDirFlagName = "input-dir"
	globalFlagName   = "global"
	forceFlagName    = "force"
	versionFlagName  = "version"
	versionTemplate  = "advent version: %s\n"
	rootUse          = "advent"
	rootShortMessage = "advent solves Advent of Code 2022 puzzles"

	configFlagDescription   = "configuration file to use instead of ./.advent.yaml"
	logLevelFlagDescription = "log level: debug, info, warn or error"
	formatFlagDescription   = "output format: raw, json or xml"
	copyFlagDescription     = "copy the answers to the clipboard"
	versionFlagDescription  = "display application version"

	errorLoadConfigurationFormat = "load configuration: %w"
	errorLoggerFormat            = "configure logger: %w"
	errorRegistryFormat          = "build solver registry: %w"

	logMessageConfiguration = "configuration resolved"
	logFieldFormat          = "format"
	logFieldInputDirectory  = "input_directory"
)

const rootLongMessage = `advent reads daily puzzle inputs and prints the answers to both parts.
Configuration is read from ~/.advent/config.yaml and ./.advent.yaml (or --config).
Use --format to select raw, json, or xml output and --copy to place answers on the clipboard.`

// Execute runs the advent application with the provided logger.
func Execute(logger *zap.Logger) error {
	rootCommand := newRootCommand(logger, clipboard.NewService())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(context.Background())
}

// session holds what every subcommand shares once configuration is resolved.
type session struct {
	logger   *zap.Logger
	copier   clipboard.Copier
	settings config.Settings
	registry *puzzle.Registry

	configPath       string
	formatOverride   string
	logLevelOverride string
}

// newRootCommand builds the root Cobra command.
func newRootCommand(logger *zap.Logger, copier clipboard.Copier) *cobra.Command {
	state := &session{logger: logger, copier: copier}
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortMessage,
		Long:          rootLongMessage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return state.load(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				_, printError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return printError
			}
			return command.Help()
		},
	}
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&state.configPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().StringVar(&state.formatOverride, formatFlagName, "", formatFlagDescription)
	rootCommand.PersistentFlags().StringVar(&state.logLevelOverride, logLevelFlagName, "", logLevelFlagDescription)
	rootCommand.AddCommand(
		newSolveCommand(state),
		newAllCommand(state),
		newTreeCommand(state),
		newDaysCommand(state),
		newInitCommand(),
	)
	return rootCommand
}

// load reads configuration files, applies persistent flag overrides and
// builds the solver registry from the result.
func (state *session) load(command *cobra.Command) error {
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: state.configPath})
	if loadError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, loadError)
	}
	if command.Flags().Changed(formatFlagName) {
		loaded.Format = state.formatOverride
	}
	if command.Flags().Changed(logLevelFlagName) {
		loaded.LogLevel = state.logLevelOverride
	}
	settings, resolveError := loaded.Resolve()
	if resolveError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, resolveError)
	}
	state.settings = settings

	if settings.LogLevel != utils.DefaultLogLevel {
		logger, loggerError := utils.NewApplicationLogger(settings.LogLevel)
		if loggerError != nil {
			return fmt.Errorf(errorLoggerFormat, loggerError)
		}
		state.logger = logger
	}
	state.logger.Debug(logMessageConfiguration,
		zap.String(logFieldFormat, settings.Format),
		zap.String(logFieldInputDirectory, settings.InputDirectory),
	)

	registry, registryError := solutions.NewRegistry(settings)
	if registryError != nil {
		return fmt.Errorf(errorRegistryFormat, registryError)
	}
	state.registry = registry
	return nil
}

// applyCopyOverride lets a command's --copy flag override the clipboard setting.
func (state *session) applyCopyOverride(command *cobra.Command, copyRequested bool) {
	if command.Flags().Changed(copyFlagName) {
		state.settings.Clipboard = copyRequested
	}
}

// copyText places text on the clipboard when enabled; failures are only logged.
func (state *session) copyText(text string) {
	if !state.settings.Clipboard || state.copier == nil {
		return
	}
	if copyError := state.copier.Copy(strings.TrimRight(text, "\n")); copyError != nil {
		state.logger.Warn(fmt.Sprintf(utils.ErrorLogFormat, copyError))
	}
}
