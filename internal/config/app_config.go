package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/advent/internal/utils"
)

const (
	errorWorkingDirectoryFormat = "determine working directory: %w"
	errorResolvePathFormat      = "resolve configuration path %s: %w"
	errorStatFormat             = "stat configuration %s: %w"
	errorDirectoryFormat        = "configuration path %s: %w"
	errorReadFormat             = "read configuration from %s: %w"
	errorDecodeFormat           = "decode configuration from %s: %w"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration is the on-disk configuration. Unset fields stay
// nil or empty so that a later source only overrides what it names.
type ApplicationConfiguration struct {
	Format    string              `mapstructure:"format"`
	Clipboard *bool               `mapstructure:"clipboard"`
	LogLevel  string              `mapstructure:"log_level"`
	Inputs    InputConfiguration  `mapstructure:"inputs"`
	Puzzles   PuzzleConfiguration `mapstructure:"puzzles"`
}

// InputConfiguration locates the daily puzzle inputs.
type InputConfiguration struct {
	Directory   string `mapstructure:"directory"`
	FilePattern string `mapstructure:"file_pattern"`
}

// PuzzleConfiguration holds per-day tunables.
type PuzzleConfiguration struct {
	Calories   CaloriesConfiguration   `mapstructure:"calories"`
	Signal     SignalConfiguration     `mapstructure:"signal"`
	Filesystem FilesystemConfiguration `mapstructure:"filesystem"`
}

// CaloriesConfiguration tunes day 1.
type CaloriesConfiguration struct {
	TopCount *int `mapstructure:"top_count"`
}

// SignalConfiguration tunes day 6.
type SignalConfiguration struct {
	PacketWindow  *int `mapstructure:"packet_window"`
	MessageWindow *int `mapstructure:"message_window"`
}

// FilesystemConfiguration tunes day 7.
type FilesystemConfiguration struct {
	SmallDirectoryLimit *int64 `mapstructure:"small_directory_limit"`
	DiskCapacity        *int64 `mapstructure:"disk_capacity"`
	RequiredFreeSpace   *int64 `mapstructure:"required_free_space"`
}

// LoadApplicationConfiguration loads configuration from the global file and
// then overlays the local (or explicitly named) file.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	localConfig, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	return merged.Merge(localConfig), nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath, nil
	}
	if workingDirectory == "" {
		absolutePath, absoluteError := filepath.Abs(explicitPath)
		if absoluteError != nil {
			return "", fmt.Errorf(errorResolvePathFormat, explicitPath, absoluteError)
		}
		return absolutePath, nil
	}
	return filepath.Join(workingDirectory, explicitPath), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	information, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf(errorStatFormat, path, statError)
	}
	if information.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf(errorDirectoryFormat, path, ErrConfigurationIsDirectory)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(configurationType)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorReadFormat, path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Clipboard != nil {
		result.Clipboard = clonePointer(override.Clipboard)
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Inputs.Directory != "" {
		result.Inputs.Directory = override.Inputs.Directory
	}
	if override.Inputs.FilePattern != "" {
		result.Inputs.FilePattern = override.Inputs.FilePattern
	}
	result.Puzzles = result.Puzzles.merge(override.Puzzles)
	return result
}

func (configuration PuzzleConfiguration) merge(override PuzzleConfiguration) PuzzleConfiguration {
	result := configuration
	result.Calories.TopCount = overridePointer(result.Calories.TopCount, override.Calories.TopCount)
	result.Signal.PacketWindow = overridePointer(result.Signal.PacketWindow, override.Signal.PacketWindow)
	result.Signal.MessageWindow = overridePointer(result.Signal.MessageWindow, override.Signal.MessageWindow)
	result.Filesystem.SmallDirectoryLimit = overridePointer(result.Filesystem.SmallDirectoryLimit, override.Filesystem.SmallDirectoryLimit)
	result.Filesystem.DiskCapacity = overridePointer(result.Filesystem.DiskCapacity, override.Filesystem.DiskCapacity)
	result.Filesystem.RequiredFreeSpace = overridePointer(result.Filesystem.RequiredFreeSpace, override.Filesystem.RequiredFreeSpace)
	return result
}

func overridePointer[T any](current, override *T) *T {
	if override == nil {
		return current
	}
	return clonePointer(override)
}

func clonePointer[T any](value *T) *T {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
