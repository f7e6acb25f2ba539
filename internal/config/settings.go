package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/advent/internal/calories"
	"github.com/temirov/advent/internal/filesystem"
	"github.com/temirov/advent/internal/signal"
	"github.com/temirov/advent/internal/types"
	"github.com/temirov/advent/internal/utils"
)

const (
	configurationType = "yaml"

	// DefaultInputDirectory holds the daily inputs relative to the working directory.
	DefaultInputDirectory = "input"
	// DefaultInputFilePattern names a day's input; %d is replaced by the day number.
	DefaultInputFilePattern = "day%d.txt"

	dayPlaceholder = "%d"

	errorSettingFormat = "%s = %v: %w"
)

var (
	// ErrConfigurationIsDirectory is returned when a configuration path names a directory.
	ErrConfigurationIsDirectory = errors.New("configuration path is a directory")
	// ErrInvalidSetting is returned when a configured value is out of range.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Settings is the fully resolved configuration with every default applied.
type Settings struct {
	Format           string
	Clipboard        bool
	LogLevel         string
	InputDirectory   string
	InputFilePattern string
	TopCount         int
	PacketWindow     int
	MessageWindow    int
	Filesystem       filesystem.Options
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Format:           types.FormatRaw,
		LogLevel:         utils.DefaultLogLevel,
		InputDirectory:   DefaultInputDirectory,
		InputFilePattern: DefaultInputFilePattern,
		TopCount:         calories.DefaultTopCount,
		PacketWindow:     signal.DefaultPacketWindow,
		MessageWindow:    signal.DefaultMessageWindow,
		Filesystem:       filesystem.DefaultOptions(),
	}
}

// Resolve applies defaults to every unset field and validates the result.
func (configuration ApplicationConfiguration) Resolve() (Settings, error) {
	settings := DefaultSettings()
	if configuration.Format != "" {
		settings.Format = strings.ToLower(configuration.Format)
	}
	if configuration.Clipboard != nil {
		settings.Clipboard = *configuration.Clipboard
	}
	if configuration.LogLevel != "" {
		settings.LogLevel = strings.ToLower(configuration.LogLevel)
	}
	if configuration.Inputs.Directory != "" {
		settings.InputDirectory = configuration.Inputs.Directory
	}
	if configuration.Inputs.FilePattern != "" {
		settings.InputFilePattern = configuration.Inputs.FilePattern
	}
	puzzles := configuration.Puzzles
	settings.TopCount = valueOrDefault(puzzles.Calories.TopCount, settings.TopCount)
	settings.PacketWindow = valueOrDefault(puzzles.Signal.PacketWindow, settings.PacketWindow)
	settings.MessageWindow = valueOrDefault(puzzles.Signal.MessageWindow, settings.MessageWindow)
	settings.Filesystem.SmallDirectoryLimit = valueOrDefault(puzzles.Filesystem.SmallDirectoryLimit, settings.Filesystem.SmallDirectoryLimit)
	settings.Filesystem.DiskCapacity = valueOrDefault(puzzles.Filesystem.DiskCapacity, settings.Filesystem.DiskCapacity)
	settings.Filesystem.RequiredFreeSpace = valueOrDefault(puzzles.Filesystem.RequiredFreeSpace, settings.Filesystem.RequiredFreeSpace)

	if validationError := settings.Validate(); validationError != nil {
		return Settings{}, validationError
	}
	return settings, nil
}

// Validate reports the first out-of-range setting.
func (settings Settings) Validate() error {
	if !types.IsSupportedFormat(settings.Format) {
		return fmt.Errorf(errorSettingFormat, "format", settings.Format, ErrInvalidSetting)
	}
	if _, levelError := utils.ParseLogLevel(settings.LogLevel); levelError != nil {
		return fmt.Errorf(errorSettingFormat, "log_level", settings.LogLevel, ErrInvalidSetting)
	}
	if strings.Count(settings.InputFilePattern, dayPlaceholder) != 1 {
		return fmt.Errorf(errorSettingFormat, "inputs.file_pattern", settings.InputFilePattern, ErrInvalidSetting)
	}
	positiveIntegers := []struct {
		key   string
		value int
	}{
		{key: "puzzles.calories.top_count", value: settings.TopCount},
		{key: "puzzles.signal.packet_window", value: settings.PacketWindow},
		{key: "puzzles.signal.message_window", value: settings.MessageWindow},
	}
	for _, setting := range positiveIntegers {
		if setting.value < 1 {
			return fmt.Errorf(errorSettingFormat, setting.key, setting.value, ErrInvalidSetting)
		}
	}
	nonNegativeSizes := []struct {
		key   string
		value int64
	}{
		{key: "puzzles.filesystem.small_directory_limit", value: settings.Filesystem.SmallDirectoryLimit},
		{key: "puzzles.filesystem.disk_capacity", value: settings.Filesystem.DiskCapacity},
		{key: "puzzles.filesystem.required_free_space", value: settings.Filesystem.RequiredFreeSpace},
	}
	for _, setting := range nonNegativeSizes {
		if setting.value < 0 {
			return fmt.Errorf(errorSettingFormat, setting.key, setting.value, ErrInvalidSetting)
		}
	}
	return nil
}

// InputPath returns where the input of day is expected.
func (settings Settings) InputPath(day int) string {
	return filepath.Join(settings.InputDirectory, fmt.Sprintf(settings.InputFilePattern, day))
}

func valueOrDefault[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
