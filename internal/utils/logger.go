package utils

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

const errorLogLevelFormat = "log level %q: %w"

// ErrInvalidLogLevel is returned for a level other than debug, info, warn or error.
var ErrInvalidLogLevel = errors.New("unsupported log level")

var supportedLogLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// ParseLogLevel maps a level name onto its zap level.
func ParseLogLevel(levelName string) (zapcore.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(levelName))
	if normalized == "" {
		normalized = DefaultLogLevel
	}
	level, supported := supportedLogLevels[normalized]
	if !supported {
		return zapcore.InfoLevel, fmt.Errorf(errorLogLevelFormat, levelName, ErrInvalidLogLevel)
	}
	return level, nil
}

// NewApplicationLogger constructs a zap logger for human-readable console output on stderr.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	level, levelError := ParseLogLevel(levelName)
	if levelError != nil {
		return nil, levelError
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}
