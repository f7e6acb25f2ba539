package filesystem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	commandPrefix        = "$"
	directoryEntryPrefix = "dir"

	changeDirectoryCommand = "cd"
	listCommand            = "ls"

	// ParentDirectory moves the cursor one level up.
	ParentDirectory = ".."

	errorUnknownCommandFormat   = "unknown command %q: %w"
	errorCommandArgumentsFormat = "%s: unexpected arguments %q: %w"
	errorMissingArgumentFormat  = "%s: %w"
	errorUnrecognizedLineFormat = "unrecognized line %q: %w"
	errorFileSizeFormat         = "file size %q: %w"
)

var (
	// ErrMalformedLine is returned for a transcript line matching no known shape.
	ErrMalformedLine = errors.New("malformed transcript line")
	// ErrMissingArgument is returned when cd has no argument.
	ErrMissingArgument = errors.New("missing command argument")
)

// LineKind identifies what a transcript line represents.
type LineKind int

const (
	LineKindChangeDirectory LineKind = iota
	LineKindList
	LineKindDirectoryEntry
	LineKindFileEntry
)

// Line is one classified transcript line. Argument holds the cd target, or
// the entry name for listing lines. Size is only set for file entries.
type Line struct {
	Kind     LineKind
	Argument string
	Size     int64
}

// ClassifyLine turns a non-empty transcript line into a Line.
func ClassifyLine(text string) (Line, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Line{}, fmt.Errorf(errorUnrecognizedLineFormat, text, ErrMalformedLine)
	}

	switch {
	case fields[0] == commandPrefix:
		return classifyCommand(fields[1:])
	case fields[0] == directoryEntryPrefix:
		if len(fields) != 2 {
			return Line{}, fmt.Errorf(errorUnrecognizedLineFormat, text, ErrMalformedLine)
		}
		return Line{Kind: LineKindDirectoryEntry, Argument: fields[1]}, nil
	case startsWithDigit(fields[0]):
		size, parseError := strconv.ParseInt(fields[0], 10, 64)
		if parseError != nil {
			return Line{}, fmt.Errorf(errorFileSizeFormat, fields[0], errors.Join(ErrMalformedLine, parseError))
		}
		if len(fields) != 2 {
			return Line{}, fmt.Errorf(errorUnrecognizedLineFormat, text, ErrMalformedLine)
		}
		return Line{Kind: LineKindFileEntry, Argument: fields[1], Size: size}, nil
	default:
		return Line{}, fmt.Errorf(errorUnrecognizedLineFormat, text, ErrMalformedLine)
	}
}

func classifyCommand(words []string) (Line, error) {
	if len(words) == 0 {
		return Line{}, fmt.Errorf(errorUnknownCommandFormat, "", ErrMalformedLine)
	}
	command, arguments := words[0], words[1:]
	switch command {
	case changeDirectoryCommand:
		if len(arguments) == 0 {
			return Line{}, fmt.Errorf(errorMissingArgumentFormat, changeDirectoryCommand, ErrMissingArgument)
		}
		if len(arguments) > 1 {
			return Line{}, fmt.Errorf(errorCommandArgumentsFormat, changeDirectoryCommand, strings.Join(arguments, " "), ErrMalformedLine)
		}
		return Line{Kind: LineKindChangeDirectory, Argument: arguments[0]}, nil
	case listCommand:
		if len(arguments) > 0 {
			return Line{}, fmt.Errorf(errorCommandArgumentsFormat, listCommand, strings.Join(arguments, " "), ErrMalformedLine)
		}
		return Line{Kind: LineKindList}, nil
	default:
		return Line{}, fmt.Errorf(errorUnknownCommandFormat, command, ErrMalformedLine)
	}
}

func startsWithDigit(word string) bool {
	return word != "" && word[0] >= '0' && word[0] <= '9'
}
