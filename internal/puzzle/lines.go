package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	initialLineBufferSize = 64 * 1024
	maximumLineSize       = 1024 * 1024

	errorScanInputFormat = "scanning input: %w"
	errorLineFormat      = "line %d: %w"
)

// ForEachLine calls onLine for every line of input with its 1-based number.
// Trailing carriage returns are removed. An error from onLine stops the scan
// and is returned unchanged.
func ForEachLine(input io.Reader, onLine func(lineNumber int, line string) error) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, initialLineBufferSize), maximumLineSize)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if callbackError := onLine(lineNumber, strings.TrimSuffix(scanner.Text(), "\r")); callbackError != nil {
			return callbackError
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return fmt.Errorf(errorScanInputFormat, scanError)
	}
	return nil
}

// ForEachNonBlankLine is ForEachLine skipping lines that are empty after trimming spaces.
func ForEachNonBlankLine(input io.Reader, onLine func(lineNumber int, line string) error) error {
	return ForEachLine(input, func(lineNumber int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		return onLine(lineNumber, line)
	})
}

// LineError annotates err with the input line it came from.
func LineError(lineNumber int, err error) error {
	return fmt.Errorf(errorLineFormat, lineNumber, err)
}
