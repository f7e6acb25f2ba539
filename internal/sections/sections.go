// Package sections compares pairs of camp cleanup section assignments.
package sections

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/temirov/advent/internal/puzzle"
)

const (
	pairSeparator  = ","
	rangeSeparator = "-"

	errorAssignmentFormat = "assignment %q: %w"
)

// ErrMalformedAssignment is returned for a line that is not two inclusive ranges.
var ErrMalformedAssignment = errors.New("malformed assignment")

// Range is an inclusive span of section IDs.
type Range struct {
	Start int
	End   int
}

// Contains reports whether other lies entirely within the range.
func (sectionRange Range) Contains(other Range) bool {
	return sectionRange.Start <= other.Start && other.End <= sectionRange.End
}

// Overlaps reports whether the ranges share at least one section.
func (sectionRange Range) Overlaps(other Range) bool {
	return sectionRange.Start <= other.End && other.Start <= sectionRange.End
}

// ParseRange parses "a-b".
func ParseRange(text string) (Range, error) {
	startText, endText, found := strings.Cut(strings.TrimSpace(text), rangeSeparator)
	if !found {
		return Range{}, fmt.Errorf(errorAssignmentFormat, text, ErrMalformedAssignment)
	}
	start, startError := strconv.Atoi(startText)
	end, endError := strconv.Atoi(endText)
	if startError != nil || endError != nil || start < 0 || end < start {
		return Range{}, fmt.Errorf(errorAssignmentFormat, text, ErrMalformedAssignment)
	}
	return Range{Start: start, End: end}, nil
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Range, Range, error) {
	firstText, secondText, found := strings.Cut(line, pairSeparator)
	if !found {
		return Range{}, Range{}, fmt.Errorf(errorAssignmentFormat, line, ErrMalformedAssignment)
	}
	first, firstError := ParseRange(firstText)
	if firstError != nil {
		return Range{}, Range{}, firstError
	}
	second, secondError := ParseRange(secondText)
	if secondError != nil {
		return Range{}, Range{}, secondError
	}
	return first, second, nil
}

func countPairs(input io.Reader, matches func(first, second Range) bool) (string, error) {
	count := 0
	scanError := puzzle.ForEachNonBlankLine(input, func(lineNumber int, line string) error {
		first, second, parseError := ParsePair(line)
		if parseError != nil {
			return puzzle.LineError(lineNumber, parseError)
		}
		if matches(first, second) {
			count++
		}
		return nil
	})
	if scanError != nil {
		return "", scanError
	}
	return strconv.Itoa(count), nil
}

// PartOne counts pairs where one assignment fully contains the other.
func PartOne(input io.Reader) (string, error) {
	return countPairs(input, func(first, second Range) bool {
		return first.Contains(second) || second.Contains(first)
	})
}

// PartTwo counts pairs whose assignments overlap.
func PartTwo(input io.Reader) (string, error) {
	return countPairs(input, Range.Overlaps)
}
