// Package puzzle holds the registry of daily solvers and the helpers they share.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	dayPrefix = "day"

	errorDuplicateDayFormat = "day %d: %w"
	errorUnknownDayFormat   = "day %d: %w"
	errorUnknownPartFormat  = "day %d part %d: %w"
	errorParseDayFormat     = "parse day %q: %w"
)

var (
	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("day already registered")
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("no solver registered")
	// ErrUnknownPart is returned when a day has no solver for the requested part.
	ErrUnknownPart = errors.New("no such part")
	// ErrInvalidDay is returned when a day identifier cannot be parsed.
	ErrInvalidDay = errors.New("invalid day")
)

// Part solves one half of a daily puzzle from its raw input.
type Part func(input io.Reader) (string, error)

// Puzzle groups the parts of a single day.
type Puzzle struct {
	Day   int
	Name  string
	Title string
	Parts []Part
}

// Part returns the solver for the 1-based part number.
func (puzzle Puzzle) Part(partNumber int) (Part, error) {
	if partNumber < 1 || partNumber > len(puzzle.Parts) || puzzle.Parts[partNumber-1] == nil {
		return nil, fmt.Errorf(errorUnknownPartFormat, puzzle.Day, partNumber, ErrUnknownPart)
	}
	return puzzle.Parts[partNumber-1], nil
}

// PartNumbers lists the 1-based part numbers the puzzle can solve.
func (puzzle Puzzle) PartNumbers() []int {
	partNumbers := make([]int, 0, len(puzzle.Parts))
	for partIndex, part := range puzzle.Parts {
		if part != nil {
			partNumbers = append(partNumbers, partIndex+1)
		}
	}
	return partNumbers
}

// Registry maps day numbers to puzzles.
type Registry struct {
	puzzlesByDay map[int]Puzzle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzlesByDay: make(map[int]Puzzle)}
}

// Register adds a puzzle. Each day may be registered once.
func (registry *Registry) Register(puzzle Puzzle) error {
	if _, exists := registry.puzzlesByDay[puzzle.Day]; exists {
		return fmt.Errorf(errorDuplicateDayFormat, puzzle.Day, ErrDuplicateDay)
	}
	registry.puzzlesByDay[puzzle.Day] = puzzle
	return nil
}

// Lookup returns the puzzle registered for day.
func (registry *Registry) Lookup(day int) (Puzzle, error) {
	puzzle, exists := registry.puzzlesByDay[day]
	if !exists {
		return Puzzle{}, fmt.Errorf(errorUnknownDayFormat, day, ErrUnknownDay)
	}
	return puzzle, nil
}

// Days returns every registered puzzle ordered by day.
func (registry *Registry) Days() []Puzzle {
	puzzles := make([]Puzzle, 0, len(registry.puzzlesByDay))
	for _, puzzle := range registry.puzzlesByDay {
		puzzles = append(puzzles, puzzle)
	}
	sort.Slice(puzzles, func(left, right int) bool {
		return puzzles[left].Day < puzzles[right].Day
	})
	return puzzles
}

// ParseDay accepts "7", "07", "day7" and "day07".
func ParseDay(value string) (int, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), dayPrefix)
	day, conversionError := strconv.Atoi(normalized)
	if conversionError != nil {
		return 0, fmt.Errorf(errorParseDayFormat, value, ErrInvalidDay)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf(errorParseDayFormat, value, ErrInvalidDay)
	}
	return day, nil
}
